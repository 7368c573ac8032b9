package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		order = append(order, "failing")
		return errors.New("boom")
	})
	s.AddJob("last", time.Hour, func(ctx context.Context) error {
		order = append(order, "last")
		return nil
	})

	s.RunOnce(context.Background())

	assert.Equal(t, []string{"first", "failing", "last"}, order)
}

func TestScheduler_RunStopsOnCancel(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	started := make(chan struct{}, 1)
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		select {
		case started <- struct{}{}:
		default:
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_JobTimeout(t *testing.T) {
	s := NewScheduler()
	var sawDeadline bool
	s.Add(Job{
		Name:     "bounded",
		Interval: time.Hour,
		Timeout:  time.Minute,
		Fn: func(ctx context.Context) error {
			_, sawDeadline = ctx.Deadline()
			return nil
		},
	})

	s.RunOnce(context.Background())

	assert.True(t, sawDeadline)
}
