package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cmlabs-hris/backoffice-go/internal/config"
	appHTTP "github.com/cmlabs-hris/backoffice-go/internal/handler/http"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/cron"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/database"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/logger"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/backoffice-go/internal/repository/postgresql"
	claimService "github.com/cmlabs-hris/backoffice-go/internal/service/claim"
	dashboardService "github.com/cmlabs-hris/backoffice-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/backoffice-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/backoffice-go/internal/service/leave"
	payrollService "github.com/cmlabs-hris/backoffice-go/internal/service/payroll"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, closer, err := logger.New(logger.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		File:    cfg.Log.File,
		App:     cfg.App.Name,
		Version: cfg.App.Version,
		Env:     cfg.App.Env,
	})
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer closer.Close()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	tx := postgresql.NewTransactor(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	claimRepo := postgresql.NewClaimRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	payrollSvc := payrollService.NewPayrollService(tx, payrollRepo, employeeRepo, m)
	leaveSvc := leaveService.NewLeaveService(tx, leaveBalanceRepo, leaveRequestRepo, employeeRepo, m)
	claimSvc := claimService.NewClaimService(tx, claimRepo, employeeRepo, m)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	router := appHTTP.NewRouter(cfg.HTTP, log, appHTTP.Handlers{
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Payroll:   appHTTP.NewPayrollHandler(payrollSvc),
		Leave:     appHTTP.NewLeaveHandler(leaveSvc),
		Claim:     appHTTP.NewClaimHandler(claimSvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
	}, m, registry)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		slog.Info("Shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	if cfg.Jobs.Enabled {
		scheduler := cron.NewScheduler()
		cron.NewLeaveJobs(leaveSvc).RegisterJobs(scheduler, cfg.Jobs.LeaveAuditInterval)
		g.Go(func() error {
			return scheduler.Run(gctx)
		})
	}

	return g.Wait()
}
