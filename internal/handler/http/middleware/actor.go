package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/backoffice-go/internal/handler/http/response"
)

// ActorHeader carries the identity of the caller. It is asserted by the
// gateway in front of the service and not verified here.
const ActorHeader = "X-Actor-ID"

const maxActorLength = 100

type actorKey struct{}

// Actor stores the X-Actor-ID header on the request context when present.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := strings.TrimSpace(r.Header.Get(ActorHeader))
		if actor == "" {
			next.ServeHTTP(w, r)
			return
		}
		if len(actor) > maxActorLength {
			response.BadRequest(w, ActorHeader+" is too long", nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// RequireActor rejects requests without an actor.
func RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ActorFromContext(r.Context()); !ok {
			response.Unauthorized(w, ActorHeader+" header is required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorKey{}).(string)
	return actor, ok && actor != ""
}
