package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/planhive/planhive/internal/actor"
	"github.com/planhive/planhive/internal/config"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Propagate X-Actor-Id header into context for downstream services. Identity
	// is managed by an external collaborator; the header is trusted as-is.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			actorId := req.Header.Get("X-Actor-Id")
			ctx := req.Context()

			if actorId != "" {
				log.Debugf("request acting as %s", actorId)
				ctx = actor.WithActor(ctx, actorId)
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}
