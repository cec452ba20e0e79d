package actor

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

type contextKey string

const ActorKey contextKey = "actor"

var ErrNoActor = errors.New("actor not found")

// CurrentId retrieves the acting user's identifier (an email-like opaque string) from the
// context. Returns ErrNoActor if it was never propagated.
func CurrentId(ctx context.Context) (string, error) {
	id, ok := ctx.Value(ActorKey).(string)
	if !ok || id == "" {
		log.Trace("actor not found in context")
		return "", ErrNoActor
	}
	return id, nil
}

func WithActor(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ActorKey, id)
}
