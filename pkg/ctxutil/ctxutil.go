package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

type ctxKey string

const (
	actorKey     ctxKey = "actor"
	requestIDKey ctxKey = "request_id"
)

// WithActor stores the acting identity in the context. The transport layer
// sets it after the external auth collaborator resolved the caller.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromCtx extracts the acting identity from the context.
// Returns false if the value is missing, has a nil user ID, or an unknown role.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	if !ok || actor.UserID == uuid.Nil || !actor.Role.IsValid() {
		return domain.Actor{}, false
	}
	return actor, true
}

// UserIDFromCtx extracts the acting user ID from the context.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	actor, ok := ActorFromCtx(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return actor.UserID, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
