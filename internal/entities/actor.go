// Package entities contains core business entities.
package entities

import (
	"context"
	"strings"
)

// SystemActor is recorded when a request names no user.
const SystemActor = "System Workio"

type actorKey struct{}

// WithActor stores the display name of the acting user in ctx.
func WithActor(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, actorKey{}, strings.TrimSpace(name))
}

// ActorFrom returns the acting user or SystemActor.
func ActorFrom(ctx context.Context) string {
	if name, ok := ctx.Value(actorKey{}).(string); ok && name != "" {
		return name
	}
	return SystemActor
}
