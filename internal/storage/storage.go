// Package storage provides the keyed session store the engine's callers
// persist sessions through: load before a command, save after any command
// that changed state.
package storage

import (
	"context"

	"github.com/jwebster45206/breadcrumb/pkg/state"
)

// SessionStore is a keyed blob store for per-agent sessions. A missing
// record is not an error: LoadSession returns (nil, nil). A record that
// exists but cannot be decoded is an error.
type SessionStore interface {
	LoadSession(ctx context.Context, agentID string) (*state.Session, error)
	SaveSession(ctx context.Context, agentID string, sess *state.Session) error
	Ping(ctx context.Context) error
	Close() error
}
