package ports

import (
	"context"
	"time"
)

// ReferenceKind names a cached reference list.
type ReferenceKind string

const ReferenceServices ReferenceKind = "services"

// ReferenceCache is a short-TTL cache of reference lists used by dialogs.
// Entries are scoped by a tenant key; Invalidate drops every tenant's entry
// of the given kind.
type ReferenceCache interface {
	Get(ctx context.Context, kind ReferenceKind, tenant string) ([]byte, bool, error)
	Set(ctx context.Context, kind ReferenceKind, tenant string, payload []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, kind ReferenceKind) error
}
