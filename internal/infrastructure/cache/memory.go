// Package cache provides the in-process reference cache used when redis is
// not configured.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pdam/billing-console/internal/core/ports"
)

type entryKey struct {
	kind   ports.ReferenceKind
	tenant string
}

type entry struct {
	payload []byte
	expires time.Time
}

// Memory is a mutex-guarded TTL map implementing ports.ReferenceCache.
type Memory struct {
	mu      sync.Mutex
	entries map[entryKey]entry
	now     func() time.Time
}

var _ ports.ReferenceCache = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{entries: make(map[entryKey]entry), now: time.Now}
}

func (m *Memory) Get(_ context.Context, kind ports.ReferenceKind, tenant string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := entryKey{kind, tenant}
	e, ok := m.entries[k]
	if !ok {
		return nil, false, nil
	}
	if !m.now().Before(e.expires) {
		delete(m.entries, k)
		return nil, false, nil
	}
	return e.payload, true, nil
}

func (m *Memory) Set(_ context.Context, kind ports.ReferenceKind, tenant string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	cp := append([]byte(nil), payload...)

	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.sweep(now)
	m.entries[entryKey{kind, tenant}] = entry{payload: cp, expires: now.Add(ttl)}
	return nil
}

// sweep drops every expired entry. Callers hold mu.
func (m *Memory) sweep(now time.Time) {
	for k, e := range m.entries {
		if !now.Before(e.expires) {
			delete(m.entries, k)
		}
	}
}

func (m *Memory) Invalidate(_ context.Context, kind ports.ReferenceKind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if k.kind == kind {
			delete(m.entries, k)
		}
	}
	return nil
}
