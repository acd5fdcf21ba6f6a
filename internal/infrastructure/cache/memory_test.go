package cache

import (
	"context"
	"testing"
	"time"

	"github.com/pdam/billing-console/internal/core/ports"
)

func TestMemory_SetGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Set(ctx, ports.ReferenceServices, "t1", []byte(`[1]`), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	got, ok, err := m.Get(ctx, ports.ReferenceServices, "t1")
	if err != nil || !ok || string(got) != `[1]` {
		t.Fatalf("unexpected Get result %q %v %v", got, ok, err)
	}
	if _, ok, _ := m.Get(ctx, ports.ReferenceServices, "t2"); ok {
		t.Fatalf("expected miss for another tenant")
	}
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	_ = m.Set(ctx, ports.ReferenceServices, "t1", []byte("x"), 30*time.Second)
	now = now.Add(30 * time.Second)

	if _, ok, _ := m.Get(ctx, ports.ReferenceServices, "t1"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestMemory_SetSweepsExpiredTenants(t *testing.T) {
	m := NewMemory()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	_ = m.Set(ctx, ports.ReferenceServices, "t1", []byte("a"), 30*time.Second)
	_ = m.Set(ctx, ports.ReferenceServices, "t2", []byte("b"), time.Minute)
	now = now.Add(45 * time.Second)
	_ = m.Set(ctx, ports.ReferenceServices, "t3", []byte("c"), time.Minute)

	if _, ok := m.entries[entryKey{ports.ReferenceServices, "t1"}]; ok {
		t.Fatalf("expected expired t1 to be swept without a read")
	}
	if len(m.entries) != 2 {
		t.Fatalf("expected t2 and t3 to remain, got %d entries", len(m.entries))
	}
}

func TestMemory_ZeroTTLDisablesCaching(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_ = m.Set(ctx, ports.ReferenceServices, "t1", []byte("x"), 0)
	if _, ok, _ := m.Get(ctx, ports.ReferenceServices, "t1"); ok {
		t.Fatalf("expected no entry with zero ttl")
	}
}

func TestMemory_InvalidateDropsAllTenants(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_ = m.Set(ctx, ports.ReferenceServices, "t1", []byte("a"), time.Minute)
	_ = m.Set(ctx, ports.ReferenceServices, "t2", []byte("b"), time.Minute)
	_ = m.Set(ctx, "other", "t1", []byte("c"), time.Minute)

	if err := m.Invalidate(ctx, ports.ReferenceServices); err != nil {
		t.Fatalf("Invalidate returned error: %v", err)
	}
	for _, tenant := range []string{"t1", "t2"} {
		if _, ok, _ := m.Get(ctx, ports.ReferenceServices, tenant); ok {
			t.Fatalf("expected %s to be invalidated", tenant)
		}
	}
	if _, ok, _ := m.Get(ctx, "other", "t1"); !ok {
		t.Fatalf("expected other kind to survive")
	}
}
