package ports

// Observer receives service-level events worth counting. The api/metrics
// package backs it with Prometheus counters.
type Observer interface {
	EmptyListFallback(resource string)
	ReferenceLookup(kind ReferenceKind, hit bool)
}

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) EmptyListFallback(string) {}

func (NopObserver) ReferenceLookup(ReferenceKind, bool) {}
