package dialog

import "sync"

// LocalForm is an in-place editor with no network behind it. Cancel restores
// the original record; Save only leaves edit mode.
type LocalForm[T any] struct {
	mu       sync.Mutex
	original T
	values   T
	editing  bool
}

// NewLocalForm returns a read-only form showing original.
func NewLocalForm[T any](original T) *LocalForm[T] {
	return &LocalForm[T]{original: original, values: original}
}

func (f *LocalForm[T]) Edit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editing = true
}

func (f *LocalForm[T]) Update(values T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.editing {
		f.values = values
	}
}

func (f *LocalForm[T]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = f.original
	f.editing = false
}

// Save keeps the local values. Nothing is sent upstream.
func (f *LocalForm[T]) Save() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editing = false
}

func (f *LocalForm[T]) Editing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editing
}

func (f *LocalForm[T]) Values() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}
