package dialog

import (
	"context"
	"errors"
	"sync"

	"github.com/pdam/billing-console/internal/core/domain"
)

// State is the lifecycle of a form dialog.
type State int

const (
	Closed State = iota
	Open
	Submitting
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Submitting:
		return "submitting"
	default:
		return "closed"
	}
}

// Mode selects create or edit semantics.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// ErrNotOpen is returned when submitting a dialog that is not open.
var ErrNotOpen = errors.New("dialog is not open")

// SubmitFunc performs the upstream mutation and returns the server message.
type SubmitFunc[F any] func(ctx context.Context, values F) (string, error)

// Outcome is what the page does after a submission.
type Outcome struct {
	Notice  Notice `json:"notice"`
	Close   bool   `json:"close"`
	Reset   bool   `json:"reset"`
	Refresh bool   `json:"refresh"`
}

// Dialog is a form dialog over values of type F.
//
// Create dialogs reset to blank on every open and after a successful submit.
// Edit dialogs are populated once at construction and keep the submitted
// values after success. A failed submit always leaves the dialog open with
// the entered values untouched.
type Dialog[F any] struct {
	mu     sync.Mutex
	mode   Mode
	state  State
	blank  F
	values F
}

// NewCreate returns a closed create dialog whose blank form is blank.
func NewCreate[F any](blank F) *Dialog[F] {
	return &Dialog[F]{mode: ModeCreate, blank: blank, values: blank}
}

// NewEdit returns a closed edit dialog pre-populated with initial.
func NewEdit[F any](initial F) *Dialog[F] {
	return &Dialog[F]{mode: ModeEdit, blank: initial, values: initial}
}

// Open shows the dialog. Create dialogs clear their fields.
func (d *Dialog[F]) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Submitting {
		return
	}
	if d.mode == ModeCreate {
		d.values = d.blank
	}
	d.state = Open
}

// Close hides the dialog without touching its fields.
func (d *Dialog[F]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != Submitting {
		d.state = Closed
	}
}

// Set replaces the field values, as the user types.
func (d *Dialog[F]) Set(values F) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values = values
}

// Values returns the current field values.
func (d *Dialog[F]) Values() F {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.values
}

// State returns the current lifecycle state.
func (d *Dialog[F]) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Submit runs fn with the current values. A second Submit while one is in
// flight returns ErrBusy without calling fn.
func (d *Dialog[F]) Submit(ctx context.Context, fn SubmitFunc[F], msgs Messages) (Outcome, error) {
	d.mu.Lock()
	switch d.state {
	case Submitting:
		d.mu.Unlock()
		return Outcome{}, domain.ErrBusy
	case Closed:
		d.mu.Unlock()
		return Outcome{}, ErrNotOpen
	}
	d.state = Submitting
	values := d.values
	d.mu.Unlock()

	serverMsg, err := fn(ctx, values)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.state = Open
		return Outcome{Notice: FailureNotice(err, msgs)}, err
	}

	d.state = Closed
	reset := d.mode == ModeCreate
	if reset {
		d.values = d.blank
	}
	return Outcome{
		Notice:  SuccessNotice(serverMsg, msgs),
		Close:   true,
		Reset:   reset,
		Refresh: true,
	}, nil
}
