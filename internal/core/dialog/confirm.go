package dialog

import (
	"context"
	"sync"

	"github.com/pdam/billing-console/internal/core/domain"
)

// DeleteFunc performs the upstream DELETE and returns the server message.
type DeleteFunc func(ctx context.Context) (string, error)

// Confirm is the two-step guard in front of a destructive action. Only
// Confirm after Prompt issues the request; Cancel never does.
type Confirm struct {
	mu       sync.Mutex
	prompted bool
	deleting bool
}

// Prompt opens the confirmation prompt.
func (c *Confirm) Prompt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompted = true
}

// Cancel dismisses the prompt.
func (c *Confirm) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.deleting {
		c.prompted = false
	}
}

// Prompted reports whether the prompt is showing.
func (c *Confirm) Prompted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prompted
}

// Confirm runs fn if the prompt is showing.
func (c *Confirm) Confirm(ctx context.Context, fn DeleteFunc, msgs Messages) (Outcome, error) {
	c.mu.Lock()
	if c.deleting {
		c.mu.Unlock()
		return Outcome{}, domain.ErrBusy
	}
	if !c.prompted {
		c.mu.Unlock()
		return Outcome{}, ErrNotOpen
	}
	c.deleting = true
	c.mu.Unlock()

	serverMsg, err := fn(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleting = false
	c.prompted = false
	if err != nil {
		return Outcome{Notice: FailureNotice(err, msgs), Close: true}, err
	}
	return Outcome{Notice: SuccessNotice(serverMsg, msgs), Close: true, Refresh: true}, nil
}
