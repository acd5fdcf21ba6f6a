package ports

import (
	"time"

	"github.com/pdam/billing-console/internal/core/domain"
)

// Session is the result of a successful sign-in.
type Session struct {
	Token     string
	Role      string
	ExpiresIn time.Duration
	Message   string
}

// Home returns the landing page for the session's role.
func (s Session) Home() string {
	if s.Role == domain.RoleCustomer {
		return "/cust/dashboard"
	}
	return "/admin/dashboard"
}
