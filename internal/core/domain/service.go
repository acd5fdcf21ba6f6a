package domain

import "time"

// Service is a billing tier: a usage range in cubic meters and a price.
type Service struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	MinUsage   float64   `json:"min_usage"`
	MaxUsage   float64   `json:"max_usage"`
	Price      float64   `json:"price"`
	OwnerToken string    `json:"owner_token"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// IsActive reports whether the package has any usable capacity.
func (s Service) IsActive() bool {
	return s.MaxUsage > 0
}
