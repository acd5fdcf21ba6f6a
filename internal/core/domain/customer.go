package domain

import "time"

// Customer is a billed PDAM subscriber. ServiceID references exactly one Service.
type Customer struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	CustomerNumber string    `json:"customer_number"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	ServiceID      int64     `json:"service_id"`
	OwnerToken     string    `json:"owner_token"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	User           User      `json:"user"`
	Service        Service   `json:"service"`
}

// IsActive mirrors the status badge: only CUSTOMER accounts count as active.
func (c Customer) IsActive() bool {
	return c.User.IsCustomer()
}
