package domain

import "time"

// RoleCustomer is the only non-administrative role known to the console.
const RoleCustomer = "CUSTOMER"

// User is the login account shared by admins and customers.
type User struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Password   string    `json:"password,omitempty"`
	Role       string    `json:"role"`
	OwnerToken string    `json:"owner_token"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// IsCustomer reports whether the account belongs to a customer.
func (u User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

// Admin is an administrative principal, one-to-one with a User.
type Admin struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	OwnerToken string    `json:"owner_token"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	User       User      `json:"user"`
}
