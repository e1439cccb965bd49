package client

import "time"

// Client is a customer attached to the employee who manages them.
type Client struct {
	ID          string
	EmployeeID  string
	Name        string
	ContactInfo *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
