package client

import "context"

type ClientRepository interface {
	Create(ctx context.Context, c Client) (Client, error)
	List(ctx context.Context) ([]Client, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Client, error)
	Delete(ctx context.Context, id string) error
}
