package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/staffly/hrms-backend-go/internal/domain/client"
	"github.com/staffly/hrms-backend-go/internal/pkg/database"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepositoryImpl{db: db}
}

func (r *clientRepositoryImpl) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return client.Client{}, err
	}
	c.ID = id.String()

	query := `
		INSERT INTO clients (id, employee_id, name, contact_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query, c.ID, c.EmployeeID, c.Name, c.ContactInfo).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return client.Client{}, err
	}

	return c, nil
}

func (r *clientRepositoryImpl) List(ctx context.Context) ([]client.Client, error) {
	query := `
		SELECT id, employee_id, name, contact_info, created_at, updated_at
		FROM clients
		ORDER BY id
	`
	return r.queryClients(ctx, query)
}

func (r *clientRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]client.Client, error) {
	query := `
		SELECT id, employee_id, name, contact_info, created_at, updated_at
		FROM clients
		WHERE employee_id = $1
		ORDER BY id
	`
	return r.queryClients(ctx, query, employeeID)
}

func (r *clientRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return client.ErrClientNotFound
	}
	return nil
}

func (r *clientRepositoryImpl) queryClients(ctx context.Context, query string, args ...interface{}) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]client.Client, 0)
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.Name, &c.ContactInfo,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}
