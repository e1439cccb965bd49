package client

import (
	"context"
	"fmt"

	"github.com/staffly/hrms-backend-go/internal/domain/client"
	"github.com/staffly/hrms-backend-go/internal/domain/employee"
)

type ClientService struct {
	clientRepo   client.ClientRepository
	employeeRepo employee.EmployeeRepository
}

func NewClientService(clientRepo client.ClientRepository, employeeRepo employee.EmployeeRepository) *ClientService {
	return &ClientService{
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *ClientService) Create(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return client.ClientResponse{}, err
	}

	created, err := s.clientRepo.Create(ctx, client.Client{
		EmployeeID:  req.EmployeeID,
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		return client.ClientResponse{}, fmt.Errorf("failed to create client: %w", err)
	}

	return toResponse(created), nil
}

func (s *ClientService) List(ctx context.Context) ([]client.ClientResponse, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	responses := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, toResponse(c))
	}
	return responses, nil
}

// ListByEmployee is the self-service view: the clients held by one employee.
func (s *ClientService) ListByEmployee(ctx context.Context, employeeID string) ([]client.ClientResponse, error) {
	clients, err := s.clientRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee clients: %w", err)
	}

	responses := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, toResponse(c))
	}
	return responses, nil
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.clientRepo.Delete(ctx, id)
}

func toResponse(c client.Client) client.ClientResponse {
	return client.ClientResponse{
		ID:          c.ID,
		EmployeeID:  c.EmployeeID,
		Name:        c.Name,
		ContactInfo: c.ContactInfo,
	}
}
