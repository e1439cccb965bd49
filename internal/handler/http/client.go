package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffly/hrms-backend-go/internal/domain/client"
	"github.com/staffly/hrms-backend-go/internal/handler/http/middleware"
	"github.com/staffly/hrms-backend-go/internal/handler/http/response"
	clientService "github.com/staffly/hrms-backend-go/internal/service/client"
)

type ClientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetMyClients(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ClientHandlerImpl struct {
	clientService *clientService.ClientService
}

func NewClientHandler(s *clientService.ClientService) ClientHandler {
	return &ClientHandlerImpl{clientService: s}
}

func (h *ClientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req client.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.clientService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created successfully", resp)
}

func (h *ClientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.clientService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *ClientHandlerImpl) GetMyClients(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.Actor(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.clientService.ListByEmployee(r.Context(), actor.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *ClientHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Client ID is required", nil)
		return
	}

	if err := h.clientService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client deleted successfully", nil)
}
