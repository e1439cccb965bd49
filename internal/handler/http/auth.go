package http

import (
	"encoding/json"
	"net/http"

	"github.com/staffly/hrms-backend-go/internal/domain/auth"
	"github.com/staffly/hrms-backend-go/internal/handler/http/response"
	authService "github.com/staffly/hrms-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService *authService.AuthService
}

func NewAuthHandler(s *authService.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: s}
}

func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", resp)
}
