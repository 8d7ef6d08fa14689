package handlers

import (
	"net/http"

	"blogAPI/internal/repository"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

// LoginRequest keeps Password as a pointer: an empty password is present,
// a missing one is not.
type LoginRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password *string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.bind(w, r, &req) {
		return
	}

	token, err := h.AuthService.Register(r.Context(), repository.CreateAuthorRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.bind(w, r, &req) {
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, *req.Password)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, TokenResponse{Token: token}, http.StatusOK)
}
