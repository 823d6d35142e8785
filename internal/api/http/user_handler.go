package http

import (
	"net/http"
	"strings"

	"movierental-backend/internal/security"
	"movierental-backend/internal/service"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *registerRequest) validate() string {
	if len(req.Name) < 5 || len(req.Name) > 50 {
		return `"name" must be between 5 and 50 characters.`
	}
	if len(req.Email) < 5 || len(req.Email) > 255 || !strings.Contains(req.Email, "@") {
		return `"email" must be a valid email.`
	}
	if len(req.Password) < 5 || len(req.Password) > 255 {
		return `"password" must be between 5 and 255 characters.`
	}
	return ""
}

// Register creates an account and hands the fresh token back in the
// x-auth-token response header.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, codeValidation, msg)
		return
	}

	user, token, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("x-auth-token", token)
	respondJSON(w, http.StatusOK, user)
}

// Me returns the authenticated user's own record.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeDomainError(w, security.ErrMissingToken)
		return
	}

	user, err := h.users.GetUser(r.Context(), claims.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}
