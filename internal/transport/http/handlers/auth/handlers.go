package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)
		r.Post("/refresh", h.handleRefresh)
		r.Get("/me", h.handleMe)
	})
}

type loginResponse struct {
	auth.TokenPair
	User *auth.User `json:"user"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload auth.NewUser
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("email", payload.Email, "is required")
	v.Required("username", payload.Username, "is required")
	v.Required("password", payload.Password, "is required")
	v.Required("full_name", payload.FullName, "is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	user, err := h.Service.Store.CreateUser(r.Context(), payload)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			api.Fail(w, http.StatusBadRequest, "email_registered", "email already registered", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "register_failed", "failed to register user", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, user, middleware.GetRequestID(r.Context()))
}

// handleLogin accepts form fields, matching the admin frontend's login form.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid form payload", middleware.GetRequestID(r.Context()))
		return
	}

	identifier := strings.TrimSpace(r.PostFormValue("email"))
	if identifier == "" {
		identifier = strings.TrimSpace(r.PostFormValue("username"))
	}
	password := r.PostFormValue("password")

	if identifier == "" {
		api.Fail(w, http.StatusBadRequest, "missing_identifier", "email or username must be provided", middleware.GetRequestID(r.Context()))
		return
	}
	if password == "" {
		api.Fail(w, http.StatusBadRequest, "missing_password", "password is required", middleware.GetRequestID(r.Context()))
		return
	}

	user, pair, err := h.Service.Authenticate(r.Context(), identifier, password)
	if err != nil {
		h.failAuth(w, r, err)
		return
	}
	api.Success(w, loginResponse{TokenPair: pair, User: user}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || strings.TrimSpace(payload.RefreshToken) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "refresh_token is required", middleware.GetRequestID(r.Context()))
		return
	}

	user, pair, err := h.Service.Refresh(r.Context(), payload.RefreshToken)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_token", "invalid refresh token", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, loginResponse{TokenPair: pair, User: user}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	user, err := h.Service.CurrentUser(r.Context(), claims)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "user_not_found", "user not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "me_failed", "failed to load current user", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, user, middleware.GetRequestID(r.Context()))
}

func (h *Handler) failAuth(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email/username or password", requestID)
	case errors.Is(err, auth.ErrInactive):
		api.Fail(w, http.StatusForbidden, "account_inactive", "user account is inactive", requestID)
	case errors.Is(err, auth.ErrNotAdmin):
		api.Fail(w, http.StatusForbidden, "admin_only", "only administrators can login", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", requestID)
	}
}
