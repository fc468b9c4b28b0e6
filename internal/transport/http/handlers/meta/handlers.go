package metahandler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	employeeshandler "hrms/internal/transport/http/handlers/employees"
)

type Handler struct {
	DB        *pgxpool.Pool
	Employees *employeeshandler.Handler
	Version   string
}

func NewHandler(db *pgxpool.Pool, employees *employeeshandler.Handler, version string) *Handler {
	return &Handler{DB: db, Employees: employees, Version: version}
}

// RegisterRoutes mounts the top-level duplicates of the directory listings.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/departments", h.Employees.HandleListDepartments)
	r.Get("/positions", h.Employees.HandleListPositions)
}

func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to HRMS API",
		"version": h.Version,
	})
}

// HandleHealth reports degraded instead of failing when the database is
// unreachable.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	database := "up"
	code := http.StatusOK
	if err := h.DB.Ping(ctx); err != nil {
		status = "degraded"
		database = "down"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]string{"status": status, "database": database})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
