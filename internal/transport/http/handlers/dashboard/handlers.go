package dashboardhandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/dashboard"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct {
	Store *dashboard.Store
}

func NewHandler(store *dashboard.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/stats", h.handleStats)
		r.Get("/weekly-attendance", h.handleWeeklyAttendance)
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	stats, err := h.Store.Stats(r.Context(), time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "stats_failed", "failed to compute dashboard stats", requestID)
		return
	}
	api.Success(w, stats, requestID)
}

func (h *Handler) handleWeeklyAttendance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	series, err := h.Store.WeeklyAttendance(r.Context(), time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "weekly_attendance_failed", "failed to compute weekly attendance", requestID)
		return
	}
	api.Success(w, series, requestID)
}
