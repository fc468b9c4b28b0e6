package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/leave"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Store *leave.Store
}

func NewHandler(store *leave.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Get("/types", h.handleListTypes)
		r.Post("/types", h.handleCreateType)
		r.Get("/requests", h.handleListRequests)
		r.Post("/requests", h.handleCreateRequest)
		r.Put("/requests/{id}/status", h.handleUpdateStatus)
	})
}

func (h *Handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	types, err := h.Store.ListTypes(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_types_failed", "failed to list leave types", requestID)
		return
	}
	if types == nil {
		types = []leave.Type{}
	}
	api.Success(w, types, requestID)
}

func (h *Handler) handleCreateType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload leave.NewType
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	v.Required("name", payload.Name, "is required")
	if payload.AllowedDays < 0 {
		v.Add("allowed_days", "must not be negative")
	}
	if v.Reject(w, requestID) {
		return
	}

	created, err := h.Store.CreateType(r.Context(), payload)
	if err != nil {
		if errors.Is(err, leave.ErrDuplicateType) {
			api.Fail(w, http.StatusBadRequest, "leave_type_exists", "leave type already exists", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "leave_type_create_failed", "failed to create leave type", requestID)
		return
	}
	api.Created(w, created, requestID)
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var filter leave.RequestFilter
	if raw := strings.TrimSpace(r.URL.Query().Get("employee_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_employee", "employee_id must be an integer", requestID)
			return
		}
		filter.EmployeeID = &id
	}
	filter.Status = strings.TrimSpace(r.URL.Query().Get("status"))

	requests, err := h.Store.ListRequests(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_requests_failed", "failed to list leave requests", requestID)
		return
	}
	if requests == nil {
		requests = []leave.Request{}
	}
	api.Success(w, requests, requestID)
}

type createRequestPayload struct {
	EmployeeID  int64   `json:"employee_id"`
	LeaveTypeID int64   `json:"leave_type_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Reason      *string `json:"reason"`
}

func (h *Handler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload createRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	if payload.EmployeeID <= 0 {
		v.Add("employee_id", "is required")
	}
	if payload.LeaveTypeID <= 0 {
		v.Add("leave_type_id", "is required")
	}
	start, _ := v.Date("start_date", payload.StartDate)
	end, _ := v.Date("end_date", payload.EndDate)
	v.DateOrder("start_date", start, "end_date", end)
	if v.Reject(w, requestID) {
		return
	}

	created, err := h.Store.CreateRequest(r.Context(), leave.NewRequest{
		EmployeeID:  payload.EmployeeID,
		LeaveTypeID: payload.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		Reason:      payload.Reason,
	})
	if err != nil {
		if errors.Is(err, leave.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "leave_ref_not_found", "employee or leave type not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "leave_request_create_failed", "failed to create leave request", requestID)
		return
	}
	api.Created(w, created, requestID)
}

type statusPayload struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}
	approver, err := claims.SubjectID()
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be an integer", requestID)
		return
	}

	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	v.Required("status", payload.Status, "is required")
	v.Enum("status", payload.Status, []string{leave.StatusApproved, leave.StatusRejected}, "must be approved or rejected")
	if v.Reject(w, requestID) {
		return
	}

	updated, err := h.Store.UpdateStatus(r.Context(), id, leave.StatusUpdate{
		Status:     strings.ToLower(strings.TrimSpace(payload.Status)),
		ApprovedBy: approver,
		Notes:      payload.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, leave.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "leave_request_not_found", "leave request not found", requestID)
		case errors.Is(err, leave.ErrDecided):
			api.Fail(w, http.StatusConflict, "leave_request_decided", "leave request already decided", requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "leave_status_failed", "failed to update leave request", requestID)
		}
		return
	}
	api.Success(w, updated, requestID)
}
