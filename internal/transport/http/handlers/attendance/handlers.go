package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/attendance"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

var statuses = []string{
	attendance.StatusPresent,
	attendance.StatusAbsent,
	attendance.StatusLeave,
	attendance.StatusHalfDay,
}

type Handler struct {
	Service *attendance.Service
}

func NewHandler(service *attendance.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", h.handleQuery)
		r.Post("/", h.handleMark)
		r.Get("/employee/{employeeId}", h.handleHistory)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
	})
}

// handleQuery serves both views: a bare ?date= selects the daily roster, any
// other filter combination is a raw record scan.
func (h *Handler) handleQuery(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	filter, ok := parseFilter(w, r, requestID)
	if !ok {
		return
	}

	var (
		records []attendance.Record
		err     error
	)
	if filter.IsDailyRoster() {
		records, err = h.Service.DailyRoster(r.Context(), *filter.Date)
	} else {
		records, err = h.Service.Query(r.Context(), filter)
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_query_failed", "failed to query attendance", requestID)
		return
	}
	if records == nil {
		records = []attendance.Record{}
	}
	api.Success(w, records, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be an integer", requestID)
		return
	}

	record, err := h.Service.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, attendance.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "attendance_not_found", "attendance not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "attendance_get_failed", "failed to load attendance", requestID)
		return
	}
	api.Success(w, record, requestID)
}

type markPayload struct {
	EmployeeID   int64   `json:"employee_id"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Notes        *string `json:"notes"`
}

func (h *Handler) handleMark(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload markPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	if payload.EmployeeID <= 0 {
		v.Add("employee_id", "is required")
	}
	v.Required("date", payload.Date, "is required")
	v.Enum("status", payload.Status, statuses, "must be one of present, absent, leave, half_day")
	var date time.Time
	if payload.Date != "" {
		date, _ = v.Date("date", payload.Date)
	}
	if v.Reject(w, requestID) {
		return
	}

	record, err := h.Service.Store.Mark(r.Context(), attendance.MarkInput{
		EmployeeID:   payload.EmployeeID,
		Date:         date,
		Status:       payload.Status,
		CheckInTime:  payload.CheckInTime,
		CheckOutTime: payload.CheckOutTime,
		Notes:        payload.Notes,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicate) {
			api.Fail(w, http.StatusConflict, "attendance_exists", "attendance for this date already logged", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "attendance_mark_failed", "failed to mark attendance", requestID)
		return
	}
	api.Created(w, record, requestID)
}

type updatePayload struct {
	EmployeeID   *int64  `json:"employee_id"`
	Date         *string `json:"date"`
	Status       *string `json:"status"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Notes        *string `json:"notes"`
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be an integer", requestID)
		return
	}

	var payload updatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	update := attendance.UpdateInput{
		EmployeeID:   payload.EmployeeID,
		Status:       payload.Status,
		CheckInTime:  payload.CheckInTime,
		CheckOutTime: payload.CheckOutTime,
		Notes:        payload.Notes,
	}
	v := shared.NewValidator()
	if payload.Status != nil {
		v.Enum("status", *payload.Status, statuses, "must be one of present, absent, leave, half_day")
	}
	if payload.Date != nil {
		date, ok := v.Date("date", *payload.Date)
		if ok {
			update.Date = &date
		}
	}
	if v.Reject(w, requestID) {
		return
	}

	record, err := h.Service.Store.Update(r.Context(), id, update)
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "attendance_not_found", "attendance not found", requestID)
		case errors.Is(err, attendance.ErrDuplicate):
			api.Fail(w, http.StatusConflict, "attendance_exists", "attendance for this date already logged", requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "attendance_update_failed", "failed to update attendance", requestID)
		}
		return
	}
	api.Success(w, record, requestID)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeId"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employee id must be an integer", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("startDate", r.URL.Query().Get("startDate"), "is required")
	v.Required("endDate", r.URL.Query().Get("endDate"), "is required")
	var start, end time.Time
	if raw := r.URL.Query().Get("startDate"); raw != "" {
		start, _ = v.Date("startDate", raw)
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		end, _ = v.Date("endDate", raw)
	}
	v.DateOrder("startDate", start, "endDate", end)
	if v.Reject(w, requestID) {
		return
	}

	records, err := h.Service.Store.History(r.Context(), employeeID, start, end)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_history_failed", "failed to load attendance history", requestID)
		return
	}
	if records == nil {
		records = []attendance.Record{}
	}
	api.Success(w, records, requestID)
}

func parseFilter(w http.ResponseWriter, r *http.Request, requestID string) (attendance.Filter, bool) {
	query := r.URL.Query()
	v := shared.NewValidator()
	var filter attendance.Filter

	setDate := func(field string, dst **time.Time) {
		raw := strings.TrimSpace(query.Get(field))
		if raw == "" {
			return
		}
		parsed, ok := v.Date(field, raw)
		if ok {
			*dst = &parsed
		}
	}
	setDate("date", &filter.Date)
	setDate("startDate", &filter.StartDate)
	setDate("endDate", &filter.EndDate)

	if raw := strings.TrimSpace(query.Get("employee_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			v.Add("employee_id", "must be an integer")
		} else {
			filter.EmployeeID = &id
		}
	}
	filter.Status = strings.TrimSpace(query.Get("status"))
	v.Enum("status", filter.Status, statuses, "must be one of present, absent, leave, half_day")

	if v.Reject(w, requestID) {
		return attendance.Filter{}, false
	}
	return filter, true
}
