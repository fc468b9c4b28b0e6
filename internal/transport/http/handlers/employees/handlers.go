package employeeshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/directory"
	"hrms/internal/domain/employee"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Employees *employee.Store
	Directory *directory.Store
}

func NewHandler(employees *employee.Store, dir *directory.Store) *Handler {
	return &Handler{Employees: employees, Directory: dir}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleList)

		r.Post("/departments/", h.HandleCreateDepartment)
		r.Get("/departments/", h.HandleListDepartments)
		r.Post("/positions/", h.HandleCreatePosition)
		r.Get("/positions/", h.HandleListPositions)

		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

type createPayload struct {
	FullName      string        `json:"full_name"`
	Email         string        `json:"email"`
	Username      string        `json:"username"`
	DepartmentID  directory.Ref `json:"department_id"`
	PositionID    directory.Ref `json:"position_id"`
	Phone         string        `json:"phone"`
	DateOfBirth   string        `json:"date_of_birth"`
	DateOfJoining string        `json:"date_of_joining"`
	Salary        *float64      `json:"salary"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	State         string        `json:"state"`
	Country       string        `json:"country"`
	PostalCode    string        `json:"postal_code"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("full_name", payload.FullName, "is required")
	v.Required("email", payload.Email, "is required")
	v.Required("date_of_joining", payload.DateOfJoining, "is required")

	var joined time.Time
	if payload.DateOfJoining != "" {
		joined, _ = v.Date("date_of_joining", payload.DateOfJoining)
	}
	born, _ := parseOptionalDate(v, "date_of_birth", payload.DateOfBirth)
	if v.Reject(w, requestID) {
		return
	}

	created, err := h.Employees.Create(r.Context(), employee.NewEmployee{
		FullName:      payload.FullName,
		Email:         payload.Email,
		Username:      payload.Username,
		Department:    payload.DepartmentID,
		Position:      payload.PositionID,
		Phone:         payload.Phone,
		DateOfBirth:   born,
		DateOfJoining: joined,
		Salary:        payload.Salary,
		Address:       payload.Address,
		City:          payload.City,
		State:         payload.State,
		Country:       payload.Country,
		PostalCode:    payload.PostalCode,
	})
	if err != nil {
		h.failStore(w, requestID, err, "employee_create_failed", "failed to create employee")
		return
	}
	api.Created(w, created, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	found, err := h.Employees.Get(r.Context(), id)
	if err != nil {
		h.failStore(w, requestID, err, "employee_get_failed", "failed to load employee")
		return
	}
	api.Success(w, found, requestID)
}

type listResponse struct {
	Data       []employee.Employee `json:"data"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"totalPages"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 10, 1000)

	filter := employee.ListFilter{
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
	}
	if raw := r.URL.Query().Get("department_id"); raw != "" {
		deptID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_department", "department_id must be an integer", requestID)
			return
		}
		filter.DepartmentID = &deptID
	}

	result, err := h.Employees.List(r.Context(), filter, page.Limit, page.Offset())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", requestID)
		return
	}
	if result.Employees == nil {
		result.Employees = []employee.Employee{}
	}
	api.Success(w, listResponse{
		Data:       result.Employees,
		Total:      result.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: shared.TotalPages(result.Total, page.Limit),
	}, requestID)
}

type updatePayload struct {
	DepartmentID *directory.Ref `json:"department_id"`
	PositionID   *directory.Ref `json:"position_id"`
	Phone        *string        `json:"phone"`
	DateOfBirth  *string        `json:"date_of_birth"`
	Salary       *float64       `json:"salary"`
	Address      *string        `json:"address"`
	City         *string        `json:"city"`
	State        *string        `json:"state"`
	Country      *string        `json:"country"`
	PostalCode   *string        `json:"postal_code"`
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	var payload updatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	update := employee.Update{
		Department: payload.DepartmentID,
		Position:   payload.PositionID,
		Phone:      payload.Phone,
		Salary:     payload.Salary,
		Address:    payload.Address,
		City:       payload.City,
		State:      payload.State,
		Country:    payload.Country,
		PostalCode: payload.PostalCode,
	}
	if payload.DateOfBirth != nil {
		v := shared.NewValidator()
		born, parsed := v.Date("date_of_birth", *payload.DateOfBirth)
		if !parsed {
			v.Reject(w, requestID)
			return
		}
		update.DateOfBirth = &born
	}

	updated, err := h.Employees.Update(r.Context(), id, update)
	if err != nil {
		h.failStore(w, requestID, err, "employee_update_failed", "failed to update employee")
		return
	}
	api.Success(w, updated, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id, ok := pathID(w, r, requestID)
	if !ok {
		return
	}

	if err := h.Employees.Delete(r.Context(), id); err != nil {
		h.failStore(w, requestID, err, "employee_delete_failed", "failed to delete employee")
		return
	}
	api.Success(w, map[string]string{"message": "employee deleted"}, requestID)
}

type departmentPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) HandleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload departmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	v.Required("name", payload.Name, "is required")
	if v.Reject(w, requestID) {
		return
	}

	created, err := h.Directory.CreateDepartment(r.Context(), payload.Name, payload.Description)
	if err != nil {
		if errors.Is(err, directory.ErrDuplicate) {
			api.Fail(w, http.StatusBadRequest, "department_exists", "department already exists", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "department_create_failed", "failed to create department", requestID)
		return
	}
	api.Created(w, created, requestID)
}

func (h *Handler) HandleListDepartments(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	departments, err := h.Directory.ListDepartments(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_list_failed", "failed to list departments", requestID)
		return
	}
	if departments == nil {
		departments = []directory.Department{}
	}
	api.Success(w, departments, requestID)
}

type positionPayload struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	DepartmentID *int64 `json:"department_id"`
}

func (h *Handler) HandleCreatePosition(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload positionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	v.Required("title", payload.Title, "is required")
	if v.Reject(w, requestID) {
		return
	}

	created, err := h.Directory.CreatePosition(r.Context(), payload.Title, payload.Description, payload.DepartmentID)
	if err != nil {
		if errors.Is(err, directory.ErrDuplicate) {
			api.Fail(w, http.StatusBadRequest, "position_exists", "position already exists", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "position_create_failed", "failed to create position", requestID)
		return
	}
	api.Created(w, created, requestID)
}

func (h *Handler) HandleListPositions(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	positions, err := h.Directory.ListPositions(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "position_list_failed", "failed to list positions", requestID)
		return
	}
	if positions == nil {
		positions = []directory.Position{}
	}
	api.Success(w, positions, requestID)
}

func (h *Handler) failStore(w http.ResponseWriter, requestID string, err error, code, message string) {
	switch {
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
	case errors.Is(err, auth.ErrDuplicateEmail):
		api.Fail(w, http.StatusBadRequest, "email_registered", "email already registered", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, code, message, requestID)
	}
}

func pathID(w http.ResponseWriter, r *http.Request, requestID string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be an integer", requestID)
		return 0, false
	}
	return id, true
}

func parseOptionalDate(v *shared.Validator, field, raw string) (*time.Time, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, true
	}
	parsed, ok := v.Date(field, raw)
	if !ok {
		return nil, false
	}
	return &parsed, true
}
