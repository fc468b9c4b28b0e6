package attendance

import (
	"time"

	"hrms/internal/domain/employee"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLeave   = "leave"
	StatusHalfDay = "half_day"
)

// Record is one attendance entry. ID is nil only for roster entries
// synthesized for employees without a stored row on the queried date.
type Record struct {
	ID           *int64             `json:"id"`
	EmployeeID   int64              `json:"employee_id"`
	Date         time.Time          `json:"date"`
	Status       string             `json:"status"`
	CheckInTime  *string            `json:"check_in_time"`
	CheckOutTime *string            `json:"check_out_time"`
	Notes        *string            `json:"notes"`
	CreatedAt    *time.Time         `json:"created_at,omitempty"`
	UpdatedAt    *time.Time         `json:"updated_at,omitempty"`
	Employee     *employee.Employee `json:"employee,omitempty"`
}

type MarkInput struct {
	EmployeeID   int64
	Date         time.Time
	Status       string
	CheckInTime  *string
	CheckOutTime *string
	Notes        *string
}

type UpdateInput struct {
	EmployeeID   *int64
	Date         *time.Time
	Status       *string
	CheckInTime  *string
	CheckOutTime *string
	Notes        *string
}

// Filter drives the query endpoint. A single date with nothing else selects
// the daily roster view instead of a raw record scan.
type Filter struct {
	Date       *time.Time
	StartDate  *time.Time
	EndDate    *time.Time
	EmployeeID *int64
	Status     string
}

func (f Filter) IsDailyRoster() bool {
	return f.Date != nil && f.StartDate == nil && f.EndDate == nil && f.EmployeeID == nil && f.Status == ""
}
