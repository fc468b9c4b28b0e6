package leave

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Type struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	AllowedDays int       `json:"allowed_days"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewType struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	AllowedDays int     `json:"allowed_days"`
}

type Request struct {
	ID            int64      `json:"id"`
	EmployeeID    int64      `json:"employee_id"`
	LeaveTypeID   int64      `json:"leave_type_id"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       time.Time  `json:"end_date"`
	Reason        *string    `json:"reason"`
	Status        string     `json:"status"`
	ApprovedBy    *int64     `json:"approved_by"`
	ApprovalDate  *time.Time `json:"approval_date"`
	ApprovalNotes *string    `json:"approval_notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	EmployeeName  *string `json:"employee_name,omitempty"`
}

type NewRequest struct {
	EmployeeID  int64     `json:"employee_id"`
	LeaveTypeID int64     `json:"leave_type_id"`
	StartDate   time.Time `json:"-"`
	EndDate     time.Time `json:"-"`
	Reason      *string   `json:"reason"`
}

// StatusUpdate records an approval decision on a pending request.
type StatusUpdate struct {
	Status     string
	ApprovedBy int64
	Notes      *string
}

type RequestFilter struct {
	EmployeeID *int64
	Status     string
}
