package employee

import (
	"time"

	"hrms/internal/domain/directory"
)

// Employee is the joined profile view: the employee row plus its linked user
// fields and the resolved department/position names.
type Employee struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	EmployeeID    string     `json:"employee_id"`
	DepartmentID  *int64     `json:"department_id"`
	PositionID    *int64     `json:"position_id"`
	Phone         string     `json:"phone,omitempty"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	DateOfJoining time.Time  `json:"date_of_joining"`
	Salary        *float64   `json:"salary,omitempty"`
	Address       string     `json:"address,omitempty"`
	City          string     `json:"city,omitempty"`
	State         string     `json:"state,omitempty"`
	Country       string     `json:"country,omitempty"`
	PostalCode    string     `json:"postal_code,omitempty"`
	FullName      string     `json:"full_name"`
	Email         string     `json:"email"`
	Username      string     `json:"username"`
	IsActive      bool       `json:"is_active"`
	Department    string     `json:"department,omitempty"`
	Position      string     `json:"position,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type NewEmployee struct {
	FullName      string
	Email         string
	Username      string
	Department    directory.Ref
	Position      directory.Ref
	Phone         string
	DateOfBirth   *time.Time
	DateOfJoining time.Time
	Salary        *float64
	Address       string
	City          string
	State         string
	Country       string
	PostalCode    string
}

// Update applies only the fields that are non-nil; everything else is left
// untouched.
type Update struct {
	Department  *directory.Ref
	Position    *directory.Ref
	Phone       *string
	DateOfBirth *time.Time
	Salary      *float64
	Address     *string
	City        *string
	State       *string
	Country     *string
	PostalCode  *string
}

type ListFilter struct {
	Search       string
	DepartmentID *int64
	Status       string
}

type ListResult struct {
	Employees []Employee
	Total     int
}
