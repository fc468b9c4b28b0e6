package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Record struct {
	ID            int64           `json:"id"`
	EmployeeID    int64           `json:"employee_id"`
	Month         string          `json:"month"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	Bonus         decimal.Decimal `json:"bonus"`
	Deductions    decimal.Decimal `json:"deductions"`
	NetSalary     decimal.Decimal `json:"net_salary"`
	PaymentDate   *time.Time      `json:"payment_date"`
	PaymentMethod *string         `json:"payment_method"`
	Notes         *string         `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
}

type NewRecord struct {
	EmployeeID    int64           `json:"employee_id"`
	Month         string          `json:"month"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	Bonus         decimal.Decimal `json:"bonus"`
	Deductions    decimal.Decimal `json:"deductions"`
	PaymentDate   *time.Time      `json:"-"`
	PaymentMethod *string         `json:"payment_method"`
	Notes         *string         `json:"notes"`
}

// Net is computed server-side; client-supplied net values are ignored.
func (n NewRecord) Net() decimal.Decimal {
	return n.BasicSalary.Add(n.Bonus).Sub(n.Deductions)
}
