package payroll

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewRecordNet(t *testing.T) {
	tests := []struct {
		name       string
		basic      string
		bonus      string
		deductions string
		want       string
	}{
		{"plain", "50000.00", "5000.00", "1500.00", "53500"},
		{"no extras", "42000.00", "0", "0", "42000"},
		{"deductions exceed bonus", "1000.00", "100.50", "200.75", "899.75"},
		{"cents stay exact", "0.10", "0.20", "0.00", "0.3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := NewRecord{
				BasicSalary: decimal.RequireFromString(tc.basic),
				Bonus:       decimal.RequireFromString(tc.bonus),
				Deductions:  decimal.RequireFromString(tc.deductions),
			}
			if got := in.Net(); !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("Net() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestRenderPayslip(t *testing.T) {
	name := "Alice Mendis"
	code := "EMP-001"
	paid := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	record := &Record{
		ID:           7,
		EmployeeID:   1,
		Month:        "2025-03",
		BasicSalary:  decimal.RequireFromString("50000.00"),
		Bonus:        decimal.RequireFromString("5000.00"),
		Deductions:   decimal.RequireFromString("1500.00"),
		NetSalary:    decimal.RequireFromString("53500.00"),
		PaymentDate:  &paid,
		EmployeeName: &name,
		EmployeeCode: &code,
	}

	var buf bytes.Buffer
	if err := RenderPayslip(&buf, record); err != nil {
		t.Fatalf("RenderPayslip: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header")
	}
}
