package payroll

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// RenderPayslip writes a one-page PDF payslip for the record to w.
func RenderPayslip(w io.Writer, record *Record) error {
	name := ""
	if record.EmployeeName != nil {
		name = *record.EmployeeName
	}
	code := ""
	if record.EmployeeCode != nil {
		code = *record.EmployeeCode
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", name, code))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", record.Month))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Basic salary: %s", record.BasicSalary.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Bonus: %s", record.Bonus.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %s", record.Deductions.StringFixed(2)))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net salary: %s", record.NetSalary.StringFixed(2)))
	if record.PaymentDate != nil {
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Paid on: %s", record.PaymentDate.Format("2006-01-02")))
	}

	return pdf.Output(w)
}
