package attendance

import (
	"time"

	"hrms/internal/domain/employee"
)

// BuildDailyRoster merges the full employee list with the attendance records
// stored for one date. Output cardinality follows the employee list, not the
// attendance table: every employee gets exactly one entry, and employees
// without a stored row get a synthetic absent entry with nil id and times.
func BuildDailyRoster(employees []employee.Employee, records []Record, date time.Time) []Record {
	byEmployee := make(map[int64]Record, len(records))
	for _, record := range records {
		byEmployee[record.EmployeeID] = record
	}

	out := make([]Record, 0, len(employees))
	for i := range employees {
		emp := employees[i]
		if record, ok := byEmployee[emp.ID]; ok {
			record.Employee = &employees[i]
			out = append(out, record)
			continue
		}
		out = append(out, Record{
			EmployeeID: emp.ID,
			Date:       date,
			Status:     StatusAbsent,
			Employee:   &employees[i],
		})
	}
	return out
}
