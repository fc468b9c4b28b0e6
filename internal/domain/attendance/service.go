package attendance

import (
	"context"
	"time"

	"hrms/internal/domain/employee"
)

// EmployeeLister is the slice of the employee registry the roster needs.
type EmployeeLister interface {
	List(ctx context.Context, filter employee.ListFilter, limit, offset int) (employee.ListResult, error)
}

type Service struct {
	Store     *Store
	Employees EmployeeLister
	RosterCap int
}

func NewService(store *Store, employees EmployeeLister, rosterCap int) *Service {
	return &Service{Store: store, Employees: employees, RosterCap: rosterCap}
}

// DailyRoster returns one entry per employee for the given date, synthesizing
// absent entries for employees with no stored record.
func (s *Service) DailyRoster(ctx context.Context, date time.Time) ([]Record, error) {
	result, err := s.Employees.List(ctx, employee.ListFilter{}, s.RosterCap, 0)
	if err != nil {
		return nil, err
	}
	records, err := s.Store.RecordsForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return BuildDailyRoster(result.Employees, records, date), nil
}

// Query runs a filtered record scan and attaches employee details to each row.
func (s *Service) Query(ctx context.Context, filter Filter) ([]Record, error) {
	records, err := s.Store.Query(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return records, nil
	}

	result, err := s.Employees.List(ctx, employee.ListFilter{}, s.RosterCap, 0)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*employee.Employee, len(result.Employees))
	for i := range result.Employees {
		byID[result.Employees[i].ID] = &result.Employees[i]
	}
	for i := range records {
		records[i].Employee = byID[records[i].EmployeeID]
	}
	return records, nil
}
