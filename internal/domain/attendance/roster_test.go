package attendance

import (
	"testing"
	"time"

	"hrms/internal/domain/employee"
)

func ptr[T any](v T) *T { return &v }

func TestBuildDailyRoster(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	employees := []employee.Employee{
		{ID: 1, EmployeeID: "EMP-001", FullName: "Alice Mendis"},
		{ID: 2, EmployeeID: "EMP-002", FullName: "Bruno Silva"},
		{ID: 3, EmployeeID: "EMP-003", FullName: "Chamari Perera"},
	}
	records := []Record{
		{ID: ptr(int64(11)), EmployeeID: 2, Date: date, Status: StatusPresent, CheckInTime: ptr("09:05:00")},
	}

	roster := BuildDailyRoster(employees, records, date)

	if len(roster) != len(employees) {
		t.Fatalf("roster length = %d, want %d", len(roster), len(employees))
	}

	for i, entry := range roster {
		if entry.EmployeeID != employees[i].ID {
			t.Errorf("entry %d employee = %d, want %d", i, entry.EmployeeID, employees[i].ID)
		}
		if entry.Employee == nil {
			t.Errorf("entry %d has no employee attached", i)
		}
	}

	if roster[1].Status != StatusPresent {
		t.Errorf("stored record status = %q, want %q", roster[1].Status, StatusPresent)
	}
	if roster[1].ID == nil || *roster[1].ID != 11 {
		t.Errorf("stored record lost its id: %v", roster[1].ID)
	}
	if roster[1].CheckInTime == nil || *roster[1].CheckInTime != "09:05:00" {
		t.Errorf("stored record lost check-in time")
	}

	for _, i := range []int{0, 2} {
		entry := roster[i]
		if entry.Status != StatusAbsent {
			t.Errorf("synthetic entry %d status = %q, want %q", i, entry.Status, StatusAbsent)
		}
		if entry.ID != nil {
			t.Errorf("synthetic entry %d has id %d, want nil", i, *entry.ID)
		}
		if entry.CheckInTime != nil || entry.CheckOutTime != nil {
			t.Errorf("synthetic entry %d has times set", i)
		}
		if !entry.Date.Equal(date) {
			t.Errorf("synthetic entry %d date = %v, want %v", i, entry.Date, date)
		}
	}
}

func TestBuildDailyRosterEmptyEmployees(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	roster := BuildDailyRoster(nil, []Record{{EmployeeID: 9, Date: date, Status: StatusPresent}}, date)
	if len(roster) != 0 {
		t.Fatalf("roster length = %d, want 0; output follows the employee list", len(roster))
	}
}

func TestFilterIsDailyRoster(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"date only", Filter{Date: &date}, true},
		{"no date", Filter{}, false},
		{"date with employee", Filter{Date: &date, EmployeeID: ptr(int64(1))}, false},
		{"date with status", Filter{Date: &date, Status: StatusPresent}, false},
		{"date with range", Filter{Date: &date, StartDate: &date}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.IsDailyRoster(); got != tc.want {
				t.Errorf("IsDailyRoster() = %v, want %v", got, tc.want)
			}
		})
	}
}
