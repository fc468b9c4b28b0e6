package shared

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{"plain date", "2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"rfc3339", "2024-01-01T09:30:00Z", time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC), false},
		{"empty is zero", "", time.Time{}, false},
		{"garbage", "01/02/2024", time.Time{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDate(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err == nil && !got.Equal(tc.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, 10, 0},
		{"explicit", "?page=3&limit=25", 3, 25, 50},
		{"limit capped", "?limit=5000", 1, 1000, 0},
		{"bad values ignored", "?page=zero&limit=-4", 1, 10, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/employees/"+tc.query, nil)
			p := ParsePagination(r, 10, 1000)
			if p.Page != tc.wantPage || p.Limit != tc.wantLimit {
				t.Errorf("pagination = %+v, want page %d limit %d", p, tc.wantPage, tc.wantLimit)
			}
			if p.Offset() != tc.wantOffset {
				t.Errorf("Offset() = %d, want %d", p.Offset(), tc.wantOffset)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}
	for _, tc := range tests {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestValidator(t *testing.T) {
	v := NewValidator()
	v.Required("full_name", " ", "is required")
	v.Enum("status", "archived", []string{"active", "inactive"}, "must be active or inactive")
	start, _ := v.Date("start_date", "2024-02-10")
	end, _ := v.Date("end_date", "2024-02-01")
	v.DateOrder("start_date", start, "end_date", end)

	if !v.HasIssues() {
		t.Fatal("expected issues")
	}
	issues := v.Issues()
	if len(issues) != 4 {
		t.Fatalf("got %d issues, want 4: %+v", len(issues), issues)
	}
	// Issues come back sorted by field.
	for i := 1; i < len(issues); i++ {
		if issues[i].Field < issues[i-1].Field {
			t.Errorf("issues not sorted: %+v", issues)
		}
	}
}
