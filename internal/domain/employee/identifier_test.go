package employee

import "testing"

func TestFormatEmployeeID(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{1, "EMP-001"},
		{7, "EMP-007"},
		{42, "EMP-042"},
		{999, "EMP-999"},
		{1000, "EMP-1000"},
	}
	for _, tc := range tests {
		if got := FormatEmployeeID(tc.n); got != tc.want {
			t.Fatalf("FormatEmployeeID(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestUsernameFromEmail(t *testing.T) {
	tests := []struct {
		email, want string
	}{
		{"jane@x.com", "jane"},
		{"john.smith@example.org", "john.smith"},
		{"no-at-sign", "no-at-sign"},
	}
	for _, tc := range tests {
		if got := UsernameFromEmail(tc.email); got != tc.want {
			t.Fatalf("UsernameFromEmail(%q) = %q, want %q", tc.email, got, tc.want)
		}
	}
}
