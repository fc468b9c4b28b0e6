package employee

import "fmt"

// FormatEmployeeID renders the human-readable identifier for the given
// sequence number, zero-padded to three digits (EMP-001, EMP-002, ...).
// Numbers past 999 simply widen.
func FormatEmployeeID(n int64) string {
	return fmt.Sprintf("EMP-%03d", n)
}
