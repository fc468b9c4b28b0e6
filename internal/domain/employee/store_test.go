package employee

import (
	"strings"
	"testing"
)

func TestBuildListWhereEmpty(t *testing.T) {
	where, args := buildListWhere(ListFilter{})
	if where != "" || len(args) != 0 {
		t.Fatalf("expected no filter clause, got %q with %d args", where, len(args))
	}
}

func TestBuildListWhereSearch(t *testing.T) {
	where, args := buildListWhere(ListFilter{Search: "jane"})
	if len(args) != 1 || args[0] != "%jane%" {
		t.Fatalf("expected one wildcard arg, got %v", args)
	}
	for _, column := range []string{"u.full_name", "u.email", "e.employee_id"} {
		if !strings.Contains(where, column+" ILIKE $1") {
			t.Fatalf("expected %s in search clause, got %q", column, where)
		}
	}
	if !strings.Contains(where, " OR ") {
		t.Fatalf("search terms must be OR-combined, got %q", where)
	}
}

func TestBuildListWhereCombined(t *testing.T) {
	deptID := int64(3)
	where, args := buildListWhere(ListFilter{Search: "emp", DepartmentID: &deptID, Status: "inactive"})
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %v", args)
	}
	if !strings.Contains(where, "e.department_id = $2") {
		t.Fatalf("expected department filter, got %q", where)
	}
	if !strings.Contains(where, "u.is_active = FALSE") {
		t.Fatalf("expected inactive filter, got %q", where)
	}
	if !strings.Contains(where, " AND ") {
		t.Fatalf("filters must be AND-combined, got %q", where)
	}
}

func TestBuildListWhereStatusActive(t *testing.T) {
	where, _ := buildListWhere(ListFilter{Status: "active"})
	if !strings.Contains(where, "u.is_active = TRUE") {
		t.Fatalf("expected active filter, got %q", where)
	}
}

func TestBuildListWhereIgnoresUnknownStatus(t *testing.T) {
	where, _ := buildListWhere(ListFilter{Status: "suspended"})
	if strings.Contains(where, "is_active") {
		t.Fatalf("unknown status must not filter, got %q", where)
	}
}
