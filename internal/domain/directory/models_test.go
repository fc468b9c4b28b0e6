package directory

import (
	"encoding/json"
	"testing"
)

func TestRefUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Ref
	}{
		{"number", `3`, Ref{Set: true, ID: 3}},
		{"numeric string", `"12"`, Ref{Set: true, ID: 12}},
		{"name string", `"engineering"`, Ref{Set: true, Name: "engineering"}},
		{"null", `null`, Ref{}},
		{"empty string", `""`, Ref{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var ref Ref
			if err := json.Unmarshal([]byte(tc.raw), &ref); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.raw, err)
			}
			if ref != tc.want {
				t.Fatalf("got %+v, want %+v", ref, tc.want)
			}
		})
	}
}

func TestRefUnmarshalRejectsObjects(t *testing.T) {
	var ref Ref
	if err := json.Unmarshal([]byte(`{"id":1}`), &ref); err == nil {
		t.Fatal("expected error for object reference")
	}
}

func TestNormalizeDepartmentName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"engineering", "ENGINEERING"},
		{"  sales ", "SALES"},
		{"Human Resources", "HUMAN RESOURCES"},
	}
	for _, tc := range tests {
		if got := NormalizeDepartmentName(tc.in); got != tc.want {
			t.Fatalf("NormalizeDepartmentName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizePositionTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"software_engineer", "Software Engineer"},
		{"senior_data_analyst", "Senior Data Analyst"},
		{"manager", "Manager"},
		{"  qa_LEAD ", "Qa Lead"},
	}
	for _, tc := range tests {
		if got := NormalizePositionTitle(tc.in); got != tc.want {
			t.Fatalf("NormalizePositionTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
