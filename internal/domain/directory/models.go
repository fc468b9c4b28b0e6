package directory

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

type Department struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Position struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	DepartmentID *int64    `json:"department_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Resolution is the tagged result of a find-or-create: the concrete record id
// plus whether this call created it.
type Resolution struct {
	ID      int64
	Created bool
}

// Ref is a department or position reference supplied as either a numeric id
// or a free-text name. A JSON number resolves by id, a JSON string by name.
type Ref struct {
	Set  bool
	ID   int64
	Name string
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*r = Ref{}
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*r = Ref{}
			return nil
		}
		// Clients send ids as strings too; treat all-digit strings as ids.
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			*r = Ref{Set: true, ID: id}
			return nil
		}
		*r = Ref{Set: true, Name: raw}
		return nil
	}

	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*r = Ref{Set: true, ID: id}
	return nil
}

func (r Ref) IsName() bool {
	return r.Set && r.Name != ""
}

// NormalizeDepartmentName upper-cases a free-text department name before
// creation, matching how implicit departments are stored.
func NormalizeDepartmentName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// NormalizePositionTitle replaces underscores with spaces and title-cases each
// word before creating an implicit position.
func NormalizePositionTitle(title string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(title), "_", " ")
	words := strings.Fields(cleaned)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
