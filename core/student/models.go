package student

import "strings"

// Student is one roster entry from the coaching backend. Wire names
// follow the backend's document shape.
type Student struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone_no"`
}

// Filter returns the subsequence of roster whose name or email contains
// query, ignoring case. An empty query returns the roster unchanged, in
// the same order. Stateless and idempotent.
func Filter(roster []Student, query string) []Student {
	if query == "" {
		return roster
	}
	q := strings.ToLower(query)
	filtered := make([]Student, 0, len(roster))
	for _, s := range roster {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Email), q) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
