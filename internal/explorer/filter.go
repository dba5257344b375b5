package explorer

import "strings"

// Wildcard matches every record. The UI sends it literally; an absent
// parameter means the same thing.
const Wildcard = "All"

// Predicate narrows the unified sequence. State and Category match exactly
// (case-sensitive); Month matches by case-insensitive substring, so "Dec"
// matches an event spanning "Dec-Feb" but "December" does not.
type Predicate struct {
	State    string
	Category string
	Month    string
}

func isWildcard(s string) bool {
	return s == "" || s == Wildcard
}

// Matches reports whether the record satisfies every non-wildcard component.
// A non-wildcard month excludes records that carry no month at all.
func (p Predicate) Matches(r Record) bool {
	if !isWildcard(p.State) && r.State != p.State {
		return false
	}
	if !isWildcard(p.Category) && string(r.Category) != p.Category {
		return false
	}
	if !isWildcard(p.Month) {
		if r.Month == "" {
			return false
		}
		if !strings.Contains(strings.ToLower(r.Month), strings.ToLower(p.Month)) {
			return false
		}
	}
	return true
}

// Filter returns the ordered subsequence of records matching the predicate.
// The dataset is small and rebuilt per render, so a linear scan is the right
// tool; no indexing.
func Filter(records []Record, p Predicate) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if p.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
