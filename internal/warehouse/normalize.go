package warehouse

import "strings"

// The remote schema's column naming is not contractually guaranteed, so the
// loader matches columns after normalization rather than trusting exact names.

// NormalizeColumn collapses runs of whitespace to a single space and trims.
func NormalizeColumn(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	wasWS := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f' || r == '_' {
			if !wasWS {
				b.WriteByte(' ')
				wasWS = true
			}
			continue
		}
		b.WriteRune(r)
		wasWS = false
	}
	return strings.TrimSpace(b.String())
}

// FindYearColumn returns the index of the first column that looks like a
// year column, or -1.
func FindYearColumn(cols []string) int {
	for i, c := range cols {
		switch strings.ToLower(NormalizeColumn(c)) {
		case "year", "fiscal year", "period":
			return i
		}
	}
	return -1
}

// FindColumnContaining returns the index of the first column whose normalized
// name contains the needle, case-insensitively, or -1.
func FindColumnContaining(cols []string, needle string) int {
	needle = strings.ToLower(needle)
	for i, c := range cols {
		if strings.Contains(strings.ToLower(NormalizeColumn(c)), needle) {
			return i
		}
	}
	return -1
}
