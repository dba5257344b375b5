package explorer

import "sort"

// Options are the selector values offered by the explorer UI.
type Options struct {
	States     []string `json:"states"`
	Categories []string `json:"categories"`
	Months     []string `json:"months"`
}

// months offered by the filter UI; free-text event months are matched by
// substring against these
var monthOptions = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// BuildOptions derives the selector values from the unified records: the
// sorted distinct union of state names across all four sources, the fixed
// category tags, and the twelve month abbreviations. Each list is prefixed
// with the wildcard.
func BuildOptions(records []Record) Options {
	seen := make(map[string]struct{}, len(records))
	states := make([]string, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.State]; ok {
			continue
		}
		seen[r.State] = struct{}{}
		states = append(states, r.State)
	}
	sort.Strings(states)

	cats := make([]string, 0, len(Categories)+1)
	cats = append(cats, Wildcard)
	for _, c := range Categories {
		cats = append(cats, string(c))
	}

	return Options{
		States:     append([]string{Wildcard}, states...),
		Categories: cats,
		Months:     append([]string{Wildcard}, monthOptions...),
	}
}
