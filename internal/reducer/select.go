package reducer

import (
	"sort"
	"strings"
)

// SelectPlayers resolves a comma-separated search against names. Each term
// matches a name exactly (ignoring case) if possible, otherwise every name
// containing it. Results are de-duplicated in first-match order. An empty
// search returns every name, sorted.
func SelectPlayers(names []string, search string) []string {
	if strings.TrimSpace(search) == "" {
		out := append([]string(nil), names...)
		sort.Strings(out)
		return out
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(n string) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	for _, term := range strings.Split(search, ",") {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		exact := false
		for _, n := range names {
			if strings.ToLower(n) == term {
				add(n)
				exact = true
			}
		}
		if exact {
			continue
		}
		for _, n := range names {
			if strings.Contains(strings.ToLower(n), term) {
				add(n)
			}
		}
	}
	return out
}
