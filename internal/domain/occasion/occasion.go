// Package occasion maps requested occasions onto the item occasion tags that
// satisfy them.
package occasion

import "strings"

// relevant maps a lowercase preference occasion to item occasions.
var relevant = map[string][]string{
	"casual": {"Casual", "Sport"},
	"work":   {"Work", "Formal"},
	"formal": {"Formal"},
	"date":   {"Party", "Casual", "Formal"},
	"sport":  {"Sport", "Casual"},
	"lounge": {"Casual"},
}

// Relevant returns the item occasions accepted for occasion. Unmapped
// occasions are returned as-is and must match an item tag exactly.
func Relevant(occasion string) []string {
	if tags, ok := relevant[strings.ToLower(strings.TrimSpace(occasion))]; ok {
		out := make([]string, len(tags))
		copy(out, tags)
		return out
	}
	return []string{occasion}
}

// Matches reports whether any item occasion is relevant to occasion.
// Items without occasions never match.
func Matches(itemOccasions []string, occasion string) bool {
	if len(itemOccasions) == 0 {
		return false
	}
	tags, mapped := relevant[strings.ToLower(strings.TrimSpace(occasion))]
	for _, have := range itemOccasions {
		if !mapped {
			if have == occasion {
				return true
			}
			continue
		}
		for _, want := range tags {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}
