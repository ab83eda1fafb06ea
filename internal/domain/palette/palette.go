// Package palette scores garment color combinations with simple color-wheel
// rules.
package palette

import "strings"

// Color scores, best first.
const (
	ScoreMonochromatic = 3
	ScoreAnalogous     = 2
	ScoreComplementary = 1
	ScoreNone          = 0
)

// Neutrals are ignored by the wheel checks.
var Neutrals = []string{"Black", "White", "Gray", "Beige"}

// Wheel is the ordered, circular color wheel used for adjacency.
var Wheel = []string{"Red", "Orange", "Yellow", "Green", "Blue", "Purple", "Pink"}

// ComplementaryPairs are the recognised opposite pairs.
var ComplementaryPairs = [][2]string{
	{"Red", "Green"},
	{"Blue", "Orange"},
	{"Yellow", "Purple"},
	{"Pink", "Green"},
}

var (
	neutralSet    = toSet(Neutrals)
	wheelIndex    = indexOf(Wheel)
	complementary = pairSet(ComplementaryPairs)
)

// Score rates colors: 3 when at most one distinct non-neutral color remains,
// 2 when every pair of non-neutral colors are wheel neighbours, 1 when some
// pair is complementary, otherwise 0.
func Score(colors []string) int {
	hues := NonNeutral(colors)
	switch {
	case len(hues) <= 1:
		return ScoreMonochromatic
	case analogous(hues):
		return ScoreAnalogous
	case complementaryAny(hues):
		return ScoreComplementary
	default:
		return ScoreNone
	}
}

// IsMonochromatic reports whether colors contain at most one distinct
// non-neutral color.
func IsMonochromatic(colors []string) bool {
	return len(NonNeutral(colors)) <= 1
}

// IsAnalogous reports whether there are at least two distinct non-neutral
// colors and all of them are mutually adjacent on the wheel.
func IsAnalogous(colors []string) bool {
	hues := NonNeutral(colors)
	return len(hues) > 1 && analogous(hues)
}

// IsComplementary reports whether any pair of colors is a complementary pair.
func IsComplementary(colors []string) bool {
	return complementaryAny(NonNeutral(colors))
}

// IsNeutral reports whether c is a neutral color.
func IsNeutral(c string) bool {
	_, ok := neutralSet[key(c)]
	return ok
}

// NonNeutral returns the distinct non-neutral colors in first-seen order,
// normalised to lowercase. Blank entries are dropped.
func NonNeutral(colors []string) []string {
	seen := make(map[string]struct{}, len(colors))
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		k := key(c)
		if k == "" {
			continue
		}
		if _, ok := neutralSet[k]; ok {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Adjacent reports whether a and b are neighbours on the circular wheel.
func Adjacent(a, b string) bool {
	i, ok := wheelIndex[key(a)]
	if !ok {
		return false
	}
	j, ok := wheelIndex[key(b)]
	if !ok {
		return false
	}
	d := i - j
	if d < 0 {
		d = -d
	}
	return d == 1 || d == len(Wheel)-1
}

func analogous(hues []string) bool {
	for i := 0; i < len(hues); i++ {
		for j := i + 1; j < len(hues); j++ {
			if !Adjacent(hues[i], hues[j]) {
				return false
			}
		}
	}
	return true
}

func complementaryAny(hues []string) bool {
	for i := 0; i < len(hues); i++ {
		for j := i + 1; j < len(hues); j++ {
			if _, ok := complementary[pairKey(hues[i], hues[j])]; ok {
				return true
			}
		}
	}
	return false
}

func key(c string) string { return strings.ToLower(strings.TrimSpace(c)) }

func pairKey(a, b string) [2]string {
	a, b = key(a), key(b)
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

func toSet(values []string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[key(v)] = struct{}{}
	}
	return m
}

func indexOf(values []string) map[string]int {
	m := make(map[string]int, len(values))
	for i, v := range values {
		m[key(v)] = i
	}
	return m
}

func pairSet(pairs [][2]string) map[[2]string]struct{} {
	m := make(map[[2]string]struct{}, len(pairs))
	for _, p := range pairs {
		m[pairKey(p[0], p[1])] = struct{}{}
	}
	return m
}
