// Package season resolves seasons from preference strings, temperatures and
// calendar dates.
package season

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Season is one of the four wardrobe seasons.
type Season string

// Known seasons. Values match the capitalised names stored on wardrobe items.
const (
	Spring Season = "Spring"
	Summer Season = "Summer"
	Fall   Season = "Fall"
	Winter Season = "Winter"
)

// CurrentKeyword is the preference value asking for the season at request time.
const CurrentKeyword = "current"

// Temperature thresholds in °F for weather buckets.
const (
	winterBelowF = 40
	summerFromF  = 60
)

// ErrInvalidHemisphere is returned for unrecognised hemisphere names.
var ErrInvalidHemisphere = errors.New("invalid hemisphere")

// Hemisphere selects the calendar mapping used by Current.
type Hemisphere int

// Supported hemispheres.
const (
	Northern Hemisphere = iota
	Southern
)

func (h Hemisphere) String() string {
	if h == Southern {
		return "south"
	}
	return "north"
}

// ParseHemisphere accepts north/northern/n and south/southern/s, case-insensitive.
// An empty string resolves to Northern.
func ParseHemisphere(s string) (Hemisphere, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "n", "north", "northern":
		return Northern, nil
	case "s", "south", "southern":
		return Southern, nil
	default:
		return Northern, fmt.Errorf("%w: %q", ErrInvalidHemisphere, s)
	}
}

// Lower returns the lowercase preference spelling, e.g. "fall".
func (s Season) Lower() string { return strings.ToLower(string(s)) }

// Parse maps a season name to a Season. The match is case-insensitive and
// "autumn" is accepted for Fall. The keyword "current" is not a season and
// yields ok=false; callers resolve it themselves.
func Parse(name string) (Season, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "spring":
		return Spring, true
	case "summer":
		return Summer, true
	case "fall", "autumn":
		return Fall, true
	case "winter":
		return Winter, true
	default:
		return "", false
	}
}

// IsCurrent reports whether the preference asks for the current season.
func IsCurrent(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), CurrentKeyword)
}

// ForTemperature returns the season bucket for a temperature in °F.
// Below 40 is Winter, below 60 is Fall or Spring, anything else Summer.
func ForTemperature(tempF float64) []Season {
	switch {
	case tempF < winterBelowF:
		return []Season{Winter}
	case tempF < summerFromF:
		return []Season{Fall, Spring}
	default:
		return []Season{Summer}
	}
}

// Matches reports whether any of the item's seasons equals one of targets.
// An item without seasons never matches.
func Matches(itemSeasons []string, targets ...Season) bool {
	for _, raw := range itemSeasons {
		s, ok := Parse(raw)
		if !ok {
			continue
		}
		for _, t := range targets {
			if s == t {
				return true
			}
		}
	}
	return false
}

// Current returns the meteorological season for t in hemisphere h.
func Current(t time.Time, h Hemisphere) Season {
	var s Season
	switch t.Month() {
	case time.March, time.April, time.May:
		s = Spring
	case time.June, time.July, time.August:
		s = Summer
	case time.September, time.October, time.November:
		s = Fall
	default:
		s = Winter
	}
	if h == Southern {
		return s.Opposite()
	}
	return s
}

// Opposite returns the season six months away.
func (s Season) Opposite() Season {
	switch s {
	case Spring:
		return Fall
	case Summer:
		return Winter
	case Fall:
		return Spring
	case Winter:
		return Summer
	default:
		return s
	}
}
