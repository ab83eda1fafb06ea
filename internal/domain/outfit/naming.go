package outfit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/outfitter/internal/domain/model"
	"github.com/okian/outfitter/internal/domain/season"
)

var occasionNames = map[string][]string{
	"casual": {"Easygoing Everyday", "Weekend Casual", "Relaxed Day Out"},
	"work":   {"Office Ready", "Boardroom Polish", "Nine-to-Five Sharp"},
	"formal": {"Evening Elegance", "Black Tie Ready", "Refined Formal"},
	"date":   {"Date Night", "Romantic Evening", "Dinner for Two"},
	"sport":  {"Active Ready", "Game Day", "Sporty Energy"},
	"lounge": {"Cozy Lounge", "Homebody Comfort", "Lazy Sunday"},
}

var styleDescriptions = map[string][]string{
	"balanced":   {"A well-rounded look that mixes comfort and polish.", "Easy to wear, easy to like.", "Balanced proportions with nothing fighting for attention."},
	"minimalist": {"Clean lines and a pared-back palette.", "Less is more: simple pieces, sharp result.", "Quiet, understated and precise."},
	"bold":       {"Statement pieces that turn heads.", "Confident color and strong shapes.", "Loud in the best way."},
	"classic":    {"Timeless pieces that never miss.", "A traditional combination done right.", "Heritage staples worn with care."},
	"trendy":     {"Of-the-moment styling with a fresh edge.", "Current cuts and modern pairings.", "Right on trend."},
	"bohemian":   {"Free-spirited layers with an artistic feel.", "Relaxed, earthy and effortless.", "Loose shapes and a wandering mood."},
}

var seasonWeather = map[season.Season]string{
	season.Spring: "Mild spring weather",
	season.Summer: "Warm summer weather",
	season.Fall:   "Crisp fall weather",
	season.Winter: "Cold winter weather",
}

func (e *Engine) pick(options []string) string {
	return options[e.rng.IntN(len(options))]
}

func (e *Engine) name(occ string) string {
	if names, ok := occasionNames[strings.ToLower(strings.TrimSpace(occ))]; ok {
		return e.pick(names)
	}
	if strings.TrimSpace(occ) == "" {
		return "Outfit"
	}
	return occ + " Outfit"
}

func (e *Engine) description(style string, items []model.ClothingItem) string {
	lead := style
	if phrases, ok := styleDescriptions[strings.ToLower(strings.TrimSpace(style))]; ok {
		lead = e.pick(phrases)
	} else if strings.TrimSpace(style) != "" {
		lead = style + " style."
	}
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	detail := "Pairs " + joinNames(names) + "."
	if lead == "" {
		return detail
	}
	return lead + " " + detail
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

func weatherText(w *model.Weather, target season.Season) string {
	if w != nil {
		return fmt.Sprintf("%s°F / %s", strconv.FormatFloat(w.Temperature, 'f', -1, 64), w.Condition)
	}
	return seasonWeather[target]
}
