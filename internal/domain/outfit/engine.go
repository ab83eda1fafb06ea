package outfit

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/okian/outfitter/internal/domain/model"
	"github.com/okian/outfitter/internal/domain/occasion"
	"github.com/okian/outfitter/internal/domain/palette"
	"github.com/okian/outfitter/internal/domain/season"
)

// Engine defaults.
const (
	DefaultCount             = 5
	DefaultCombinationBudget = 100
	outerwearBelowF          = 65
	golden                   = 0x9e3779b97f4a7c15
)

// Random is the randomness the engine consumes. *rand.Rand satisfies it.
type Random interface {
	// IntN returns a uniform value in [0, n). n is always positive.
	IntN(n int) int
}

// NewSeededRandom returns a deterministic PCG-backed source.
func NewSeededRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^golden)) //nolint:gosec // not for security
}

// Engine builds ranked outfit suggestions. It holds no state between runs
// other than its random source, so an Engine is safe for concurrent use only
// when that source is.
type Engine struct {
	rng     Random
	current season.Season
	budget  int
	newID   func() string
}

// Result carries the ranked suggestions plus enumeration counters.
type Result struct {
	Suggestions     []model.OutfitSuggestion
	Candidates      int
	BudgetExhausted bool
}

// New creates an engine. Without options it uses an entropy-seeded source,
// resolves "current" to Summer and enumerates at most 100 base combinations.
func New(opts ...Option) *Engine {
	e := &Engine{
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // not for security
		current: season.Summer,
		budget:  DefaultCombinationBudget,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate runs a default engine over wardrobe.
func Generate(wardrobe []model.ClothingItem, prefs model.OutfitPreference, count int) []model.OutfitSuggestion {
	return New().Generate(wardrobe, prefs, count)
}

// Generate returns at most count suggestions sorted by score, highest first.
// Ties keep enumeration order.
func (e *Engine) Generate(wardrobe []model.ClothingItem, prefs model.OutfitPreference, count int) []model.OutfitSuggestion {
	return e.Run(wardrobe, prefs, count).Suggestions
}

// Run is Generate with enumeration counters.
func (e *Engine) Run(wardrobe []model.ClothingItem, prefs model.OutfitPreference, count int) Result {
	res := Result{Suggestions: []model.OutfitSuggestion{}}
	if len(wardrobe) == 0 || count <= 0 {
		return res
	}
	target, ok := e.resolveSeason(prefs.Season)
	if !ok {
		return res
	}

	g := groupItems(filterItems(wardrobe, target, prefs.Occasion))
	b := &budget{left: e.budget}
	bases := g.separates(b)
	bases = append(bases, g.dresses(b)...)
	res.Candidates = len(bases)
	res.BudgetExhausted = b.exhausted

	layer := len(g.outerwear) > 0 && needsOuterwear(target, prefs)
	accessorize := prefs.IncludeAccessories && len(g.accessories) > 0

	out := make([]model.OutfitSuggestion, 0, len(bases))
	for _, c := range bases {
		if layer {
			c.outerwear = &g.outerwear[e.rng.IntN(len(g.outerwear))]
		}
		if accessorize {
			c.accessory = &g.accessories[e.rng.IntN(len(g.accessories))]
		}
		out = append(out, e.suggestion(c, prefs, target))
	}

	slices.SortStableFunc(out, func(a, b model.OutfitSuggestion) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(out) > count {
		out = out[:count]
	}
	res.Suggestions = out
	return res
}

func (e *Engine) resolveSeason(pref string) (season.Season, bool) {
	if season.IsCurrent(pref) {
		return e.current, true
	}
	return season.Parse(pref)
}

func (e *Engine) suggestion(c candidate, prefs model.OutfitPreference, target season.Season) model.OutfitSuggestion {
	items := c.items()
	return model.OutfitSuggestion{
		ID:          e.newID(),
		Name:        e.name(prefs.Occasion),
		Occasion:    prefs.Occasion,
		Style:       prefs.Style,
		Season:      target.Lower(),
		Items:       items,
		Weather:     weatherText(prefs.Weather, target),
		Description: e.description(prefs.Style, items),
		Score:       score(c, prefs),
	}
}

func filterItems(wardrobe []model.ClothingItem, target season.Season, occ string) []model.ClothingItem {
	out := make([]model.ClothingItem, 0, len(wardrobe))
	for _, it := range wardrobe {
		if season.Matches(it.Seasons, target) && occasion.Matches(it.Occasions, occ) {
			out = append(out, it)
		}
	}
	return out
}

func needsOuterwear(target season.Season, prefs model.OutfitPreference) bool {
	if target == season.Fall || target == season.Winter {
		return true
	}
	return prefs.HasWeather() && prefs.Weather.Temperature < outerwearBelowF
}

// score adds the color score of the base garments, the weather bonus, the
// outerwear bonus and the dress bonus. Accessories never score.
func score(c candidate, prefs model.OutfitPreference) int {
	total := palette.Score(c.baseColors())
	if prefs.HasWeather() {
		bucket := season.ForTemperature(prefs.Weather.Temperature)
		if season.Matches(c.main().Seasons, bucket...) {
			total++
		}
		if c.bottom != nil && season.Matches(c.bottom.Seasons, bucket...) {
			total++
		}
	}
	if c.outerwear != nil {
		total++
	}
	if c.dress != nil {
		total++
	}
	return total
}

// budget is the combination allowance shared by both outfit families.
type budget struct {
	left      int
	exhausted bool
}

func (b *budget) take() bool {
	if b.left <= 0 {
		b.exhausted = true
		return false
	}
	b.left--
	return true
}

type candidate struct {
	top, bottom, dress, shoe *model.ClothingItem
	outerwear, accessory     *model.ClothingItem
}

// main is the top or the dress.
func (c candidate) main() *model.ClothingItem {
	if c.dress != nil {
		return c.dress
	}
	return c.top
}

func (c candidate) items() []model.ClothingItem {
	items := make([]model.ClothingItem, 0, 5)
	for _, it := range []*model.ClothingItem{c.top, c.bottom, c.dress, c.shoe, c.outerwear, c.accessory} {
		if it != nil {
			items = append(items, *it)
		}
	}
	return items
}

func (c candidate) baseColors() []string {
	var colors []string
	for _, it := range []*model.ClothingItem{c.top, c.bottom, c.dress, c.shoe} {
		if it != nil {
			colors = append(colors, it.Colors...)
		}
	}
	return colors
}

type groups struct {
	tops, bottoms, dressList, outerwear, shoes, accessories []model.ClothingItem
}

func groupItems(items []model.ClothingItem) groups {
	var g groups
	for _, it := range items {
		switch strings.ToLower(strings.TrimSpace(it.Category)) {
		case "tops":
			g.tops = append(g.tops, it)
		case "bottoms":
			g.bottoms = append(g.bottoms, it)
		case "dresses":
			g.dressList = append(g.dressList, it)
		case "outerwear":
			g.outerwear = append(g.outerwear, it)
		case "shoes":
			g.shoes = append(g.shoes, it)
		case "accessories":
			g.accessories = append(g.accessories, it)
		}
	}
	return g
}

// separates enumerates top × bottom × shoe until b runs out.
func (g groups) separates(b *budget) []candidate {
	var out []candidate
	if len(g.tops) == 0 || len(g.bottoms) == 0 || len(g.shoes) == 0 {
		return out
	}
	for i := range g.tops {
		for j := range g.bottoms {
			for k := range g.shoes {
				if !b.take() {
					return out
				}
				out = append(out, candidate{top: &g.tops[i], bottom: &g.bottoms[j], shoe: &g.shoes[k]})
			}
		}
	}
	return out
}

// dresses enumerates dress × shoe until b runs out.
func (g groups) dresses(b *budget) []candidate {
	var out []candidate
	if len(g.dressList) == 0 || len(g.shoes) == 0 {
		return out
	}
	for i := range g.dressList {
		for k := range g.shoes {
			if !b.take() {
				return out
			}
			out = append(out, candidate{dress: &g.dressList[i], shoe: &g.shoes[k]})
		}
	}
	return out
}
