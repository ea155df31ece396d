// Package catalog holds the pure filtering logic of the plant catalog: the
// per-field matching policy, the filter engine and the selection state
// machine. Nothing in here touches HTTP or templates.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/models"
)

// Matching policy: a plant field matches a filter value when the lowercased
// field contains the lowercased value. Lowercasing is language-neutral and
// rune by rune, so "ß" stays "ß" and never matches "ss". Substring rather than equality, so a
// compound label like "Zon – halfschaduw" matches both "Zon" and
// "Halfschaduw". The flip side is that "Zon" also matches "Zonnig".

// Matches reports whether plant passes the filter value for one category.
// An empty value imposes no constraint.
func Matches(plant models.Plant, c models.Category, value string) bool {
	if value == "" {
		return true
	}
	return newMatcher().matches(plant.Field(c), value)
}

// FilterPlants returns the plants passing every active category of sel, in
// their original order. The input slice is never modified.
func FilterPlants(plants []models.Plant, sel Selection) []models.Plant {
	active := sel.active()
	if len(active) == 0 {
		out := make([]models.Plant, len(plants))
		copy(out, plants)
		return out
	}

	// cases.Caser is stateful, so each call gets its own
	m := newMatcher()
	for i := range active {
		active[i].value = m.lower(active[i].value)
	}

	out := make([]models.Plant, 0, len(plants))
	for _, p := range plants {
		if m.passes(p, active) {
			out = append(out, p)
		}
	}
	return out
}

type constraint struct {
	category models.Category
	value    string
}

type matcher struct {
	caser cases.Caser
}

func newMatcher() *matcher {
	return &matcher{caser: cases.Lower(language.Und)}
}

func (m *matcher) lower(s string) string {
	return m.caser.String(s)
}

func (m *matcher) matches(field, value string) bool {
	return strings.Contains(m.lower(field), m.lower(value))
}

// passes expects constraint values that are already lowercased.
func (m *matcher) passes(p models.Plant, cs []constraint) bool {
	for _, c := range cs {
		if !strings.Contains(m.lower(p.Field(c.category)), c.value) {
			return false
		}
	}
	return true
}
