package catalog

import (
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/models"
)

// Selection is the active filter value per category. An empty string means
// the category is unconstrained. One field per category is what keeps at most
// one option active within a category.
type Selection struct {
	Light    string `url:"light,omitempty"`
	Soil     string `url:"soil,omitempty"`
	Moisture string `url:"moisture,omitempty"`
}

// Get returns the active value for a category.
func (s Selection) Get(c models.Category) string {
	switch c {
	case models.CategoryLight:
		return s.Light
	case models.CategorySoil:
		return s.Soil
	case models.CategoryMoisture:
		return s.Moisture
	}
	return ""
}

// With returns a copy of s with category c set to value.
func (s Selection) With(c models.Category, value string) Selection {
	switch c {
	case models.CategoryLight:
		s.Light = value
	case models.CategorySoil:
		s.Soil = value
	case models.CategoryMoisture:
		s.Moisture = value
	}
	return s
}

// Toggle applies a click on option value in category c: clicking the active
// option clears the category, clicking any other option replaces it.
func (s Selection) Toggle(c models.Category, value string) Selection {
	if s.Get(c) == value {
		return s.With(c, "")
	}
	return s.With(c, value)
}

// Reset clears every category.
func (s Selection) Reset() Selection {
	return Selection{}
}

// IsActive reports whether value is the active option of category c.
func (s Selection) IsActive(c models.Category, value string) bool {
	return value != "" && s.Get(c) == value
}

// IsEmpty reports whether no category is constrained.
func (s Selection) IsEmpty() bool {
	return s == Selection{}
}

// ActiveCategories lists the constrained categories in display order.
func (s Selection) ActiveCategories() []models.Category {
	var out []models.Category
	for _, c := range models.Categories {
		if s.Get(c) != "" {
			out = append(out, c)
		}
	}
	return out
}

func (s Selection) active() []constraint {
	var out []constraint
	for _, c := range models.Categories {
		if v := s.Get(c); v != "" {
			out = append(out, constraint{category: c, value: v})
		}
	}
	return out
}

// Values encodes the selection as URL query values. Unset categories are
// omitted.
func (s Selection) Values() url.Values {
	v, err := query.Values(s)
	if err != nil {
		// Selection only has string fields
		return url.Values{}
	}
	return v
}

// ParseSelection reads a selection from query values. Values are trimmed and
// unknown keys are ignored.
func ParseSelection(q url.Values) Selection {
	var s Selection
	for _, c := range models.Categories {
		s = s.With(c, strings.TrimSpace(q.Get(string(c))))
	}
	return s
}
