package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/models"
)

func samplePlants() []models.Plant {
	return []models.Plant{
		{Dutch: "Lavendel", Latin: "Lavandula angustifolia", Light: "Zon", Soil: "Arm", Moisture: "Droog"},
		{Dutch: "Hosta", Latin: "Hosta sieboldiana", Light: "Schaduw", Soil: "Rijk", Moisture: "Vochtig"},
		{Dutch: "Vrouwenmantel", Latin: "Alchemilla mollis", Light: "Zon – halfschaduw", Soil: "Matig – rijk", Moisture: "Vochtig"},
		{Dutch: "Dotterbloem", Latin: "Caltha palustris", Light: "Zon – halfschaduw", Soil: "Rijk", Moisture: "Nat"},
		{Dutch: "Kattenstaart", Latin: "Lythrum salicaria", Light: "ZON", Soil: "Arm – matig", Moisture: "Vochtig – nat"},
	}
}

func names(plants []models.Plant) []string {
	out := make([]string, len(plants))
	for i, p := range plants {
		out[i] = p.Dutch
	}
	return out
}

func TestMatches(t *testing.T) {
	zon := models.Plant{Light: "Zon – halfschaduw"}

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"empty value matches anything", "", true},
		{"exact prefix", "Zon", true},
		{"second half of compound label", "halfschaduw", true},
		{"case-insensitive", "HALFSCHADUW", true},
		{"no match", "Schaduw ", false},
		{"unrelated", "Nat", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(zon, models.CategoryLight, tt.value))
		})
	}
}

func TestMatches_LowercaseOnly(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		want  bool
	}{
		{"sharp s does not expand", "Strasse", "ß", false},
		{"ss does not match sharp s", "Straße", "ss", false},
		{"sharp s matches itself", "STRAßE", "ß", true},
		{"accented upper and lower", "ÉÉN", "één", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Plant{Soil: tt.field}
			assert.Equal(t, tt.want, Matches(p, models.CategorySoil, tt.value))
		})
	}
}

func TestMatches_SubstringOfLongerWord(t *testing.T) {
	// Substring semantics are kept on purpose, including this overlap
	assert.True(t, Matches(models.Plant{Light: "Zonnig"}, models.CategoryLight, "Zon"))
}

func TestFilterPlants(t *testing.T) {
	plants := samplePlants()

	tests := []struct {
		name string
		sel  Selection
		want []string
	}{
		{
			name: "no selection returns everything",
			sel:  Selection{},
			want: []string{"Lavendel", "Hosta", "Vrouwenmantel", "Dotterbloem", "Kattenstaart"},
		},
		{
			name: "light substring and case",
			sel:  Selection{Light: "zon"},
			want: []string{"Lavendel", "Vrouwenmantel", "Dotterbloem", "Kattenstaart"},
		},
		{
			name: "compound soil label",
			sel:  Selection{Soil: "Matig"},
			want: []string{"Vrouwenmantel", "Kattenstaart"},
		},
		{
			name: "categories combine with AND",
			sel:  Selection{Light: "Zon", Moisture: "Nat"},
			want: []string{"Dotterbloem", "Kattenstaart"},
		},
		{
			name: "all three",
			sel:  Selection{Light: "halfschaduw", Soil: "rijk", Moisture: "vochtig"},
			want: []string{"Vrouwenmantel"},
		},
		{
			name: "zero matches",
			sel:  Selection{Light: "Schaduw", Moisture: "Droog"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(FilterPlants(plants, tt.sel)))
		})
	}
}

func TestFilterPlants_Properties(t *testing.T) {
	plants := samplePlants()
	selections := []Selection{
		{},
		{Light: "Zon"},
		{Soil: "rijk"},
		{Light: "Zon", Soil: "Arm"},
		{Moisture: "nat"},
		{Light: "Schaduw", Soil: "Arm", Moisture: "Droog"},
	}

	for _, sel := range selections {
		got := FilterPlants(plants, sel)

		t.Run("subsequence preserving order", func(t *testing.T) {
			j := 0
			for _, p := range got {
				for j < len(plants) && plants[j] != p {
					j++
				}
				require.Less(t, j, len(plants), "%q is not in order within the input", p.Dutch)
				j++
			}
		})

		t.Run("idempotent", func(t *testing.T) {
			assert.Equal(t, got, FilterPlants(got, sel))
		})
	}
}

func TestFilterPlants_DoesNotAliasInput(t *testing.T) {
	plants := samplePlants()
	got := FilterPlants(plants, Selection{})
	require.Equal(t, plants, got)

	got[0].Dutch = "changed"
	assert.Equal(t, "Lavendel", plants[0].Dutch)
}

func TestFilterPlants_Empty(t *testing.T) {
	assert.Empty(t, FilterPlants(nil, Selection{Light: "Zon"}))
	assert.Empty(t, FilterPlants([]models.Plant{}, Selection{}))
}

func TestSelection_Toggle(t *testing.T) {
	t.Run("selecting sets the category", func(t *testing.T) {
		s := Selection{}.Toggle(models.CategoryLight, "Zon")
		assert.Equal(t, Selection{Light: "Zon"}, s)
	})

	t.Run("selecting the active value twice clears it", func(t *testing.T) {
		s := Selection{}.Toggle(models.CategoryLight, "Zon").Toggle(models.CategoryLight, "Zon")
		assert.True(t, s.IsEmpty())
		assert.Equal(t, samplePlants(), FilterPlants(samplePlants(), s))
	})

	t.Run("new value replaces the previous one", func(t *testing.T) {
		s := Selection{Light: "Zon"}.Toggle(models.CategoryLight, "Schaduw")
		assert.Equal(t, "Schaduw", s.Light)
		assert.False(t, s.IsActive(models.CategoryLight, "Zon"))
		assert.True(t, s.IsActive(models.CategoryLight, "Schaduw"))
	})

	t.Run("other categories are untouched", func(t *testing.T) {
		s := Selection{Soil: "Arm", Moisture: "Nat"}.Toggle(models.CategoryLight, "Zon")
		assert.Equal(t, Selection{Light: "Zon", Soil: "Arm", Moisture: "Nat"}, s)
	})

	t.Run("receiver is not modified", func(t *testing.T) {
		s := Selection{Light: "Zon"}
		_ = s.Toggle(models.CategoryLight, "Zon")
		assert.Equal(t, "Zon", s.Light)
	})
}

func TestSelection_MutualExclusion(t *testing.T) {
	s := Selection{}
	clicks := []models.Option{
		models.LightOptions[0],
		models.LightOptions[1],
		models.SoilOptions[2],
		models.LightOptions[2],
		models.SoilOptions[2],
		models.MoistureOptions[0],
	}

	for _, o := range clicks {
		s = s.Toggle(o.Category, o.Value)
		for _, c := range models.Categories {
			active := 0
			for _, opt := range models.OptionsFor(c) {
				if s.IsActive(c, opt.Value) {
					active++
				}
			}
			assert.LessOrEqual(t, active, 1, "category %s has %d active options", c, active)
		}
	}

	assert.Equal(t, Selection{Light: "Schaduw", Moisture: "Droog"}, s)
}

func TestSelection_Reset(t *testing.T) {
	s := Selection{Light: "Zon", Soil: "Arm", Moisture: "Nat"}.Reset()
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.ActiveCategories())
}

func TestSelection_ActiveCategories(t *testing.T) {
	s := Selection{Moisture: "Nat", Light: "Zon"}
	assert.Equal(t, []models.Category{models.CategoryLight, models.CategoryMoisture}, s.ActiveCategories())
}

func TestSelection_Values(t *testing.T) {
	assert.Equal(t, "", Selection{}.Values().Encode())
	assert.Equal(t, "light=Zon&moisture=Vochtig+%E2%80%93+nat", Selection{Light: "Zon", Moisture: "Vochtig – nat"}.Values().Encode())
}

func TestParseSelection(t *testing.T) {
	q := url.Values{
		"light":  {"  Zon "},
		"soil":   {""},
		"colour": {"red"},
	}

	assert.Equal(t, Selection{Light: "Zon"}, ParseSelection(q))
	assert.Equal(t, Selection{}, ParseSelection(nil))

	round := Selection{Light: "Halfschaduw", Soil: "Arm", Moisture: "Nat"}
	assert.Equal(t, round, ParseSelection(round.Values()))
}
