package models

// Category is a filter axis.
type Category string

const (
	CategoryLight    Category = "light"
	CategorySoil     Category = "soil"
	CategoryMoisture Category = "moisture"
)

// Categories lists the filter axes in display order
var Categories = []Category{CategoryLight, CategorySoil, CategoryMoisture}

// ParseCategory reports whether s names a filter category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Option is a selectable filter value. Value is what gets matched against
// plant fields, Label is what the user sees and clicks.
type Option struct {
	Category Category
	Value    string
	Label    string
}

// Filter options shown in the sidebar.
// Values are matched as substrings, so "Zon" also selects "Zon – halfschaduw".
var (
	LightOptions = []Option{
		{Category: CategoryLight, Value: "Zon", Label: "Zon"},
		{Category: CategoryLight, Value: "Halfschaduw", Label: "Halfschaduw"},
		{Category: CategoryLight, Value: "Schaduw", Label: "Schaduw"},
	}

	SoilOptions = []Option{
		{Category: CategorySoil, Value: FertilityPoor, Label: "Arme grond"},
		{Category: CategorySoil, Value: FertilityModerate, Label: "Matige voedselrijkdom"},
		{Category: CategorySoil, Value: FertilityRich, Label: "Rijke grond"},
	}

	MoistureOptions = []Option{
		{Category: CategoryMoisture, Value: "Droog", Label: "Droog"},
		{Category: CategoryMoisture, Value: "Vochtig", Label: "Vochtig"},
		{Category: CategoryMoisture, Value: "Nat", Label: "Nat"},
	}
)

// OptionsFor returns the options of a category.
func OptionsFor(c Category) []Option {
	switch c {
	case CategoryLight:
		return LightOptions
	case CategorySoil:
		return SoilOptions
	case CategoryMoisture:
		return MoistureOptions
	}
	return nil
}

// SoilOptionForFertility maps a soil table fertility to the filter option a
// user should click. Anything other than Arm or Matig counts as rich soil.
func SoilOptionForFertility(fertility string) Option {
	switch fertility {
	case FertilityPoor:
		return SoilOptions[0]
	case FertilityModerate:
		return SoilOptions[1]
	default:
		return SoilOptions[2]
	}
}

// MoistureOption returns the moisture option whose value equals v, or an ad
// hoc option labelled v when the sidebar has no such entry.
func MoistureOption(v string) Option {
	for _, o := range MoistureOptions {
		if o.Value == v {
			return o
		}
	}
	return Option{Category: CategoryMoisture, Value: v, Label: v}
}
