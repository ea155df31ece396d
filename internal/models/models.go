package models

// Plant is a single catalog entry. Plants have no explicit id; identity is
// the position in the loaded list.
type Plant struct {
	Dutch    string `json:"dutch"`
	Latin    string `json:"latin"`
	Light    string `json:"light"`
	Soil     string `json:"soil"`
	Moisture string `json:"moisture"`
}

// Field returns the plant's value for a filter category.
func (p Plant) Field(c Category) string {
	switch c {
	case CategoryLight:
		return p.Light
	case CategorySoil:
		return p.Soil
	case CategoryMoisture:
		return p.Moisture
	}
	return ""
}

// Fertility levels used by the soil lookup table
const (
	FertilityPoor     = "Arm"
	FertilityModerate = "Matig"
	FertilityRich     = "Rijk"
)

// SoilEntry describes the soil of the region sharing a postal-code digit.
type SoilEntry struct {
	Type        string `json:"type"`
	Fertility   string `json:"fertility"`
	Description string `json:"description"`
}

// MoistureEntry describes groundwater conditions of a postal-code region.
type MoistureEntry struct {
	Region      string `json:"region"`
	Groundwater string `json:"groundwater"`
	Moisture    string `json:"moisture"`
	Description string `json:"description"`
}

// Dataset is the complete data document. It is written once by the loader
// and read-only afterwards.
type Dataset struct {
	Plants       []Plant                  `json:"plants"`
	SoilData     map[string]SoilEntry     `json:"soilData"`
	MoistureData map[string]MoistureEntry `json:"moistureData"`
}

// Normalize replaces absent collections with empty ones so readers never
// have to nil-check.
func (d *Dataset) Normalize() {
	if d.Plants == nil {
		d.Plants = []Plant{}
	}
	if d.SoilData == nil {
		d.SoilData = map[string]SoilEntry{}
	}
	if d.MoistureData == nil {
		d.MoistureData = map[string]MoistureEntry{}
	}
}
