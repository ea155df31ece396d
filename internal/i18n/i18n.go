// Package i18n registers the UI messages with golang.org/x/text/message and
// resolves the language of a request. Dutch is the default language; the
// English source string doubles as the message key.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

// Message keys.
const (
	MsgAllShown      = "All plants are shown"
	MsgShownOfTotal  = "%d of %d plants found"
	MsgLoadFailed    = "Error loading plant data."
	MsgNoResults     = "No plants match the selected filters."
	MsgPostcodeEmpty = "Please enter a postal code"

	MsgSoilHeading    = "Soil type for postal code %s:"
	MsgSoilType       = "Type:"
	MsgSoilFertility  = "Fertility:"
	MsgDescription    = "Description:"
	MsgSoilHint       = "Click \"%s\" in the filter to find plants suited to your soil."
	MsgNoData         = "No specific data found for postal code %s"
	MsgSoilGuidelines = "Use the general guidelines below to determine your soil type."

	MsgMoistureHeading     = "Groundwater level for postal code %s:"
	MsgMoistureRegion      = "Region:"
	MsgMoistureGroundwater = "Groundwater level:"
	MsgMoistureMoisture    = "Moisture:"
	MsgMoistureHint        = "Click \"%s\" in the filter to find plants suited to your moisture level."
	MsgMoistureGuidelines  = "Use the general guidelines below to determine your moisture level."

	MsgTitle         = "Plant finder"
	MsgFilters       = "Filters"
	MsgLight         = "Light"
	MsgSoil          = "Soil"
	MsgMoisture      = "Moisture"
	MsgClearFilters  = "Clear all filters"
	MsgSoilHelp      = "Which soil do I have?"
	MsgMoistureHelp  = "How moist is my garden?"
	MsgPostcode      = "Postal code"
	MsgCheck         = "Check"
	MsgClose         = "Close"
	MsgSoilIntro     = "Enter your postal code to see the typical soil fertility of your region."
	MsgMoistureIntro = "Enter your postal code to see the typical groundwater level of your region."
)

// dutch maps every message key to its Dutch text.
var dutch = map[string]string{
	MsgAllShown:      "Alle planten worden getoond",
	MsgShownOfTotal:  "%d van %d planten gevonden",
	MsgLoadFailed:    "Fout bij het laden van plantgegevens.",
	MsgNoResults:     "Geen planten gevonden die aan de gekozen filters voldoen.",
	MsgPostcodeEmpty: "Voer een postcode in",

	MsgSoilHeading:    "Bodemtype voor postcode %s:",
	MsgSoilType:       "Type:",
	MsgSoilFertility:  "Vruchtbaarheid:",
	MsgDescription:    "Beschrijving:",
	MsgSoilHint:       "Klik op \"%s\" in de filter om planten te vinden die geschikt zijn voor jouw bodem.",
	MsgNoData:         "Geen specifieke data gevonden voor postcode %s",
	MsgSoilGuidelines: "Gebruik de algemene richtlijnen hieronder om je bodemtype te bepalen.",

	MsgMoistureHeading:     "Grondwaterstand voor postcode %s:",
	MsgMoistureRegion:      "Regio:",
	MsgMoistureGroundwater: "Grondwaterstand:",
	MsgMoistureMoisture:    "Vochtigheid:",
	MsgMoistureHint:        "Klik op \"%s\" in de filter om planten te vinden die geschikt zijn voor jouw vochtigheidsgraad.",
	MsgMoistureGuidelines:  "Gebruik de algemene richtlijnen hieronder om je vochtigheidsgraad te bepalen.",

	MsgTitle:         "Plantenwijzer",
	MsgFilters:       "Filters",
	MsgLight:         "Licht",
	MsgSoil:          "Bodem",
	MsgMoisture:      "Vochtigheid",
	MsgClearFilters:  "Alle filters wissen",
	MsgSoilHelp:      "Welke bodem heb ik?",
	MsgMoistureHelp:  "Hoe vochtig is mijn tuin?",
	MsgPostcode:      "Postcode",
	MsgCheck:         "Controleer",
	MsgClose:         "Sluiten",
	MsgSoilIntro:     "Voer je postcode in om de gemiddelde bodemvruchtbaarheid van je regio te zien.",
	MsgMoistureIntro: "Voer je postcode in om de gemiddelde grondwaterstand van je regio te zien.",
}

var (
	supported = []language.Tag{language.Dutch, language.English}
	matcher   = language.NewMatcher(supported)
)

func init() {
	for key, nl := range dutch {
		if err := message.SetString(language.Dutch, key, nl); err != nil {
			panic("i18n: register " + key + ": " + err.Error())
		}
		if err := message.SetString(language.English, key, key); err != nil {
			panic("i18n: register " + key + ": " + err.Error())
		}
	}
}

// Default returns the fallback language.
func Default() language.Tag {
	return language.Dutch
}

// Supported returns the languages that have a catalog.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// DefaultPrinter returns a printer for the default language.
func DefaultPrinter() *message.Printer {
	return Printer(Default())
}

// Match maps arbitrary tags onto the best supported language.
func Match(tags ...language.Tag) language.Tag {
	if len(tags) == 0 {
		return Default()
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	return supported[idx]
}

// ResolveTag picks the language for a request: the lang query parameter
// first, then Accept-Language, then the default.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, err := language.Parse(v); err == nil {
			return Match(tag)
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return Match(tags...)
		}
	}
	return Default()
}

// RequestPrinter is shorthand for Printer(ResolveTag(r)).
func RequestPrinter(r *http.Request) *message.Printer {
	return Printer(ResolveTag(r))
}
