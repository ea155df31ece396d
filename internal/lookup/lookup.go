// Package lookup answers the postal-code questions of the soil and moisture
// help popups. Both popups share one implementation that is parameterized by
// the lookup table and the message set.
package lookup

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/message"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/i18n"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/models"
)

// ErrPostcodeRequired is returned when the submitted postal code is empty
// after trimming.
var ErrPostcodeRequired = errors.New("postcode required")

// Kind identifies a lookup popup.
type Kind string

const (
	KindSoil     Kind = "soil"
	KindMoisture Kind = "moisture"
)

// Kinds lists the popups in display order
var Kinds = []Kind{KindSoil, KindMoisture}

// ParseKind reports whether s names a popup.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Field is one labelled line of a lookup result.
type Field struct {
	Label string
	Value string
}

// Result is a rendered-ready lookup answer. When Found is false only Heading
// and Guidelines are set.
type Result struct {
	Kind     Kind
	Postcode string
	Key      string
	Found    bool

	Heading string
	Fields  []Field

	// Hint names the filter option to click next; Option is that option.
	Hint   string
	Option models.Option

	Guidelines string
}

// Key returns the table key for a postal code: its first character.
func Key(postcode string) string {
	_, size := utf8.DecodeRuneInString(postcode)
	return postcode[:size]
}

type messages[E any] struct {
	kind       Kind
	heading    string
	hint       string
	guidelines string
	fields     func(p *message.Printer, e E) []Field
	option     func(e E) models.Option
}

var soilMessages = messages[models.SoilEntry]{
	kind:       KindSoil,
	heading:    i18n.MsgSoilHeading,
	hint:       i18n.MsgSoilHint,
	guidelines: i18n.MsgSoilGuidelines,
	fields: func(p *message.Printer, e models.SoilEntry) []Field {
		return []Field{
			{Label: p.Sprintf(i18n.MsgSoilType), Value: e.Type},
			{Label: p.Sprintf(i18n.MsgSoilFertility), Value: e.Fertility},
			{Label: p.Sprintf(i18n.MsgDescription), Value: e.Description},
		}
	},
	option: func(e models.SoilEntry) models.Option {
		return models.SoilOptionForFertility(e.Fertility)
	},
}

var moistureMessages = messages[models.MoistureEntry]{
	kind:       KindMoisture,
	heading:    i18n.MsgMoistureHeading,
	hint:       i18n.MsgMoistureHint,
	guidelines: i18n.MsgMoistureGuidelines,
	fields: func(p *message.Printer, e models.MoistureEntry) []Field {
		return []Field{
			{Label: p.Sprintf(i18n.MsgMoistureRegion), Value: e.Region},
			{Label: p.Sprintf(i18n.MsgMoistureGroundwater), Value: e.Groundwater},
			{Label: p.Sprintf(i18n.MsgMoistureMoisture), Value: e.Moisture},
			{Label: p.Sprintf(i18n.MsgDescription), Value: e.Description},
		}
	},
	option: func(e models.MoistureEntry) models.Option {
		return models.MoistureOption(e.Moisture)
	},
}

// Soil looks up the soil fertility for a postal code.
func Soil(table map[string]models.SoilEntry, input string, p *message.Printer) (Result, error) {
	return run(soilMessages, table, input, p)
}

// Moisture looks up the groundwater level for a postal code.
func Moisture(table map[string]models.MoistureEntry, input string, p *message.Printer) (Result, error) {
	return run(moistureMessages, table, input, p)
}

func run[E any](m messages[E], table map[string]E, input string, p *message.Printer) (Result, error) {
	postcode := strings.TrimSpace(input)
	if postcode == "" {
		return Result{}, ErrPostcodeRequired
	}
	if p == nil {
		p = i18n.DefaultPrinter()
	}

	res := Result{
		Kind:     m.kind,
		Postcode: postcode,
		Key:      Key(postcode),
	}

	entry, ok := table[res.Key]
	if !ok {
		res.Heading = p.Sprintf(i18n.MsgNoData, postcode)
		res.Guidelines = p.Sprintf(m.guidelines)
		return res, nil
	}

	res.Found = true
	res.Heading = p.Sprintf(m.heading, postcode)
	res.Fields = m.fields(p, entry)
	res.Option = m.option(entry)
	res.Hint = p.Sprintf(m.hint, res.Option.Label)
	return res, nil
}
