package bff

import (
	"errors"
	"net/url"

	"golang.org/x/text/message"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/catalog"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/i18n"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/lookup"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/metrics"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/models"
)

// Lookup outcomes reported on LookupView
const (
	OutcomeNone         = ""
	OutcomeFound        = metrics.LookupFound
	OutcomeFallback     = metrics.LookupFallback
	OutcomeMissingInput = metrics.LookupMissingInput
)

// Card is one plant card.
type Card struct {
	Dutch          string
	Latin          string
	Light          string
	Soil           string
	Moisture       string
	PlaceholderURL string
}

// FilterOption is a clickable filter value. Href leads to the selection the
// click produces.
type FilterOption struct {
	Category models.Category
	Value    string
	Label    string
	Active   bool
	Href     string
}

// FilterGroup is the option list of one category.
type FilterGroup struct {
	Category models.Category
	Title    string
	Options  []FilterOption
}

// HelpLink opens a lookup popup.
type HelpLink struct {
	Kind  lookup.Kind
	Label string
	Href  string
}

// CatalogView is the swappable catalog region: filters plus results.
type CatalogView struct {
	// LoadError replaces the grid when the dataset failed to load. Filters
	// are rendered inert.
	LoadError string

	Groups    []FilterGroup
	ResetHref string
	HelpLinks []HelpLink

	Cards   []Card
	Shown   int
	Total   int
	Empty   bool
	Message string
}

// HiddenField carries page state through a lookup form.
type HiddenField struct {
	Name  string
	Value string
}

// LookupResultView is a lookup result with its hint linked to the filter.
type LookupResultView struct {
	lookup.Result
	HintHref string
}

// LookupView is one help popup.
type LookupView struct {
	Kind          lookup.Kind
	Title         string
	Intro         string
	Action        string
	Hidden        []HiddenField
	Postcode      string
	Required      string
	Open          bool
	ResultVisible bool
	CloseHref     string

	// Alert is set when the form was submitted empty.
	Alert   string
	Result  *LookupResultView
	Outcome string
}

// PageView is the full page.
type PageView struct {
	Lang    string
	Title   string
	Nonce   string
	Catalog CatalogView
	Popups  []LookupView
}

// PageInput collects what BuildPage needs. Dataset is nil when LoadErr is
// set.
type PageInput struct {
	Dataset *models.Dataset
	LoadErr error
	State   PageState
	Printer *message.Printer
	Nonce   string
}

// ResultsMessage formats the results counter.
func ResultsMessage(p *message.Printer, shown, total int) string {
	if shown == total {
		return p.Sprintf(i18n.MsgAllShown)
	}
	return p.Sprintf(i18n.MsgShownOfTotal, shown, total)
}

// PlaceholderURL is the generated image for a plant name.
func PlaceholderURL(name string) string {
	return hrefFor("/placeholder.png", url.Values{"name": {name}})
}

func categoryTitle(p *message.Printer, c models.Category) string {
	switch c {
	case models.CategoryLight:
		return p.Sprintf(i18n.MsgLight)
	case models.CategorySoil:
		return p.Sprintf(i18n.MsgSoil)
	case models.CategoryMoisture:
		return p.Sprintf(i18n.MsgMoisture)
	}
	return string(c)
}

// BuildCatalogView renders the catalog for plants filtered by the state's
// selection. A nil dataset produces the load-error view.
func BuildCatalogView(ds *models.Dataset, state PageState, p *message.Printer) CatalogView {
	if p == nil {
		p = i18n.DefaultPrinter()
	}
	sel := state.Selection

	v := CatalogView{
		ResetHref: state.Navigation(sel.Reset()).Href(),
	}
	for _, k := range lookup.Kinds {
		v.HelpLinks = append(v.HelpLinks, HelpLink{
			Kind:  k,
			Label: helpLabel(p, k),
			Href:  state.WithPopups(state.Popups.Open(k)).Href(),
		})
	}

	for _, c := range models.Categories {
		g := FilterGroup{Category: c, Title: categoryTitle(p, c)}
		for _, o := range models.OptionsFor(c) {
			g.Options = append(g.Options, FilterOption{
				Category: c,
				Value:    o.Value,
				Label:    o.Label,
				Active:   sel.IsActive(c, o.Value),
				Href:     state.Navigation(sel.Toggle(c, o.Value)).Href(),
			})
		}
		v.Groups = append(v.Groups, g)
	}

	if ds == nil {
		v.LoadError = p.Sprintf(i18n.MsgLoadFailed)
		return v
	}

	shown := catalog.FilterPlants(ds.Plants, sel)
	v.Cards = make([]Card, len(shown))
	for i, pl := range shown {
		v.Cards[i] = Card{
			Dutch:          pl.Dutch,
			Latin:          pl.Latin,
			Light:          pl.Light,
			Soil:           pl.Soil,
			Moisture:       pl.Moisture,
			PlaceholderURL: PlaceholderURL(pl.Dutch),
		}
	}
	v.Shown = len(shown)
	v.Total = len(ds.Plants)
	v.Empty = len(shown) == 0
	v.Message = ResultsMessage(p, v.Shown, v.Total)
	return v
}

func helpLabel(p *message.Printer, k lookup.Kind) string {
	if k == lookup.KindMoisture {
		return p.Sprintf(i18n.MsgMoistureHelp)
	}
	return p.Sprintf(i18n.MsgSoilHelp)
}

// RunLookup dispatches a lookup to the table of kind k.
func RunLookup(k lookup.Kind, ds *models.Dataset, input string, p *message.Printer) (lookup.Result, error) {
	if k == lookup.KindMoisture {
		return lookup.Moisture(ds.MoistureData, input, p)
	}
	return lookup.Soil(ds.SoilData, input, p)
}

// BuildLookupResult links a result's hint to its filter option.
func BuildLookupResult(res lookup.Result, state PageState) *LookupResultView {
	v := &LookupResultView{Result: res}
	if res.Found {
		sel := state.Selection.With(res.Option.Category, res.Option.Value)
		v.HintHref = state.Navigation(sel).Href()
	}
	return v
}

// BuildLookupView renders popup k. Lookups submitted through the page are
// answered here when a dataset is available.
func BuildLookupView(k lookup.Kind, in PageInput) LookupView {
	p := in.Printer
	if p == nil {
		p = i18n.DefaultPrinter()
	}
	state := in.State
	panel := state.Popups.Panel(k)

	v := LookupView{
		Kind:          k,
		Title:         helpLabel(p, k),
		Intro:         p.Sprintf(i18n.MsgSoilIntro),
		Action:        "/lookup/" + string(k),
		Required:      p.Sprintf(i18n.MsgPostcodeEmpty),
		Open:          panel.Open,
		ResultVisible: panel.ResultVisible,
		CloseHref:     state.WithPopups(state.Popups.Close(k)).Href(),
	}
	if k == lookup.KindMoisture {
		v.Intro = p.Sprintf(i18n.MsgMoistureIntro)
	}
	v.Hidden = hiddenFields(state, k)

	code, submitted := state.Submitted(k)
	if !submitted || in.Dataset == nil {
		return v
	}
	v.Postcode = code

	res, err := RunLookup(k, in.Dataset, code, p)
	if errors.Is(err, lookup.ErrPostcodeRequired) {
		v.Alert = v.Required
		v.Outcome = OutcomeMissingInput
		return v
	}
	v.Result = BuildLookupResult(res, state)
	v.ResultVisible = true
	v.Open = true
	v.Outcome = OutcomeFallback
	if res.Found {
		v.Outcome = OutcomeFound
	}
	return v
}

func hiddenFields(state PageState, k lookup.Kind) []HiddenField {
	var out []HiddenField
	for _, c := range models.Categories {
		if v := state.Selection.Get(c); v != "" {
			out = append(out, HiddenField{Name: string(c), Value: v})
		}
	}
	open := state.WithPopups(state.Popups.Open(k)).Values()
	if v := open.Get("popup"); v != "" {
		out = append(out, HiddenField{Name: "popup", Value: v})
	}
	if state.Lang != "" {
		out = append(out, HiddenField{Name: i18n.LangParam, Value: state.Lang})
	}
	return out
}

// BuildPage assembles the full page view.
func BuildPage(in PageInput) *PageView {
	p := in.Printer
	if p == nil {
		p = i18n.DefaultPrinter()
		in.Printer = p
	}
	ds := in.Dataset
	if in.LoadErr != nil {
		ds = nil
		in.Dataset = nil
	}

	v := &PageView{
		Lang:    langOrDefault(in.State.Lang),
		Title:   p.Sprintf(i18n.MsgTitle),
		Nonce:   in.Nonce,
		Catalog: BuildCatalogView(ds, in.State, p),
	}
	for _, k := range lookup.Kinds {
		v.Popups = append(v.Popups, BuildLookupView(k, in))
	}
	return v
}

func langOrDefault(lang string) string {
	if lang == "" {
		return i18n.Default().String()
	}
	return lang
}
