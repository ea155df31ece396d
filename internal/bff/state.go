package bff

import (
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
	"golang.org/x/text/language"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/catalog"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/i18n"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/lookup"
)

// PostcodeParam is the input name of both lookup forms.
const PostcodeParam = "postcode"

// PageState is everything the page URL carries: the filter selection, which
// popups are open, submitted postal codes (no-JS lookups) and the language.
type PageState struct {
	Selection catalog.Selection
	Popups    lookup.PopupState

	// Codes holds postal codes submitted through the page itself. A present
	// but empty entry means the form was submitted without input.
	Codes map[lookup.Kind]string

	Lang string
}

// pageQuery is the URL shape of PageState.
type pageQuery struct {
	catalog.Selection
	Popup        []string `url:"popup,omitempty,comma"`
	SoilCode     *string  `url:"soilcode,omitempty"`
	MoistureCode *string  `url:"moisturecode,omitempty"`
	Lang         string   `url:"lang,omitempty"`
}

func codeParam(k lookup.Kind) string {
	return string(k) + "code"
}

// ParsePageState reads page state from query values.
func ParsePageState(q url.Values) PageState {
	s := PageState{
		Selection: catalog.ParseSelection(q),
		Lang:      parseLang(q.Get(i18n.LangParam)),
	}

	var popups []string
	if v := q.Get("popup"); v != "" {
		popups = strings.Split(v, ",")
	}
	s.Popups = lookup.ParsePopups(popups)

	for _, k := range lookup.Kinds {
		vals, ok := q[codeParam(k)]
		if !ok {
			continue
		}
		if s.Codes == nil {
			s.Codes = map[lookup.Kind]string{}
		}
		if len(vals) > 0 {
			s.Codes[k] = vals[0]
		} else {
			s.Codes[k] = ""
		}
		s.Popups = s.Popups.Open(k)
	}
	return s
}

func parseLang(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	tag, err := language.Parse(v)
	if err != nil {
		return ""
	}
	return i18n.Match(tag).String()
}

// Submitted returns the postal code submitted for popup k, if any.
func (s PageState) Submitted(k lookup.Kind) (string, bool) {
	v, ok := s.Codes[k]
	return v, ok
}

// Values encodes the state as query values.
func (s PageState) Values() url.Values {
	pq := pageQuery{Selection: s.Selection, Lang: s.Lang}
	for _, k := range s.Popups.OpenKinds() {
		pq.Popup = append(pq.Popup, string(k))
	}
	if v, ok := s.Codes[lookup.KindSoil]; ok {
		pq.SoilCode = &v
	}
	if v, ok := s.Codes[lookup.KindMoisture]; ok {
		pq.MoistureCode = &v
	}

	v, err := query.Values(pq)
	if err != nil {
		return url.Values{}
	}
	return v
}

// Href returns the page URL for the state.
func (s PageState) Href() string {
	return hrefFor("/", s.Values())
}

// Navigation returns a state carrying only the selection and language: what
// a filter click keeps.
func (s PageState) Navigation(sel catalog.Selection) PageState {
	return PageState{Selection: sel, Lang: s.Lang}
}

// WithPopups returns a copy with a different popup state and no submitted
// codes.
func (s PageState) WithPopups(p lookup.PopupState) PageState {
	return PageState{Selection: s.Selection, Popups: p, Lang: s.Lang}
}

// WithCode returns a copy with popup k open and code submitted to it.
func (s PageState) WithCode(k lookup.Kind, code string) PageState {
	out := s.WithPopups(s.Popups.Open(k))
	out.Codes = map[lookup.Kind]string{k: code}
	return out
}

func hrefFor(path string, v url.Values) string {
	if enc := v.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}
