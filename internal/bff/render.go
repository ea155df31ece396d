package bff

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"sync"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/i18n"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var (
	baseTemplates *template.Template
	parseErr      error
	parseOnce     sync.Once
)

// Static returns the embedded static assets rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// templateFuncs are the helpers every template sees. "t" is replaced per
// render with the request's printer.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"t": func(key string, args ...any) string {
			return i18n.DefaultPrinter().Sprintf(key, args...)
		},
		"categoryIcon": CategoryIcon,
	}
}

func parseTemplates() (*template.Template, error) {
	parseOnce.Do(func() {
		baseTemplates, parseErr = template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.tmpl")
	})
	return baseTemplates, parseErr
}

// component executes a named template into a templ component.
func component(name string, p *message.Printer, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		base, err := parseTemplates()
		if err != nil {
			return err
		}
		t, err := base.Clone()
		if err != nil {
			return err
		}
		if p == nil {
			p = i18n.DefaultPrinter()
		}
		t.Funcs(template.FuncMap{"t": func(key string, args ...any) string {
			return p.Sprintf(key, args...)
		}})
		return t.ExecuteTemplate(w, name, data)
	})
}

// Page renders the full document.
func Page(v *PageView, p *message.Printer) templ.Component {
	return component("layout", p, v)
}

// CatalogFragment renders the swappable catalog region.
func CatalogFragment(v CatalogView, p *message.Printer) templ.Component {
	return component("catalog", p, v)
}

// LookupResult renders the result region of a popup.
func LookupResult(v LookupView, p *message.Printer) templ.Component {
	return component("lookup_result", p, v)
}

// CategoryIcon is the symbol shown before a plant condition.
func CategoryIcon(c string) string {
	switch c {
	case "light":
		return "☀"
	case "soil":
		return "🌱"
	case "moisture":
		return "💧"
	}
	return ""
}
