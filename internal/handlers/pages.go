package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/bff"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/htmx"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/metrics"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/middleware"
)

// HandleIndex renders the catalog page. Partial requests get the catalog
// region only.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	state := bff.ParsePageState(r.URL.Query())
	tag, p := printer(r)

	ds, err := h.store.Dataset()
	if err != nil {
		log.Debug().Err(err).Msg("Rendering catalog without dataset")
	}

	for _, c := range state.Selection.ActiveCategories() {
		metrics.FilteredRendersTotal.WithLabelValues(string(c)).Inc()
	}

	if htmx.IsHTMXRequest(r) {
		view := bff.BuildCatalogView(ds, state, p)
		htmx.RenderPage(w, r, bff.CatalogFragment(view, p), nil, renderError("catalog"))
		return
	}

	view := bff.BuildPage(bff.PageInput{
		Dataset: ds,
		LoadErr: err,
		State:   state,
		Printer: p,
		Nonce:   middleware.CSPNonceFromContext(r.Context()),
	})
	view.Lang = tag.String()
	for _, pv := range view.Popups {
		if pv.Outcome != bff.OutcomeNone {
			metrics.LookupsTotal.WithLabelValues(string(pv.Kind), pv.Outcome).Inc()
		}
	}

	htmx.RenderPage(w, r, nil, bff.Page(view, p), renderError("page"))
}
