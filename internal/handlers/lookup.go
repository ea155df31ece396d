package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/bff"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/htmx"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/i18n"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/lookup"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/metrics"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/tracing"
)

// PostcodeRequiredEvent is the HX-Trigger event sent for empty input.
const PostcodeRequiredEvent = "postcodeRequired"

// HandleLookup answers a popup form. Partial requests get the result region;
// other clients are redirected to the page with the popup showing the result.
func (h *Handler) HandleLookup(kind lookup.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		input := q.Get(bff.PostcodeParam)
		state := bff.ParsePageState(q).WithCode(kind, input)

		if !htmx.IsHTMXRequest(r) {
			http.Redirect(w, r, h.redirectURL(state.Href()), http.StatusSeeOther)
			return
		}

		_, p := printer(r)
		ds, err := h.store.Dataset()
		if err != nil {
			log.Warn().Err(err).Str("kind", string(kind)).Msg("Lookup without dataset")
			http.Error(w, p.Sprintf(i18n.MsgLoadFailed), http.StatusServiceUnavailable)
			return
		}

		ctx, span := tracing.LookupSpan(r.Context(), string(kind), lookup.Key(strings.TrimSpace(input)))
		defer span.End()
		r = r.WithContext(ctx)

		view := bff.BuildLookupView(kind, bff.PageInput{Dataset: ds, State: state, Printer: p})
		metrics.LookupsTotal.WithLabelValues(string(kind), view.Outcome).Inc()

		if view.Outcome == bff.OutcomeMissingInput {
			tracing.EndWithError(span, lookup.ErrPostcodeRequired)
			htmx.NoSwap(w)
			htmx.Trigger(w, PostcodeRequiredEvent, view.Required)
			http.Error(w, view.Required, http.StatusBadRequest)
			return
		}

		log.Debug().
			Str("kind", string(kind)).
			Str("key", view.Result.Key).
			Bool("found", view.Result.Found).
			Msg("Lookup")
		htmx.RenderPage(w, r, bff.LookupResult(view, p), nil, renderError("lookup result"))
	}
}
