package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/metrics"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/placeholder"
)

// HandlePlaceholder renders the generated card image for ?name=.
func (h *Handler) HandlePlaceholder(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	var buf bytes.Buffer
	if err := placeholder.Render(&buf, name); err != nil {
		log.Error().Err(err).Str("name", name).Msg("Failed to render placeholder")
		http.Error(w, "Failed to render image", http.StatusInternalServerError)
		return
	}
	metrics.PlaceholdersRenderedTotal.Inc()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(buf.Bytes())
}
