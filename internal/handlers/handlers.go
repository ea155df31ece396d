package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/i18n"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/store"
)

// Config holds handler configuration options
type Config struct {
	// PublicURL is the public-facing URL for the server, used for absolute
	// redirects behind a reverse proxy. Empty means relative redirects.
	PublicURL string
}

// Handler contains all HTTP handler methods and their dependencies.
// Dependencies are injected via the constructor.
type Handler struct {
	store  *store.Store
	config Config
}

// NewHandler creates a Handler reading the dataset from s.
func NewHandler(s *store.Store, config Config) *Handler {
	return &Handler{store: s, config: config}
}

// printer resolves the request language.
func printer(r *http.Request) (language.Tag, *message.Printer) {
	tag := i18n.ResolveTag(r)
	return tag, i18n.Printer(tag)
}

// renderError is the templ error handler used by every page render.
func renderError(what string) func(*templ.ComponentHandler) {
	return templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Error().Err(err).Str("path", r.URL.Path).Msgf("Failed to render %s", what)
			http.Error(w, "Failed to render page", http.StatusInternalServerError)
		})
	})
}

// redirectURL prefixes path with the public URL when one is configured.
func (h *Handler) redirectURL(path string) string {
	if h.config.PublicURL == "" {
		return path
	}
	return h.config.PublicURL + path
}
