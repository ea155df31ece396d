// Package htmx serves pages that double as partial-update endpoints.
package htmx

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// Request and response headers understood by the page script.
const (
	RequestHeader = "HX-Request"
	TriggerHeader = "HX-Trigger"
	ReswapHeader  = "HX-Reswap"
)

// IsHTMXRequest reports whether the request asked for a fragment.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeader), "true")
}

// RenderPage writes fragment for partial requests and full otherwise. A nil
// fragment falls back to full. Options are passed to templ.Handler.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment, full templ.Component, opts ...func(*templ.ComponentHandler)) {
	w.Header().Add("Vary", RequestHeader)
	target := full
	if IsHTMXRequest(r) && fragment != nil {
		target = fragment
	}
	if target == nil {
		return
	}
	templ.Handler(target, opts...).ServeHTTP(w, r)
}

// Trigger sets an HX-Trigger header carrying one event with a message.
func Trigger(w http.ResponseWriter, event, message string) {
	payload := map[string]map[string]string{event: {"message": message}}
	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	w.Header().Set(TriggerHeader, string(b))
}

// NoSwap tells the client to leave the page unchanged.
func NoSwap(w http.ResponseWriter) {
	w.Header().Set(ReswapHeader, "none")
}
