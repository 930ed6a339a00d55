// Package htmx holds the response negotiation between full pages and HTML
// fragments, plus the client trigger directives attached as headers.
package htmx

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	HeaderRequest            = "HX-Request"
	HeaderBoosted            = "HX-Boosted"
	HeaderRedirect           = "HX-Redirect"
	HeaderTrigger            = "HX-Trigger"
	HeaderTriggerAfterSwap   = "HX-Trigger-After-Swap"
	HeaderTriggerAfterSettle = "HX-Trigger-After-Settle"

	// updateLocation tells the client to refresh its address bar after the
	// DOM swap completes.
	eventUpdateLocation = "updateLocation"
)

// IsRequest reports whether the request came from the hypermedia client and
// expects a fragment-capable response.
func IsRequest(r *http.Request) bool {
	return r.Header.Get(HeaderRequest) == "true"
}

// IsBoosted reports whether the request is a boosted navigation, which still
// wants the full page shell.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get(HeaderBoosted) == "true"
}

// Shape is the negotiated response body form.
type Shape int

const (
	// ShapeFullPage includes the navigation shell and sidebars.
	ShapeFullPage Shape = iota
	// ShapeFragment is the bare board/list/detail markup for an in-place swap.
	ShapeFragment
)

// Negotiate decides the response shape. Non-fragment requests and boosted
// navigations get the full page; only an unboosted fragment request gets the
// bare fragment.
func Negotiate(isFragment, boosted bool) Shape {
	if isFragment && !boosted {
		return ShapeFragment
	}
	return ShapeFullPage
}

// NegotiateRequest applies Negotiate to the request's marker headers.
func NegotiateRequest(r *http.Request) Shape {
	return Negotiate(IsRequest(r), IsBoosted(r))
}

// UpdateLocationAfterSwap attaches the address-bar refresh directive, fired
// once the swap completes. Used on every read-rendering path.
func UpdateLocationAfterSwap(w http.ResponseWriter) {
	w.Header().Set(HeaderTriggerAfterSwap, eventUpdateLocation)
}

// UpdateLocationAfterSettle attaches the address-bar refresh directive, fired
// after the swap settles. Used on mutating paths that return a fragment.
func UpdateLocationAfterSettle(w http.ResponseWriter) {
	w.Header().Set(HeaderTriggerAfterSettle, eventUpdateLocation)
}

// Redirect instructs the client to perform a full-page navigation.
func Redirect(w http.ResponseWriter, path string) {
	w.Header().Set(HeaderRedirect, path)
}

type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantInfo    Variant = "info"
)

// Notification is the toast payload the client renders from the trigger
// header. AutoClose dismisses the toast without user interaction.
type Notification struct {
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	Variant   Variant `json:"variant"`
	AutoClose bool    `json:"autoClose"`
}

// TriggerNotification attaches a toast directive to the response. Every
// mutating success path attaches exactly one.
func TriggerNotification(w http.ResponseWriter, n Notification) {
	payload, err := json.Marshal(map[string]Notification{"notification": n})
	if err != nil {
		slog.Error("failed to marshal notification trigger", "error", err)
		return
	}
	w.Header().Set(HeaderTrigger, string(payload))
}
