package htmx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testRequest(t *testing.T, headers map[string]string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	return r
}

func TestNegotiate(t *testing.T) {
	cases := []struct {
		name       string
		isFragment bool
		boosted    bool
		want       Shape
	}{
		{"plain browser request", false, false, ShapeFullPage},
		{"boosted marker without fragment marker", false, true, ShapeFullPage},
		{"boosted navigation", true, true, ShapeFullPage},
		{"fragment request", true, false, ShapeFragment},
	}
	for _, c := range cases {
		got := Negotiate(c.isFragment, c.boosted)
		if got != c.want {
			t.Errorf("%s: Negotiate(%v, %v) = %v, want %v", c.name, c.isFragment, c.boosted, got, c.want)
		}
	}
}

func TestNegotiateRequest(t *testing.T) {
	r := testRequest(t, map[string]string{HeaderRequest: "true"})
	if got := NegotiateRequest(r); got != ShapeFragment {
		t.Errorf("fragment request negotiated %v, want ShapeFragment", got)
	}

	r = testRequest(t, map[string]string{HeaderRequest: "true", HeaderBoosted: "true"})
	if got := NegotiateRequest(r); got != ShapeFullPage {
		t.Errorf("boosted request negotiated %v, want ShapeFullPage", got)
	}

	r = testRequest(t, nil)
	if got := NegotiateRequest(r); got != ShapeFullPage {
		t.Errorf("plain request negotiated %v, want ShapeFullPage", got)
	}
}

func TestUpdateLocationHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	UpdateLocationAfterSwap(w)
	if got := w.Header().Get(HeaderTriggerAfterSwap); got != "updateLocation" {
		t.Errorf("after-swap trigger = %q, want updateLocation", got)
	}

	w = httptest.NewRecorder()
	UpdateLocationAfterSettle(w)
	if got := w.Header().Get(HeaderTriggerAfterSettle); got != "updateLocation" {
		t.Errorf("after-settle trigger = %q, want updateLocation", got)
	}
}

func TestTriggerNotification(t *testing.T) {
	w := httptest.NewRecorder()
	TriggerNotification(w, Notification{
		Title:     "New Group Created!",
		Message:   "Created Fitness",
		Variant:   VariantSuccess,
		AutoClose: true,
	})

	raw := w.Header().Get(HeaderTrigger)
	if raw == "" {
		t.Fatal("no HX-Trigger header set")
	}

	var payload map[string]Notification
	err := json.Unmarshal([]byte(raw), &payload)
	if err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}

	n, ok := payload["notification"]
	if !ok {
		t.Fatalf("payload %q has no notification key", raw)
	}
	if n.Title != "New Group Created!" {
		t.Errorf("title = %q, want %q", n.Title, "New Group Created!")
	}
	if n.Variant != VariantSuccess {
		t.Errorf("variant = %q, want success", n.Variant)
	}
	if !n.AutoClose {
		t.Error("autoClose = false, want true")
	}
}

func TestRedirect(t *testing.T) {
	w := httptest.NewRecorder()
	Redirect(w, "/auth")
	if got := w.Header().Get(HeaderRedirect); got != "/auth" {
		t.Errorf("HX-Redirect = %q, want /auth", got)
	}
}
