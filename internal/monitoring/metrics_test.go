package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCollectorServesRecordedMetrics(t *testing.T) {
	c := NewCollector()
	c.RecordToolCall("add_fridge_item", "ok")
	c.RecordItemAdded("dairy", 6)
	c.WSConnected()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	c.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("metrics endpoint returned %d", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{
		`frigo_tool_calls_total{outcome="ok",tool="add_fridge_item"} 1`,
		`frigo_items_added_total{category="dairy"} 1`,
		`frigo_fridge_items 6`,
		`frigo_ws_connections 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestWSGaugeBalances(t *testing.T) {
	c := NewCollector()
	c.WSConnected()
	c.WSConnected()
	c.WSDisconnected()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	c.Handler().ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), "frigo_ws_connections 1") {
		t.Error("ws connection gauge did not balance to 1")
	}
}
