package preview

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tagkit-dev/tagkit/internal/config"
)

func newTestServer(t *testing.T, metricsOn bool) *Server {
	t.Helper()
	cfg := config.New()
	cfg.Title = "Test Gallery"
	cfg.Serve.Pretty = false
	cfg.Serve.Metrics = metricsOn
	return NewServer(cfg, nil, WithRegistry(prometheus.NewRegistry()))
}

func TestIndexServesGallery(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t, false).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status mismatch: %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type mismatch: %q", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.HasPrefix(string(body), "<!DOCTYPE html>") {
		t.Fatalf("missing doctype: %q", string(body)[:40])
	}
	if !strings.Contains(string(body), "<h1>Test Gallery</h1>") {
		t.Fatalf("gallery title missing from page")
	}
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t, false).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status mismatch: %d", resp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t, true).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status mismatch: %d", resp.StatusCode)
	}
}

func TestMetricsDisabled(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t, false).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("metrics should be absent when disabled: %d", resp.StatusCode)
	}
}

func TestReloadBroadcast(t *testing.T) {
	server := newTestServer(t, false)
	srv := httptest.NewServer(server.Handler())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/__reload"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// The hub registers the client inside the upgrade handler; wait for it.
	deadline := time.Now().Add(2 * time.Second)
	for server.Hub().ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	server.Hub().NotifyReload()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `"type":"reload"`) {
		t.Fatalf("message mismatch: %s", data)
	}
}
