package mockapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"bddkit/internal/testutil"
)

func testHandler() *handler {
	h := newHandler(zap.NewNop())
	h.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	h.jitter = func() float64 { return 1.0 }
	return h
}

func get(t *testing.T, h *handler, path string) (*http.Response, []byte) {
	t.Helper()
	srv := httptest.NewServer(h.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("get %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func TestHealthEndpoint(t *testing.T) {
	resp, body := get(t, testHandler(), "/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["status"] != "healthy" {
		t.Fatalf("unexpected payload %v", payload)
	}
	if payload["timestamp"] != "2024-03-01T12:00:00Z" {
		t.Fatalf("unexpected timestamp %q", payload["timestamp"])
	}
}

func TestClientsEndpoint(t *testing.T) {
	resp, body := get(t, testHandler(), "/clients")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	var payload struct {
		Data  []Client `json:"data"`
		Count int      `json:"count"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Count != 5 || len(payload.Data) != 5 {
		t.Fatalf("expected 5 clients, got count=%d len=%d", payload.Count, len(payload.Data))
	}
	if payload.Data[0].ClientName != "Client A" || payload.Data[0].Revenue != 150000.50 {
		t.Fatalf("unexpected first client %+v", payload.Data[0])
	}
}

func TestClientsActiveOnly(t *testing.T) {
	_, body := get(t, testHandler(), "/clients?active_only=true")
	var payload struct {
		Data []Client `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Data) != 4 {
		t.Fatalf("expected 4 active clients, got %d", len(payload.Data))
	}
	for _, client := range payload.Data {
		if !client.Active {
			t.Fatalf("inactive client in filtered list: %+v", client)
		}
	}
}

func TestClientByID(t *testing.T) {
	resp, body := get(t, testHandler(), "/clients/3")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	var client Client
	if err := json.Unmarshal(body, &client); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if client.ClientName != "Client C" {
		t.Fatalf("unexpected client %+v", client)
	}

	resp, _ = get(t, testHandler(), "/clients/99")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown client, got %d", resp.StatusCode)
	}
	resp, _ = get(t, testHandler(), "/clients/abc")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", resp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	_, body := get(t, testHandler(), "/metrics")
	var payload struct {
		TotalClients  int     `json:"total_clients"`
		ActiveClients int     `json:"active_clients"`
		TotalRevenue  float64 `json:"total_revenue"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.TotalClients != 5 || payload.ActiveClients != 4 {
		t.Fatalf("unexpected metrics %+v", payload)
	}
	if payload.TotalRevenue <= 0 {
		t.Fatalf("expected positive total revenue, got %f", payload.TotalRevenue)
	}
}

func TestDashboardRendersClients(t *testing.T) {
	resp, body := get(t, testHandler(), "/dashboard")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	html := string(body)
	if !strings.Contains(html, `id="clientsGrid"`) {
		t.Fatalf("dashboard missing clients grid: %s", html)
	}
	if !strings.Contains(html, `<span class="client-name">Client A</span>`) {
		t.Fatalf("dashboard missing client name: %s", html)
	}
	if !strings.Contains(html, `<span class="revenue">$150000.50</span>`) {
		t.Fatalf("dashboard missing revenue: %s", html)
	}
}

func TestServerLifecycle(t *testing.T) {
	srv, err := NewServer("127.0.0.1:0", zap.NewNop())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	stop := srv.Start(testutil.Context(t, 0))
	testutil.WaitForHTTP(t, srv.BaseURL(), "/health", 2*time.Second)

	resp, err := http.Get(srv.BaseURL() + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
}
