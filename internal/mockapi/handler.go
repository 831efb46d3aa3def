package mockapi

import (
	"encoding/json"
	"fmt"
	"html/template"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const serviceName = "bddkit-mock-api"

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <title>Client Revenue Dashboard</title>
  </head>
  <body>
    <h1>Client Revenue Dashboard</h1>
    <div id="clientsGrid">
{{- range .Clients }}
      <div class="client-card">
        <span class="client-name">{{ .ClientName }}</span>
        <span class="revenue">${{ printf "%.2f" .Revenue }}</span>
        <span class="region">{{ .Region }}</span>
      </div>
{{- end }}
    </div>
    <footer>Rendered at {{ .RenderedAt }}</footer>
  </body>
</html>
`))

type dashboardView struct {
	Clients    []Client
	RenderedAt string
}

// handler serves the mock endpoints from an in-memory dataset.
type handler struct {
	clients []Client
	log     *zap.Logger
	now     func() time.Time
	jitter  func() float64
}

func newHandler(log *zap.Logger) *handler {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &handler{
		clients: sampleClients(),
		log:     log,
		now:     time.Now,
		// jitter returns a factor in [0.95, 1.05) so dashboard figures
		// move between page loads but stay positive.
		jitter: func() float64 { return 0.95 + rng.Float64()*0.1 },
	}
}

func (h *handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.serveRoot)
	mux.HandleFunc("/health", h.serveHealth)
	mux.HandleFunc("/clients", h.serveClients)
	mux.HandleFunc("/clients/", h.serveClientByID)
	mux.HandleFunc("/metrics", h.serveMetrics)
	mux.HandleFunc("/dashboard", h.serveDashboard)
	return mux
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Warn("encode response", zap.Error(err))
	}
}

func (h *handler) serveRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"service": serviceName,
		"endpoints": []string{
			"/health", "/clients", "/clients/{id}", "/metrics", "/dashboard",
		},
	})
}

func (h *handler) serveHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   serviceName,
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

func (h *handler) serveClients(w http.ResponseWriter, r *http.Request) {
	clients := h.clients
	if r.URL.Query().Get("active_only") == "true" {
		filtered := make([]Client, 0, len(clients))
		for _, client := range clients {
			if client.Active {
				filtered = append(filtered, client)
			}
		}
		clients = filtered
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"data":      clients,
		"count":     len(clients),
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

func (h *handler) serveClientByID(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.URL.Path, "/clients/")
	id, err := strconv.Atoi(raw)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("invalid client id %q", raw),
		})
		return
	}
	for _, client := range h.clients {
		if client.ClientID == id {
			h.writeJSON(w, http.StatusOK, client)
			return
		}
	}
	h.writeJSON(w, http.StatusNotFound, map[string]string{
		"error": fmt.Sprintf("client %d not found", id),
	})
}

func (h *handler) serveMetrics(w http.ResponseWriter, _ *http.Request) {
	var totalRevenue float64
	active := 0
	for _, client := range h.clients {
		totalRevenue += client.Revenue
		if client.Active {
			active++
		}
	}
	avg := 0.0
	if len(h.clients) > 0 {
		avg = totalRevenue / float64(len(h.clients))
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"total_clients":  len(h.clients),
		"active_clients": active,
		"total_revenue":  totalRevenue,
		"avg_revenue":    avg,
		"timestamp":      h.now().UTC().Format(time.RFC3339),
	})
}

func (h *handler) serveDashboard(w http.ResponseWriter, _ *http.Request) {
	view := dashboardView{
		Clients:    make([]Client, len(h.clients)),
		RenderedAt: h.now().UTC().Format(time.RFC3339),
	}
	copy(view.Clients, h.clients)
	for i := range view.Clients {
		view.Clients[i].Revenue *= h.jitter()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, view); err != nil {
		h.log.Warn("render dashboard", zap.Error(err))
	}
}
