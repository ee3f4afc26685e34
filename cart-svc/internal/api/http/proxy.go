package httpapi

import (
	"io"
	"log"
	"net/http"
	"strings"

	"restaurant-client/cart-svc/internal/backend"

	"github.com/google/uuid"
)

// Proxy forwards /api routes that cart-svc does not own (restaurants, users, admin
// screens) to the restaurant backend with the /api prefix removed.
type Proxy struct {
	baseURL string
	client  backend.HTTPClient
}

func NewProxy(baseURL string, client backend.HTTPClient) *Proxy {
	if client == nil {
		client = &http.Client{}
	}
	return &Proxy{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

var hopHeaders = map[string]bool{
	"Connection":        true,
	"Keep-Alive":        true,
	"Proxy-Connection":  true,
	"Te":                true,
	"Trailer":           true,
	"Transfer-Encoding": true,
	"Upgrade":           true,
}

func (p *Proxy) ProxyRequest(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api")
	if path == "" {
		path = "/"
	}
	target := p.baseURL + path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	log.Printf("[GATEWAY] %s %s -> %s", r.Method, r.URL.Path, target)

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		log.Printf("ERROR: build proxy request: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	for k, v := range r.Header {
		if !hopHeaders[k] {
			req.Header[k] = v
		}
	}
	if req.Header.Get(backend.RequestIDHeader) == "" {
		req.Header.Set(backend.RequestIDHeader, uuid.NewString())
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("ERROR: proxy to %s: %v", p.baseURL, err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "backend unavailable"})
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		if !hopHeaders[k] {
			w.Header()[k] = v
		}
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: copy proxied response: %v", err)
	}
}
