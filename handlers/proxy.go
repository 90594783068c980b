package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"streampick/services/tmdb"
)

// upstreamClient is the slice of the vendor client the proxy needs.
type upstreamClient interface {
	HasToken() bool
	Get(ctx context.Context, path, rawQuery string) (int, []byte, error)
}

var _ upstreamClient = (*tmdb.Client)(nil)

// ProxyHandler forwards requests to the upstream metadata vendor, transforms
// successful payloads into the internal shape, and applies the per-endpoint
// error semantics. Each upstream call is a single attempt.
type ProxyHandler struct {
	Client upstreamClient
}

func NewProxyHandler(client upstreamClient) *ProxyHandler {
	return &ProxyHandler{Client: client}
}

// errorEnvelope is the uniform error body served by the proxy.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status,omitempty"`
}

func (h *ProxyHandler) Proxy(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(mux.Vars(r)["path"], "/")
	requestID := uuid.NewString()[:8]

	// Fail fast before any upstream call when the credential is absent.
	if !h.Client.HasToken() {
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: "configuration error"})
		return
	}

	status, body, err := h.Client.Get(r.Context(), path, r.URL.RawQuery)
	if err != nil {
		var upstream *tmdb.UpstreamError
		if errors.As(err, &upstream) && upstream.Class == tmdb.ClassNetwork {
			log.Printf("[proxy] %s %s: network failure: %s", requestID, path, upstream.Body)
			writeJSON(w, http.StatusServiceUnavailable, errorEnvelope{Error: "Network error", Message: upstream.Body})
			return
		}
		log.Printf("[proxy] %s %s: %v", requestID, path, err)
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: "configuration error"})
		return
	}

	if status == http.StatusOK {
		payload, terr := tmdb.Transform(path, body)
		if terr != nil {
			log.Printf("[proxy] %s %s: transform failed, serving raw payload: %v", requestID, path, terr)
			payload = json.RawMessage(body)
		}
		writeJSON(w, http.StatusOK, payload)
		return
	}

	h.writeUpstreamError(w, requestID, path, status, body)
}

// writeUpstreamError maps a non-OK upstream status to the response contract.
// Missing trailers and missing provider listings are normal, so 404 on those
// paths degrades to an empty success shape instead of an error.
func (h *ProxyHandler) writeUpstreamError(w http.ResponseWriter, requestID, path string, status int, body []byte) {
	if status == http.StatusNotFound {
		if strings.Contains(path, "/videos") {
			writeJSON(w, http.StatusOK, map[string]any{"id": pathItemID(path), "results": []any{}})
			return
		}
		if strings.Contains(path, "/watch/providers") {
			writeJSON(w, http.StatusOK, map[string]any{"id": pathItemID(path), "results": map[string]any{}})
			return
		}
	}

	message := upstreamMessage(body)
	log.Printf("[proxy] %s %s: upstream status %d: %s", requestID, path, status, message)

	switch {
	case status == http.StatusNotFound:
		writeJSON(w, http.StatusNotFound, errorEnvelope{Error: "Content not found", Message: message, Status: status})
	case status == http.StatusTooManyRequests:
		writeJSON(w, http.StatusTooManyRequests, errorEnvelope{Error: "Too many requests", Message: message, Status: status})
	case status >= 500:
		writeJSON(w, http.StatusServiceUnavailable, errorEnvelope{Error: "Service temporarily unavailable", Message: message, Status: status})
	default:
		writeJSON(w, status, errorEnvelope{Error: "Upstream error", Message: message, Status: status})
	}
}

// pathItemID extracts the numeric item ID from paths like movie/550/videos.
func pathItemID(path string) int64 {
	for _, segment := range strings.Split(path, "/") {
		if id, err := strconv.ParseInt(segment, 10, 64); err == nil {
			return id
		}
	}
	return 0
}

// upstreamMessage pulls the vendor's status_message out of an error body,
// falling back to the raw text.
func upstreamMessage(body []byte) string {
	var decoded struct {
		StatusMessage string `json:"status_message"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.StatusMessage != "" {
		return decoded.StatusMessage
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
