package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dejobratic/inventory/internal/inventory/ports"
)

const idempotencyHeader = "Idempotency-Key"

// replay writes the stored response for the request's Idempotency-Key, if any.
// Keys are namespaced by resource so the same key on another endpoint never
// replays a foreign response. It returns the namespaced key (empty when no
// header was sent) and whether the request was answered.
func (h *Handler) replay(w http.ResponseWriter, r *http.Request, resource string) (string, bool) {
	key := strings.TrimSpace(r.Header.Get(idempotencyHeader))
	if key == "" {
		return "", false
	}
	key = resource + ":" + key

	stored, err := h.service.GetIdempotentResponse(r.Context(), key)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return key, true
	}
	if stored == nil {
		return key, false
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Idempotent-Replayed", "true")
	w.WriteHeader(stored.StatusCode)
	_, _ = w.Write(stored.Body)
	return key, true
}

// respondCreated writes a 201 response and remembers it under key when one was
// supplied. The resource already exists at this point, so a failed save is
// logged and the 201 is still sent.
func (h *Handler) respondCreated(w http.ResponseWriter, r *http.Request, key string, payload any, resourceID int64) {
	body, err := json.Marshal(payload)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	body = append(body, '\n')

	if key != "" {
		stored := ports.StoredResponse{
			StatusCode: http.StatusCreated,
			Body:       body,
			ResourceID: resourceID,
		}
		if err := h.service.SaveIdempotentResponse(r.Context(), key, stored); err != nil {
			slog.ErrorContext(r.Context(), "failed to save idempotent response",
				"key", key,
				"resource_id", resourceID,
				"error", err,
			)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(body)
}
