// Package api provides HTTP API handlers for the Mudra gaze and gesture
// recognition system.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ayusman/mudra/internal/store"
)

// EventHandler handles HTTP requests for event resources.
type EventHandler struct {
	store *store.Store
}

// NewEventHandler creates a new EventHandler with the given store.
func NewEventHandler(s *store.Store) *EventHandler {
	return &EventHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *EventHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Parse the path to determine if this is a collection or item request
	// Expected paths: /api/events or /api/events/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/events")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/events
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodDelete:
			h.clear(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoint: /api/events/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type eventResponse struct {
	ID         string `json:"id"`
	Family     string `json:"family"`
	Label      string `json:"label"`
	Handedness string `json:"handedness,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type listEventsResponse struct {
	Events []eventResponse `json:"events"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toEventResponse converts a store.Event to an eventResponse.
func toEventResponse(e *store.Event) eventResponse {
	return eventResponse{
		ID:         e.ID,
		Family:     string(e.Family),
		Label:      e.Label,
		Handedness: e.Handedness,
		CreatedAt:  e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// queryFamily validates the optional ?family= query parameter.
func queryFamily(r *http.Request) (store.EventFamily, bool) {
	family := store.EventFamily(r.URL.Query().Get("family"))
	switch family {
	case "", store.EventFamilyGaze, store.EventFamilyGesture:
		return family, true
	}
	return "", false
}

// list handles GET /api/events with optional family and limit filters.
func (h *EventHandler) list(w http.ResponseWriter, r *http.Request) {
	family, ok := queryFamily(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid family")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	events, err := h.store.Events().List(family, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	response := listEventsResponse{
		Events: make([]eventResponse, 0, len(events)),
	}
	for _, e := range events {
		response.Events = append(response.Events, toEventResponse(e))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/events/{id} and returns a single event.
func (h *EventHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	event, err := h.store.Events().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get event")
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(event))
}

// delete handles DELETE /api/events/{id} and removes an event.
func (h *EventHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Events().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// clear handles DELETE /api/events with an optional family filter.
func (h *EventHandler) clear(w http.ResponseWriter, r *http.Request) {
	family, ok := queryFamily(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid family")
		return
	}

	if err := h.store.Events().Clear(family); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to clear events")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
