package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ayusman/mudra/internal/store"
)

// newTestStore creates a new Store with a temporary database for testing.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "mudra-api-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(tmpDir)
	})

	dbPath := filepath.Join(tmpDir, "test.db")
	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func seedEvents(t *testing.T, s *store.Store) {
	t.Helper()

	events := []*store.Event{
		{ID: "event-1", Family: store.EventFamilyGesture, Label: "Open Palm", Handedness: "Right"},
		{ID: "event-2", Family: store.EventFamilyGaze, Label: "LEFT"},
		{ID: "event-3", Family: store.EventFamilyGesture, Label: "Middle Finger", Handedness: "Left"},
	}
	for _, e := range events {
		if err := s.Events().Create(e); err != nil {
			t.Fatalf("failed to create event %q: %v", e.ID, err)
		}
	}
}

func TestEventHandler_List(t *testing.T) {
	s := newTestStore(t)
	handler := NewEventHandler(s)
	seedEvents(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	var response listEventsResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(response.Events) != 3 {
		t.Errorf("expected 3 events, got %d", len(response.Events))
	}
}

func TestEventHandler_List_FamilyFilter(t *testing.T) {
	s := newTestStore(t)
	handler := NewEventHandler(s)
	seedEvents(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/events?family=gaze", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response listEventsResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(response.Events) != 1 {
		t.Fatalf("expected 1 gaze event, got %d", len(response.Events))
	}
	if response.Events[0].Label != "LEFT" {
		t.Errorf("expected label LEFT, got %q", response.Events[0].Label)
	}
}

func TestEventHandler_List_InvalidFamily(t *testing.T) {
	s := newTestStore(t)
	handler := NewEventHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/api/events?family=bogus", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestEventHandler_List_Limit(t *testing.T) {
	s := newTestStore(t)
	handler := NewEventHandler(s)
	seedEvents(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/events?limit=2", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response listEventsResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(response.Events) != 2 {
		t.Errorf("expected 2 events with limit=2, got %d", len(response.Events))
	}
}

func TestEventHandler_Get(t *testing.T) {
	s := newTestStore(t)
	handler := NewEventHandler(s)
	seedEvents(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/events/event-1", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response eventResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.ID != "event-1" {
		t.Errorf("expected event ID 'event-1', got %q", response.ID)
	}
	if response.Family != "gesture" {
		t.Errorf("expected family gesture, got %q", response.Family)
	}
	if response.Handedness != "Right" {
		t.Errorf("expected handedness Right, got %q", response.Handedness)
	}
}

func TestEventHandler_Get_NotFound(t *testing.T) {
	s := newTestStore(t)
	handler := NewEventHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/api/events/no-such-event", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestEventHandler_Delete(t *testing.T) {
	s := newTestStore(t)
	handler := NewEventHandler(s)
	seedEvents(t, s)

	req := httptest.NewRequest(http.MethodDelete, "/api/events/event-2", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}

	if _, err := s.Events().GetByID("event-2"); err != store.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got: %v", err)
	}
}

func TestEventHandler_Clear_Family(t *testing.T) {
	s := newTestStore(t)
	handler := NewEventHandler(s)
	seedEvents(t, s)

	req := httptest.NewRequest(http.MethodDelete, "/api/events?family=gesture", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}

	remaining, err := s.Events().List("", 0)
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(remaining) != 1 {
		t.Errorf("expected 1 event after clearing gestures, got %d", len(remaining))
	}
}

func TestEventHandler_MethodNotAllowed(t *testing.T) {
	s := newTestStore(t)
	handler := NewEventHandler(s)

	req := httptest.NewRequest(http.MethodPost, "/api/events", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}
