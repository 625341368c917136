package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/store"
)

// ProfileHandler handles HTTP requests for tuning profile resources.
type ProfileHandler struct {
	store *store.Store
}

// NewProfileHandler creates a new ProfileHandler with the given store.
func NewProfileHandler(s *store.Store) *ProfileHandler {
	return &ProfileHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/profiles or /api/profiles/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/profiles")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/profiles
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoint: /api/profiles/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type profileRequest struct {
	Name                 string   `json:"name"`
	StraightTolerance    *float64 `json:"straight_tolerance"`
	BendTolerance        *float64 `json:"bend_tolerance"`
	ParallelToleranceDeg *float64 `json:"parallel_tolerance_deg"`
	InterlockDistancePx  *float64 `json:"interlock_distance_px"`
	HorizontalLow        *float64 `json:"horizontal_low"`
	HorizontalHigh       *float64 `json:"horizontal_high"`
	VerticalUp           *float64 `json:"vertical_up"`
	ActiveRules          []string `json:"active_rules"`
}

type profileResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	StraightTolerance    float64  `json:"straight_tolerance"`
	BendTolerance        float64  `json:"bend_tolerance"`
	ParallelToleranceDeg float64  `json:"parallel_tolerance_deg"`
	InterlockDistancePx  float64  `json:"interlock_distance_px"`
	HorizontalLow        float64  `json:"horizontal_low"`
	HorizontalHigh       float64  `json:"horizontal_high"`
	VerticalUp           float64  `json:"vertical_up"`
	ActiveRules          []string `json:"active_rules"`
	CreatedAt            string   `json:"created_at"`
	UpdatedAt            string   `json:"updated_at"`
}

type listProfilesResponse struct {
	Profiles []profileResponse `json:"profiles"`
}

// toProfileResponse converts a store.Profile to a profileResponse.
func toProfileResponse(p *store.Profile) profileResponse {
	rules := p.ActiveRules
	if rules == nil {
		rules = []string{}
	}
	return profileResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		StraightTolerance:    p.StraightTolerance,
		BendTolerance:        p.BendTolerance,
		ParallelToleranceDeg: p.ParallelToleranceDeg,
		InterlockDistancePx:  p.InterlockDistancePx,
		HorizontalLow:        p.HorizontalLow,
		HorizontalHigh:       p.HorizontalHigh,
		VerticalUp:           p.VerticalUp,
		ActiveRules:          rules,
		CreatedAt:            p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:            p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// applyRequest overlays the non-nil request fields onto a profile.
func applyRequest(p *store.Profile, req *profileRequest) {
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.StraightTolerance != nil {
		p.StraightTolerance = *req.StraightTolerance
	}
	if req.BendTolerance != nil {
		p.BendTolerance = *req.BendTolerance
	}
	if req.ParallelToleranceDeg != nil {
		p.ParallelToleranceDeg = *req.ParallelToleranceDeg
	}
	if req.InterlockDistancePx != nil {
		p.InterlockDistancePx = *req.InterlockDistancePx
	}
	if req.HorizontalLow != nil {
		p.HorizontalLow = *req.HorizontalLow
	}
	if req.HorizontalHigh != nil {
		p.HorizontalHigh = *req.HorizontalHigh
	}
	if req.VerticalUp != nil {
		p.VerticalUp = *req.VerticalUp
	}
	if req.ActiveRules != nil {
		p.ActiveRules = req.ActiveRules
	}
}

// list handles GET /api/profiles and returns all profiles.
func (h *ProfileHandler) list(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.store.Profiles().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list profiles")
		return
	}

	response := listProfilesResponse{
		Profiles: make([]profileResponse, 0, len(profiles)),
	}
	for _, p := range profiles {
		response.Profiles = append(response.Profiles, toProfileResponse(p))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/profiles/{id} and returns a single profile.
func (h *ProfileHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	profile, err := h.store.Profiles().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

// create handles POST /api/profiles and creates a new profile. Omitted
// tolerances take the classifier defaults.
func (h *ProfileHandler) create(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	profile := &store.Profile{
		ID:                   uuid.New().String(),
		StraightTolerance:    0.15,
		BendTolerance:        0.25,
		ParallelToleranceDeg: 20,
		InterlockDistancePx:  40,
		HorizontalLow:        0.35,
		HorizontalHigh:       0.65,
		VerticalUp:           0.3,
		ActiveRules:          []string{},
	}
	applyRequest(profile, &req)

	if err := h.store.Profiles().Create(profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create profile")
		return
	}

	writeJSON(w, http.StatusCreated, toProfileResponse(profile))
}

// update handles PUT /api/profiles/{id} and updates an existing profile.
func (h *ProfileHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	// First, get the existing profile
	profile, err := h.store.Profiles().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	applyRequest(profile, &req)

	if err := h.store.Profiles().Update(profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

// delete handles DELETE /api/profiles/{id} and removes a profile.
func (h *ProfileHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Profiles().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
