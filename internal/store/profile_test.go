package store

import (
	"testing"
	"time"
)

func testProfile(id, name string) *Profile {
	return &Profile{
		ID:                   id,
		Name:                 name,
		StraightTolerance:    0.15,
		BendTolerance:        0.25,
		ParallelToleranceDeg: 20,
		InterlockDistancePx:  40,
		HorizontalLow:        0.35,
		HorizontalHigh:       0.65,
		VerticalUp:           0.3,
		ActiveRules:          []string{"Middle Finger"},
	}
}

func TestProfileRepository_Create(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	profile := testProfile("profile-1", "default")
	if err := repo.Create(profile); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	if profile.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set after create")
	}

	retrieved, err := repo.GetByID("profile-1")
	if err != nil {
		t.Fatalf("failed to get profile by ID: %v", err)
	}

	if retrieved.Name != "default" {
		t.Errorf("Name mismatch: got %q, want %q", retrieved.Name, "default")
	}
	if retrieved.StraightTolerance != 0.15 {
		t.Errorf("StraightTolerance mismatch: got %f, want 0.15", retrieved.StraightTolerance)
	}
	if retrieved.InterlockDistancePx != 40 {
		t.Errorf("InterlockDistancePx mismatch: got %f, want 40", retrieved.InterlockDistancePx)
	}
	if len(retrieved.ActiveRules) != 1 || retrieved.ActiveRules[0] != "Middle Finger" {
		t.Errorf("ActiveRules mismatch: got %v", retrieved.ActiveRules)
	}

	byName, err := repo.GetByName("default")
	if err != nil {
		t.Fatalf("failed to get profile by name: %v", err)
	}
	if byName.ID != "profile-1" {
		t.Errorf("GetByName returned wrong profile: got ID %q", byName.ID)
	}
}

func TestProfileRepository_Create_DuplicateName(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	if err := repo.Create(testProfile("profile-1", "default")); err != nil {
		t.Fatalf("failed to create first profile: %v", err)
	}

	if err := repo.Create(testProfile("profile-2", "default")); err == nil {
		t.Error("creating profile with duplicate name should fail")
	}
}

func TestProfileRepository_List(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	names := []string{"default", "strict", "relaxed"}
	for i, name := range names {
		p := testProfile("profile-"+name, name)
		if err := repo.Create(p); err != nil {
			t.Fatalf("failed to create profile %d: %v", i, err)
		}
	}

	list, err := repo.List()
	if err != nil {
		t.Fatalf("failed to list profiles: %v", err)
	}
	if len(list) != len(names) {
		t.Errorf("expected %d profiles, got %d", len(names), len(list))
	}

	nameMap := make(map[string]bool)
	for _, p := range list {
		nameMap[p.Name] = true
	}
	for _, name := range names {
		if !nameMap[name] {
			t.Errorf("profile %q not found in list", name)
		}
	}
}

func TestProfileRepository_Update(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	profile := testProfile("profile-1", "default")
	if err := repo.Create(profile); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	originalUpdatedAt := profile.UpdatedAt
	time.Sleep(10 * time.Millisecond)

	profile.Name = "strict"
	profile.StraightTolerance = 0.10
	profile.ActiveRules = []string{"Middle Finger", "Pointing"}

	if err := repo.Update(profile); err != nil {
		t.Fatalf("failed to update profile: %v", err)
	}

	retrieved, err := repo.GetByID("profile-1")
	if err != nil {
		t.Fatalf("failed to get profile after update: %v", err)
	}

	if retrieved.Name != "strict" {
		t.Errorf("Name not updated: got %q, want %q", retrieved.Name, "strict")
	}
	if retrieved.StraightTolerance != 0.10 {
		t.Errorf("StraightTolerance not updated: got %f, want 0.10", retrieved.StraightTolerance)
	}
	if len(retrieved.ActiveRules) != 2 {
		t.Errorf("ActiveRules not updated: got %v", retrieved.ActiveRules)
	}
	if !retrieved.UpdatedAt.After(originalUpdatedAt) {
		t.Error("UpdatedAt should be updated after Update")
	}
}

func TestProfileRepository_Update_NotFound(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	if err := repo.Update(testProfile("non-existent-id", "ghost")); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for non-existent profile, got: %v", err)
	}
}

func TestProfileRepository_Delete(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	if err := repo.Create(testProfile("profile-1", "default")); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	if err := repo.Delete("profile-1"); err != nil {
		t.Fatalf("failed to delete profile: %v", err)
	}

	if _, err := repo.GetByID("profile-1"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got: %v", err)
	}
}

func TestProfileRepository_Delete_NotFound(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()

	if err := repo.Delete("non-existent-id"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for non-existent profile, got: %v", err)
	}
}
