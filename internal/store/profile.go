package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// Profile represents a named set of classifier tolerances and gaze
// thresholds stored in the database. ActiveRules is persisted as a
// JSON array of rule labels.
type Profile struct {
	ID                   string
	Name                 string
	StraightTolerance    float64
	BendTolerance        float64
	ParallelToleranceDeg float64
	InterlockDistancePx  float64
	HorizontalLow        float64
	HorizontalHigh       float64
	VerticalUp           float64
	ActiveRules          []string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ProfileRepository provides CRUD operations for tuning profiles.
type ProfileRepository struct {
	db *sql.DB
}

// Profiles returns the profile repository for this store.
func (s *Store) Profiles() *ProfileRepository {
	return &ProfileRepository{db: s.db}
}

// Create inserts a new profile into the database.
func (r *ProfileRepository) Create(p *Profile) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	rules, err := json.Marshal(p.ActiveRules)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		`INSERT INTO profiles (id, name, straight_tolerance, bend_tolerance,
		 parallel_tolerance_deg, interlock_distance_px, horizontal_low,
		 horizontal_high, vertical_up, active_rules, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.StraightTolerance, p.BendTolerance,
		p.ParallelToleranceDeg, p.InterlockDistancePx, p.HorizontalLow,
		p.HorizontalHigh, p.VerticalUp, string(rules), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

const profileColumns = `id, name, straight_tolerance, bend_tolerance,
	parallel_tolerance_deg, interlock_distance_px, horizontal_low,
	horizontal_high, vertical_up, active_rules, created_at, updated_at`

func scanProfile(scan func(dest ...any) error) (*Profile, error) {
	p := &Profile{}
	var rules string

	err := scan(&p.ID, &p.Name, &p.StraightTolerance, &p.BendTolerance,
		&p.ParallelToleranceDeg, &p.InterlockDistancePx, &p.HorizontalLow,
		&p.HorizontalHigh, &p.VerticalUp, &rules, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(rules), &p.ActiveRules); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID retrieves a profile by its ID.
func (r *ProfileRepository) GetByID(id string) (*Profile, error) {
	row := r.db.QueryRow(
		`SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id,
	)

	p, err := scanProfile(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// GetByName retrieves a profile by its name.
func (r *ProfileRepository) GetByName(name string) (*Profile, error) {
	row := r.db.QueryRow(
		`SELECT `+profileColumns+` FROM profiles WHERE name = ?`, name,
	)

	p, err := scanProfile(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// List retrieves all profiles from the database.
func (r *ProfileRepository) List() ([]*Profile, error) {
	rows, err := r.db.Query(
		`SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		p, err := scanProfile(rows.Scan)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// Update updates an existing profile in the database.
func (r *ProfileRepository) Update(p *Profile) error {
	p.UpdatedAt = time.Now()

	rules, err := json.Marshal(p.ActiveRules)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(
		`UPDATE profiles SET name = ?, straight_tolerance = ?, bend_tolerance = ?,
		 parallel_tolerance_deg = ?, interlock_distance_px = ?, horizontal_low = ?,
		 horizontal_high = ?, vertical_up = ?, active_rules = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, p.StraightTolerance, p.BendTolerance,
		p.ParallelToleranceDeg, p.InterlockDistancePx, p.HorizontalLow,
		p.HorizontalHigh, p.VerticalUp, string(rules), p.UpdatedAt, p.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a profile from the database by its ID.
func (r *ProfileRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
