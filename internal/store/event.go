package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// EventFamily distinguishes the two kinds of recognition events.
type EventFamily string

const (
	// EventFamilyGaze marks an event produced by the gaze evaluator.
	EventFamilyGaze EventFamily = "gaze"
	// EventFamilyGesture marks an event produced by the gesture classifier.
	EventFamilyGesture EventFamily = "gesture"
)

// Event represents a recognized gaze direction or hand gesture stored
// in the database.
type Event struct {
	ID         string
	Family     EventFamily
	Label      string
	Handedness string
	CreatedAt  time.Time
}

// EventRepository provides CRUD operations for recognition events.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Create inserts a new event into the database.
func (r *EventRepository) Create(e *Event) error {
	e.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO events (id, family, label, handedness, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID, string(e.Family), e.Label, e.Handedness, e.CreatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an event by its ID.
func (r *EventRepository) GetByID(id string) (*Event, error) {
	e := &Event{}
	var family string

	err := r.db.QueryRow(
		`SELECT id, family, label, handedness, created_at
		 FROM events WHERE id = ?`,
		id,
	).Scan(&e.ID, &family, &e.Label, &e.Handedness, &e.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	e.Family = EventFamily(family)
	return e, nil
}

// List retrieves events, newest first. An empty family matches both
// families; limit <= 0 means no limit.
func (r *EventRepository) List(family EventFamily, limit int) ([]*Event, error) {
	query := `SELECT id, family, label, handedness, created_at
	          FROM events`
	var args []any

	if family != "" {
		query += ` WHERE family = ?`
		args = append(args, string(family))
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		var fam string

		err := rows.Scan(&e.ID, &fam, &e.Label, &e.Handedness, &e.CreatedAt)
		if err != nil {
			return nil, err
		}

		e.Family = EventFamily(fam)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Delete removes an event from the database by its ID.
func (r *EventRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM events WHERE id = ?`, id)
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

// Clear removes all events, optionally restricted to one family.
func (r *EventRepository) Clear(family EventFamily) error {
	if family == "" {
		_, err := r.db.Exec(`DELETE FROM events`)
		return err
	}

	_, err := r.db.Exec(`DELETE FROM events WHERE family = ?`, string(family))
	return err
}
