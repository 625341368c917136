package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Events table - stores recognized gaze and gesture events
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			family TEXT NOT NULL CHECK(family IN ('gaze', 'gesture')),
			label TEXT NOT NULL,
			handedness TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Profiles table - stores named tuning profiles for the classifier
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			straight_tolerance REAL NOT NULL DEFAULT 0.15,
			bend_tolerance REAL NOT NULL DEFAULT 0.25,
			parallel_tolerance_deg REAL NOT NULL DEFAULT 20,
			interlock_distance_px REAL NOT NULL DEFAULT 40,
			horizontal_low REAL NOT NULL DEFAULT 0.35,
			horizontal_high REAL NOT NULL DEFAULT 0.65,
			vertical_up REAL NOT NULL DEFAULT 0.3,
			active_rules TEXT NOT NULL DEFAULT '[]',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - stores application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_events_family ON events(family)`,
		`CREATE INDEX IF NOT EXISTS idx_events_created_at ON events(created_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
