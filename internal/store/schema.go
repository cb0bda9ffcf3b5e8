// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: One table per entity kind, INTEGER AUTOINCREMENT primary keys throughout.
package store

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		preferred_language TEXT NOT NULL DEFAULT 'en',
		created_at DATETIME NOT NULL,
		last_login DATETIME
	);

	CREATE TABLE IF NOT EXISTS user_profiles (
		profile_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL UNIQUE,
		age INTEGER,
		gender TEXT,
		weight_kg REAL,
		height_cm REAL,
		fitness_goal TEXT,
		experience_level TEXT,
		equipment TEXT,
		days_per_week INTEGER,
		active_plan_id TEXT,
		updated_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(user_id)
	);

	CREATE TABLE IF NOT EXISTS exercises (
		exercise_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name_en TEXT NOT NULL,
		name_sl TEXT NOT NULL,
		description_en TEXT,
		description_sl TEXT,
		category TEXT,
		difficulty TEXT,
		equipment TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS workout_sessions (
		session_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		session_date DATETIME NOT NULL,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL,
		duration_minutes INTEGER NOT NULL,
		notes TEXT,
		FOREIGN KEY (user_id) REFERENCES users(user_id)
	);

	CREATE TABLE IF NOT EXISTS workout_sets (
		set_id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id INTEGER NOT NULL,
		exercise_id INTEGER NOT NULL,
		set_number INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		weight_kg REAL NOT NULL,
		is_warmup INTEGER NOT NULL DEFAULT 0,
		is_dropset INTEGER NOT NULL DEFAULT 0,
		is_failure INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (session_id) REFERENCES workout_sessions(session_id) ON DELETE CASCADE,
		FOREIGN KEY (exercise_id) REFERENCES exercises(exercise_id)
	);

	CREATE TABLE IF NOT EXISTS personal_records (
		record_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		exercise_id INTEGER NOT NULL,
		record_type TEXT NOT NULL,
		value REAL NOT NULL,
		unit TEXT NOT NULL,
		achieved_date DATETIME NOT NULL,
		session_id INTEGER NOT NULL,
		notes TEXT,
		FOREIGN KEY (user_id) REFERENCES users(user_id),
		FOREIGN KEY (exercise_id) REFERENCES exercises(exercise_id)
	);

	CREATE TABLE IF NOT EXISTS friendships (
		friendship_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		friend_id INTEGER NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS activity_feed (
		activity_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		activity_type TEXT NOT NULL,
		payload TEXT NOT NULL,
		is_public INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_user ON workout_sessions(user_id, session_date DESC);
	CREATE INDEX IF NOT EXISTS idx_sets_session ON workout_sets(session_id);
	CREATE INDEX IF NOT EXISTS idx_records_key ON personal_records(user_id, exercise_id, record_type);
	CREATE INDEX IF NOT EXISTS idx_feed_user ON activity_feed(user_id, created_at DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
