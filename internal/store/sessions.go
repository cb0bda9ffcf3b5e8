// ABOUTME: Workout session and set CRUD, including the transactional session save.
// ABOUTME: Sets are listed ordered by (exercise id, set number) for display.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/holdonapp/holdon/internal/models"
)

// SaveWorkoutSession inserts on zero id and updates otherwise.
func (d *DB) SaveWorkoutSession(s *models.WorkoutSession) error {
	if s.ID == 0 {
		res, err := d.db.Exec(`
			INSERT INTO workout_sessions (user_id, session_date, start_time, end_time, duration_minutes, notes)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.UserID, s.SessionDate.Format(time.RFC3339), s.StartTime.Format(time.RFC3339),
			s.EndTime.Format(time.RFC3339), s.DurationMinutes, s.Notes,
		)
		if err != nil {
			return fmt.Errorf("insert workout session: %w", err)
		}
		s.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert workout session: %w", err)
		}
		return nil
	}

	_, err := d.db.Exec(`
		UPDATE workout_sessions SET session_date = ?, start_time = ?, end_time = ?, duration_minutes = ?, notes = ?
		WHERE session_id = ?`,
		s.SessionDate.Format(time.RFC3339), s.StartTime.Format(time.RFC3339),
		s.EndTime.Format(time.RFC3339), s.DurationMinutes, s.Notes, s.ID,
	)
	if err != nil {
		return fmt.Errorf("update workout session: %w", err)
	}
	return nil
}

// GetWorkoutSession retrieves a session by id.
func (d *DB) GetWorkoutSession(id int64) (*models.WorkoutSession, error) {
	row := d.db.QueryRow(`
		SELECT session_id, user_id, session_date, start_time, end_time, duration_minutes, notes
		FROM workout_sessions WHERE session_id = ?`, id)

	s, err := scanSession(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return s, err
}

// ListUserSessions retrieves a user's sessions, most recent first. A zero
// limit means no limit.
func (d *DB) ListUserSessions(userID int64, limit int) ([]*models.WorkoutSession, error) {
	query := `
		SELECT session_id, user_id, session_date, start_time, end_time, duration_minutes, notes
		FROM workout_sessions WHERE user_id = ?
		ORDER BY session_date DESC, session_id DESC`
	args := []interface{}{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.WorkoutSession
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// SaveWorkoutSet inserts on zero id and updates otherwise.
func (d *DB) SaveWorkoutSet(s *models.WorkoutSet) error {
	if s.ID == 0 {
		res, err := d.db.Exec(`
			INSERT INTO workout_sets (session_id, exercise_id, set_number, reps, weight_kg, is_warmup, is_dropset, is_failure)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			s.SessionID, s.ExerciseID, s.SetNumber, s.Reps, s.WeightKg, s.IsWarmup, s.IsDropset, s.IsFailure,
		)
		if err != nil {
			return fmt.Errorf("insert workout set: %w", err)
		}
		s.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert workout set: %w", err)
		}
		return nil
	}

	_, err := d.db.Exec(`
		UPDATE workout_sets SET exercise_id = ?, set_number = ?, reps = ?, weight_kg = ?, is_warmup = ?, is_dropset = ?, is_failure = ?
		WHERE set_id = ?`,
		s.ExerciseID, s.SetNumber, s.Reps, s.WeightKg, s.IsWarmup, s.IsDropset, s.IsFailure, s.ID,
	)
	if err != nil {
		return fmt.Errorf("update workout set: %w", err)
	}
	return nil
}

// ListSessionSets retrieves all sets of a session ordered by
// (exercise id, set number).
func (d *DB) ListSessionSets(sessionID int64) ([]*models.WorkoutSet, error) {
	rows, err := d.db.Query(`
		SELECT set_id, session_id, exercise_id, set_number, reps, weight_kg, is_warmup, is_dropset, is_failure
		FROM workout_sets WHERE session_id = ?
		ORDER BY exercise_id ASC, set_number ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list session sets: %w", err)
	}
	defer rows.Close()

	var sets []*models.WorkoutSet
	for rows.Next() {
		var s models.WorkoutSet
		err := rows.Scan(&s.ID, &s.SessionID, &s.ExerciseID, &s.SetNumber,
			&s.Reps, &s.WeightKg, &s.IsWarmup, &s.IsDropset, &s.IsFailure)
		if err != nil {
			return nil, fmt.Errorf("scan workout set: %w", err)
		}
		sets = append(sets, &s)
	}
	return sets, rows.Err()
}

// SaveSessionWithSets writes a session row and all of its set rows in a
// single transaction. The session id is assigned into the struct and stamped
// onto every set. A failure anywhere rolls the whole write back.
func (d *DB) SaveSessionWithSets(s *models.WorkoutSession, sets []*models.WorkoutSet) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin session save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		INSERT INTO workout_sessions (user_id, session_date, start_time, end_time, duration_minutes, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.UserID, s.SessionDate.Format(time.RFC3339), s.StartTime.Format(time.RFC3339),
		s.EndTime.Format(time.RFC3339), s.DurationMinutes, s.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert workout session: %w", err)
	}
	sessionID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert workout session: %w", err)
	}

	for _, set := range sets {
		set.SessionID = sessionID
		res, err := tx.Exec(`
			INSERT INTO workout_sets (session_id, exercise_id, set_number, reps, weight_kg, is_warmup, is_dropset, is_failure)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			set.SessionID, set.ExerciseID, set.SetNumber, set.Reps, set.WeightKg,
			set.IsWarmup, set.IsDropset, set.IsFailure,
		)
		if err != nil {
			return fmt.Errorf("insert workout set: %w", err)
		}
		if set.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("insert workout set: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session save: %w", err)
	}
	s.ID = sessionID
	return nil
}

func scanSession(scan func(dest ...interface{}) error) (*models.WorkoutSession, error) {
	var s models.WorkoutSession
	var sessionDate, startTime, endTime string
	var notes sql.NullString

	err := scan(&s.ID, &s.UserID, &sessionDate, &startTime, &endTime, &s.DurationMinutes, &notes)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan workout session: %w", err)
	}

	s.SessionDate, _ = time.Parse(time.RFC3339, sessionDate)
	s.StartTime, _ = time.Parse(time.RFC3339, startTime)
	s.EndTime, _ = time.Parse(time.RFC3339, endTime)
	if notes.Valid {
		s.Notes = &notes.String
	}
	return &s, nil
}
