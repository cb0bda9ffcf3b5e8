// ABOUTME: Append-only personal record storage and best-value queries.
// ABOUTME: Current best is MAX(value) over rows for (user, exercise, type).
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/holdonapp/holdon/internal/models"
)

// InsertPersonalRecord appends a record row. Records are never updated or
// deleted; superseded bests stay in the table.
func (d *DB) InsertPersonalRecord(r *models.PersonalRecord) error {
	res, err := d.db.Exec(`
		INSERT INTO personal_records (user_id, exercise_id, record_type, value, unit, achieved_date, session_id, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.UserID, r.ExerciseID, r.RecordType, r.Value, r.Unit,
		r.AchievedDate.Format(time.RFC3339), r.SessionID, r.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert personal record: %w", err)
	}
	r.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert personal record: %w", err)
	}
	return nil
}

// GetBestRecord returns the row holding the maximum value for
// (user, exercise, type), or ErrNotFound when no record exists yet.
func (d *DB) GetBestRecord(userID, exerciseID int64, recordType string) (*models.PersonalRecord, error) {
	row := d.db.QueryRow(`
		SELECT record_id, user_id, exercise_id, record_type, value, unit, achieved_date, session_id, notes
		FROM personal_records
		WHERE user_id = ? AND exercise_id = ? AND record_type = ?
		ORDER BY value DESC, record_id ASC
		LIMIT 1`, userID, exerciseID, recordType)
	return scanRecord(row)
}

// ListUserRecords retrieves all of a user's record rows, most recent first.
func (d *DB) ListUserRecords(userID int64) ([]*models.PersonalRecord, error) {
	rows, err := d.db.Query(`
		SELECT record_id, user_id, exercise_id, record_type, value, unit, achieved_date, session_id, notes
		FROM personal_records WHERE user_id = ?
		ORDER BY achieved_date DESC, record_id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list personal records: %w", err)
	}
	defer rows.Close()

	var records []*models.PersonalRecord
	for rows.Next() {
		r, err := scanRecordRows(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountRecords returns the number of record rows for a (user, exercise, type)
// key. Used by tests to verify the append-only policy.
func (d *DB) CountRecords(userID, exerciseID int64, recordType string) (int, error) {
	var n int
	err := d.db.QueryRow(`
		SELECT COUNT(*) FROM personal_records
		WHERE user_id = ? AND exercise_id = ? AND record_type = ?`,
		userID, exerciseID, recordType).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count personal records: %w", err)
	}
	return n, nil
}

func scanRecord(row *sql.Row) (*models.PersonalRecord, error) {
	var r models.PersonalRecord
	var achievedDate string
	var notes sql.NullString

	err := row.Scan(&r.ID, &r.UserID, &r.ExerciseID, &r.RecordType, &r.Value,
		&r.Unit, &achievedDate, &r.SessionID, &notes)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan personal record: %w", err)
	}

	r.AchievedDate, _ = time.Parse(time.RFC3339, achievedDate)
	if notes.Valid {
		r.Notes = &notes.String
	}
	return &r, nil
}

func scanRecordRows(rows *sql.Rows) (*models.PersonalRecord, error) {
	var r models.PersonalRecord
	var achievedDate string
	var notes sql.NullString

	err := rows.Scan(&r.ID, &r.UserID, &r.ExerciseID, &r.RecordType, &r.Value,
		&r.Unit, &achievedDate, &r.SessionID, &notes)
	if err != nil {
		return nil, fmt.Errorf("scan personal record: %w", err)
	}

	r.AchievedDate, _ = time.Parse(time.RFC3339, achievedDate)
	if notes.Valid {
		r.Notes = &notes.String
	}
	return &r, nil
}
