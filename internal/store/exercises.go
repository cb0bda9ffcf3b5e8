// ABOUTME: Exercise reference-table CRUD and first-run seeding.
// ABOUTME: SeedExercisesIfEmpty is idempotent across app launches.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/holdonapp/holdon/internal/models"
)

// SaveExercise inserts on zero id and updates otherwise.
func (d *DB) SaveExercise(e *models.Exercise) error {
	if e.ID == 0 {
		res, err := d.db.Exec(`
			INSERT INTO exercises (name_en, name_sl, description_en, description_sl, category, difficulty, equipment, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.NameEn, e.NameSl, e.DescriptionEn, e.DescriptionSl,
			e.Category, e.Difficulty, e.Equipment, e.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert exercise: %w", err)
		}
		e.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert exercise: %w", err)
		}
		return nil
	}

	_, err := d.db.Exec(`
		UPDATE exercises SET name_en = ?, name_sl = ?, description_en = ?, description_sl = ?,
			category = ?, difficulty = ?, equipment = ?
		WHERE exercise_id = ?`,
		e.NameEn, e.NameSl, e.DescriptionEn, e.DescriptionSl,
		e.Category, e.Difficulty, e.Equipment, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	return nil
}

// GetExercise retrieves an exercise by id.
func (d *DB) GetExercise(id int64) (*models.Exercise, error) {
	row := d.db.QueryRow(`
		SELECT exercise_id, name_en, name_sl, description_en, description_sl, category, difficulty, equipment, created_at
		FROM exercises WHERE exercise_id = ?`, id)
	return scanExercise(row)
}

// GetExerciseByName retrieves an exercise by its English name.
func (d *DB) GetExerciseByName(nameEn string) (*models.Exercise, error) {
	row := d.db.QueryRow(`
		SELECT exercise_id, name_en, name_sl, description_en, description_sl, category, difficulty, equipment, created_at
		FROM exercises WHERE LOWER(name_en) = LOWER(?)`, nameEn)
	return scanExercise(row)
}

// ListExercises retrieves exercises, optionally filtered by category, ordered
// by English name for stable display.
func (d *DB) ListExercises(category *string) ([]*models.Exercise, error) {
	query := `
		SELECT exercise_id, name_en, name_sl, description_en, description_sl, category, difficulty, equipment, created_at
		FROM exercises`
	var args []interface{}
	if category != nil {
		query += ` WHERE category = ?`
		args = append(args, *category)
	}
	query += ` ORDER BY name_en ASC`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*models.Exercise
	for rows.Next() {
		e, err := scanExerciseRows(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// CountExercises returns the number of reference exercises.
func (d *DB) CountExercises() (int, error) {
	var n int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM exercises`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count exercises: %w", err)
	}
	return n, nil
}

// SeedExercisesIfEmpty inserts the fixed reference exercise set on first run.
// No-op when the table already has rows.
func (d *DB) SeedExercisesIfEmpty() error {
	n, err := d.CountExercises()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, e := range seedExercises() {
		if err := d.SaveExercise(e); err != nil {
			return fmt.Errorf("seed exercises: %w", err)
		}
	}
	return nil
}

// seedExercises is the fixed reference set inserted on first run.
func seedExercises() []*models.Exercise {
	mk := func(nameEn, nameSl, category, difficulty, descEn, descSl string) *models.Exercise {
		e := models.NewExercise(nameEn, nameSl, category, difficulty)
		e.DescriptionEn = &descEn
		e.DescriptionSl = &descSl
		return e
	}
	return []*models.Exercise{
		mk("Bench press", "Bench press", "chest", "intermediate",
			"Basic bench press exercise", "Osnovni pritisk na klopi"),
		mk("Squat", "Počep s palico", "legs", "intermediate",
			"Basic barbell squat", "Osnovni počepi s palico"),
		mk("Deadlift", "Mrtvi dvig", "back", "advanced",
			"Barbell deadlift", "Mrtvi dvig s palico"),
		mk("Shoulder press", "Vojaški pritisk", "shoulders", "intermediate",
			"Overhead barbell press", "Potisk nad glavo"),
		mk("Pull-up", "Dvig na drogu", "back", "intermediate",
			"Bodyweight pull-up on the bar", "Dvig na drogu"),
	}
}

func scanExercise(row *sql.Row) (*models.Exercise, error) {
	var e models.Exercise
	var descEn, descSl, category, difficulty, equipment sql.NullString
	var createdAt string

	err := row.Scan(&e.ID, &e.NameEn, &e.NameSl, &descEn, &descSl, &category, &difficulty, &equipment, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan exercise: %w", err)
	}
	applyExerciseNulls(&e, descEn, descSl, category, difficulty, equipment, createdAt)
	return &e, nil
}

func scanExerciseRows(rows *sql.Rows) (*models.Exercise, error) {
	var e models.Exercise
	var descEn, descSl, category, difficulty, equipment sql.NullString
	var createdAt string

	err := rows.Scan(&e.ID, &e.NameEn, &e.NameSl, &descEn, &descSl, &category, &difficulty, &equipment, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("scan exercise: %w", err)
	}
	applyExerciseNulls(&e, descEn, descSl, category, difficulty, equipment, createdAt)
	return &e, nil
}

func applyExerciseNulls(e *models.Exercise, descEn, descSl, category, difficulty, equipment sql.NullString, createdAt string) {
	if descEn.Valid {
		e.DescriptionEn = &descEn.String
	}
	if descSl.Valid {
		e.DescriptionSl = &descSl.String
	}
	if category.Valid {
		e.Category = &category.String
	}
	if difficulty.Valid {
		e.Difficulty = &difficulty.String
	}
	if equipment.Valid {
		e.Equipment = &equipment.String
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
}
