// ABOUTME: User and user-profile CRUD for SQLite storage.
// ABOUTME: Save inserts on zero id and updates otherwise, like every entity save.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/holdonapp/holdon/internal/models"
)

// SaveUser inserts the user when its ID is zero, assigning the new id into
// the struct, and updates the existing row otherwise.
func (d *DB) SaveUser(u *models.User) error {
	if u.ID == 0 {
		res, err := d.db.Exec(`
			INSERT INTO users (username, email, password_hash, preferred_language, created_at, last_login)
			VALUES (?, ?, ?, ?, ?, ?)`,
			u.Username, u.Email, u.PasswordHash, u.PreferredLanguage,
			u.CreatedAt.Format(time.RFC3339), nullTime(u.LastLogin),
		)
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		u.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	}

	_, err := d.db.Exec(`
		UPDATE users SET username = ?, email = ?, password_hash = ?, preferred_language = ?, last_login = ?
		WHERE user_id = ?`,
		u.Username, u.Email, u.PasswordHash, u.PreferredLanguage, nullTime(u.LastLogin), u.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by id.
func (d *DB) GetUser(id int64) (*models.User, error) {
	row := d.db.QueryRow(`
		SELECT user_id, username, email, password_hash, preferred_language, created_at, last_login
		FROM users WHERE user_id = ?`, id)
	return scanUser(row)
}

// GetUserByEmail retrieves a user by its unique email.
func (d *DB) GetUserByEmail(email string) (*models.User, error) {
	row := d.db.QueryRow(`
		SELECT user_id, username, email, password_hash, preferred_language, created_at, last_login
		FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// SaveUserProfile upserts the settings row for profile.UserID. The profile
// table is keyed one-row-per-user, so dispatch is by existing row rather
// than by id presence.
func (d *DB) SaveUserProfile(p *models.UserProfile) error {
	p.UpdatedAt = time.Now()

	existing, err := d.GetUserProfile(p.UserID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	if existing == nil {
		res, err := d.db.Exec(`
			INSERT INTO user_profiles
				(user_id, age, gender, weight_kg, height_cm, fitness_goal, experience_level, equipment, days_per_week, active_plan_id, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.UserID, p.Age, p.Gender, p.WeightKg, p.HeightCm,
			string(p.FitnessGoal), string(p.ExperienceLevel), string(p.Equipment),
			p.DaysPerWeek, p.ActivePlanID, p.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert user profile: %w", err)
		}
		p.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert user profile: %w", err)
		}
		return nil
	}

	p.ID = existing.ID
	_, err = d.db.Exec(`
		UPDATE user_profiles SET age = ?, gender = ?, weight_kg = ?, height_cm = ?,
			fitness_goal = ?, experience_level = ?, equipment = ?, days_per_week = ?,
			active_plan_id = ?, updated_at = ?
		WHERE user_id = ?`,
		p.Age, p.Gender, p.WeightKg, p.HeightCm,
		string(p.FitnessGoal), string(p.ExperienceLevel), string(p.Equipment),
		p.DaysPerWeek, p.ActivePlanID, p.UpdatedAt.Format(time.RFC3339), p.UserID,
	)
	if err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}
	return nil
}

// GetUserProfile retrieves the settings row for a user.
func (d *DB) GetUserProfile(userID int64) (*models.UserProfile, error) {
	row := d.db.QueryRow(`
		SELECT profile_id, user_id, age, gender, weight_kg, height_cm,
			fitness_goal, experience_level, equipment, days_per_week, active_plan_id, updated_at
		FROM user_profiles WHERE user_id = ?`, userID)

	var p models.UserProfile
	var age sql.NullInt64
	var gender, goal, level, equipment, planID sql.NullString
	var weight, height sql.NullFloat64
	var days sql.NullInt64
	var updatedAt string

	err := row.Scan(&p.ID, &p.UserID, &age, &gender, &weight, &height,
		&goal, &level, &equipment, &days, &planID, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user profile: %w", err)
	}

	if age.Valid {
		a := int(age.Int64)
		p.Age = &a
	}
	if gender.Valid {
		p.Gender = &gender.String
	}
	if weight.Valid {
		p.WeightKg = &weight.Float64
	}
	if height.Valid {
		p.HeightCm = &height.Float64
	}
	p.FitnessGoal = models.Goal(goal.String)
	p.ExperienceLevel = models.Level(level.String)
	p.Equipment = models.Equipment(equipment.String)
	p.DaysPerWeek = int(days.Int64)
	if planID.Valid {
		p.ActivePlanID = &planID.String
	}
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &p, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var createdAt string
	var lastLogin sql.NullString

	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.PreferredLanguage, &createdAt, &lastLogin)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if lastLogin.Valid {
		t, _ := time.Parse(time.RFC3339, lastLogin.String)
		u.LastLogin = &t
	}
	return &u, nil
}

func nullTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}
