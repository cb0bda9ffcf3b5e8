// ABOUTME: Export and import of the full store as JSON or YAML snapshots.
// ABOUTME: Import preserves relative references by remapping assigned ids.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/holdonapp/holdon/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData is the full snapshot format.
type ExportData struct {
	Version    string                   `json:"version" yaml:"version"`
	ExportedAt time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool       string                   `json:"tool" yaml:"tool"`
	Exercises  []*models.Exercise       `json:"exercises" yaml:"exercises"`
	Sessions   []*SessionExport         `json:"sessions" yaml:"sessions"`
	Records    []*models.PersonalRecord `json:"records" yaml:"records"`
}

// SessionExport bundles a session with its sets.
type SessionExport struct {
	Session *models.WorkoutSession `json:"session" yaml:"session"`
	Sets    []*models.WorkoutSet   `json:"sets" yaml:"sets"`
}

// GetAllData retrieves a user's full data for export.
func (d *DB) GetAllData(userID int64) (*ExportData, error) {
	exercises, err := d.ListExercises(nil)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	sessions, err := d.ListUserSessions(userID, 0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var sessionExports []*SessionExport
	for _, s := range sessions {
		sets, err := d.ListSessionSets(s.ID)
		if err != nil {
			return nil, fmt.Errorf("list session sets: %w", err)
		}
		sessionExports = append(sessionExports, &SessionExport{Session: s, Sets: sets})
	}

	records, err := d.ListUserRecords(userID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "holdon",
		Exercises:  exercises,
		Sessions:   sessionExports,
		Records:    records,
	}, nil
}

// ImportData loads a snapshot into the store. Rows are re-inserted with fresh
// ids; set and record session references follow the remapped session ids.
func (d *DB) ImportData(data *ExportData) error {
	exerciseIDs := make(map[int64]int64)
	for _, e := range data.Exercises {
		oldID := e.ID
		e.ID = 0
		if err := d.SaveExercise(e); err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
		exerciseIDs[oldID] = e.ID
	}

	sessionIDs := make(map[int64]int64)
	for _, se := range data.Sessions {
		oldID := se.Session.ID
		se.Session.ID = 0
		for _, set := range se.Sets {
			set.ID = 0
			if newID, ok := exerciseIDs[set.ExerciseID]; ok {
				set.ExerciseID = newID
			}
		}
		if err := d.SaveSessionWithSets(se.Session, se.Sets); err != nil {
			return fmt.Errorf("import session: %w", err)
		}
		sessionIDs[oldID] = se.Session.ID
	}

	for _, r := range data.Records {
		r.ID = 0
		if newID, ok := sessionIDs[r.SessionID]; ok {
			r.SessionID = newID
		}
		if newID, ok := exerciseIDs[r.ExerciseID]; ok {
			r.ExerciseID = newID
		}
		if err := d.InsertPersonalRecord(r); err != nil {
			return fmt.Errorf("import record: %w", err)
		}
	}

	return nil
}

// ExportJSON exports a user's data as indented JSON.
func (d *DB) ExportJSON(userID int64) ([]byte, error) {
	data, err := d.GetAllData(userID)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports a user's data as YAML.
func (d *DB) ExportYAML(userID int64) ([]byte, error) {
	data, err := d.GetAllData(userID)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}
