// ABOUTME: Exercise reference data row with localized names.
// ABOUTME: Immutable after seeding; sessions reference exercises by id.
package models

import "time"

// Exercise is a reference-library entry. Names and descriptions carry both
// English and Slovenian variants like the original catalog.
type Exercise struct {
	ID            int64
	NameEn        string
	NameSl        string
	DescriptionEn *string
	DescriptionSl *string
	Category      *string
	Difficulty    *string
	Equipment     *string
	CreatedAt     time.Time
}

// Name returns the exercise name for a language code ("en" or "sl").
func (e *Exercise) Name(lang string) string {
	if lang == "sl" && e.NameSl != "" {
		return e.NameSl
	}
	return e.NameEn
}

// NewExercise creates an unpersisted reference exercise.
func NewExercise(nameEn, nameSl, category, difficulty string) *Exercise {
	return &Exercise{
		NameEn:     nameEn,
		NameSl:     nameSl,
		Category:   &category,
		Difficulty: &difficulty,
		CreatedAt:  time.Now(),
	}
}
