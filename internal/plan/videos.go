// ABOUTME: Static exercise-name to reference-video lookup.
// ABOUTME: Exact match first, then case-insensitive substring with longest-key tie-break.
package plan

import (
	"sort"
	"strings"
)

// videoCatalog maps exercise names to reference videos. Absence of a mapping
// is not an error; unmatched names resolve to "".
var videoCatalog = map[string]string{
	// HIIT and cardio
	"Burpees":           "https://www.youtube.com/watch?v=auBLPXO8Fww",
	"Mountain climbers": "https://www.youtube.com/watch?v=nmwgirgXLYM",
	"Kettlebell swing":  "https://www.youtube.com/watch?v=YSxHifyI6s8",
	"Box jumps":         "https://www.youtube.com/watch?v=hxldG9FX4j4",
	"Battle ropes":      "https://www.youtube.com/watch?v=5gMHcKImTLg",

	// Chest and shoulders
	"Bench press":            "https://www.youtube.com/watch?v=rT7DgCr-3pg",
	"Incline bench press":    "https://www.youtube.com/watch?v=8iPEnn-ltC8",
	"Incline dumbbell press": "https://www.youtube.com/watch?v=8iPEnn-ltC8",
	"Shoulder press":         "https://www.youtube.com/watch?v=2yjwXTZQDDI",
	"Lateral raises":         "https://www.youtube.com/watch?v=3VcKaXpzqRo",
	"Dips":                   "https://www.youtube.com/watch?v=2z8JmcrW-As",

	// Arms
	"Triceps extensions": "https://www.youtube.com/watch?v=d_KZxkY_0cM",
	"Triceps work":       "https://www.youtube.com/watch?v=d_KZxkY_0cM",
	"Biceps curls":       "https://www.youtube.com/watch?v=ykJmrZ5v0Oo",
	"Hammer curls":       "https://www.youtube.com/watch?v=zC3nLlEvin4",

	// Back
	"Deadlift":          "https://www.youtube.com/watch?v=op9kVnSso6Q",
	"Romanian deadlift": "https://www.youtube.com/watch?v=2SHsk9AzdjA",
	"Barbell row":       "https://www.youtube.com/watch?v=9efgcAjQe7E",
	"Lat pulldown":      "https://www.youtube.com/watch?v=CAwf7n6Luuc",
	"Pull-ups":          "https://www.youtube.com/watch?v=eGo4IYlbE5g",

	// Legs
	"Squat":                 "https://www.youtube.com/watch?v=ultWZbUMPL8",
	"Front squat":           "https://www.youtube.com/watch?v=uYumuL_G_V0",
	"Leg press":             "https://www.youtube.com/watch?v=IZxyjW7MPJQ",
	"Leg curl":              "https://www.youtube.com/watch?v=ELOCsoDSmrg",
	"Calf raises":           "https://www.youtube.com/watch?v=gwLzBJYoWlI",
	"Bulgarian split squat": "https://www.youtube.com/watch?v=2C-uNgKwPLE",

	// Core and other
	"Plank":    "https://www.youtube.com/watch?v=ASdvN_XEl_c",
	"Push-ups": "https://www.youtube.com/watch?v=IODxDxX7oi4",

	// Cardio equipment
	"Running or cycling": "https://www.youtube.com/watch?v=brFHyOtTwH4",
	"Cardio (run/cycle)": "https://www.youtube.com/watch?v=brFHyOtTwH4",
	"Rowing machine":     "https://www.youtube.com/watch?v=zQ82RYIFLN8",
	"Jump rope":          "https://www.youtube.com/watch?v=FJmRQ5iTXKE",
	"Sprint intervals":   "https://www.youtube.com/watch?v=b5VOBF6so1I",

	// General
	"Warm-up":   "https://www.youtube.com/watch?v=8lDC4Ri9zAQ",
	"Cool-down": "https://www.youtube.com/watch?v=9TaWJLD2Z1Q",
}

// catalogKeys holds the catalog keys ordered longest-first, ties broken
// lexicographically, so substring resolution is deterministic.
var catalogKeys = func() []string {
	keys := make([]string, 0, len(videoCatalog))
	for k := range videoCatalog {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// ResolveVideoURL returns the reference video for an exercise name, or ""
// when nothing matches. Exact match wins; otherwise the longest catalog key
// that contains the name, or is contained in it, case-insensitively.
func ResolveVideoURL(exerciseName string) string {
	if url, ok := videoCatalog[exerciseName]; ok {
		return url
	}

	name := strings.ToLower(exerciseName)
	if name == "" {
		return ""
	}
	for _, key := range catalogKeys {
		lowerKey := strings.ToLower(key)
		if strings.Contains(name, lowerKey) || strings.Contains(lowerKey, name) {
			return videoCatalog[key]
		}
	}
	return ""
}
