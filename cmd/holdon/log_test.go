// ABOUTME: Tests for the log command's exercise argument parser.
// ABOUTME: Format is "Name:REPSxWEIGHT,REPSxWEIGHT" with kg weights.
package main

import "testing"

func TestParseExerciseArg(t *testing.T) {
	name, sets, err := parseExerciseArg("Bench press:5x80,5x85,3x90.5")
	if err != nil {
		t.Fatalf("parseExerciseArg: %v", err)
	}
	if name != "Bench press" {
		t.Errorf("name = %q", name)
	}
	if len(sets) != 3 {
		t.Fatalf("got %d sets, want 3", len(sets))
	}
	if sets[0].Reps != 5 || sets[0].WeightKg != 80 {
		t.Errorf("set 1 = %+v", sets[0])
	}
	if sets[2].Reps != 3 || sets[2].WeightKg != 90.5 {
		t.Errorf("set 3 = %+v", sets[2])
	}
}

func TestParseExerciseArgBodyweight(t *testing.T) {
	_, sets, err := parseExerciseArg("Pull-up:8x0")
	if err != nil {
		t.Fatalf("parseExerciseArg: %v", err)
	}
	if sets[0].WeightKg != 0 {
		t.Errorf("bodyweight set weight = %.1f", sets[0].WeightKg)
	}
}

func TestParseExerciseArgUppercaseSeparator(t *testing.T) {
	_, sets, err := parseExerciseArg("Squat:5X100")
	if err != nil {
		t.Fatalf("parseExerciseArg: %v", err)
	}
	if sets[0].Reps != 5 || sets[0].WeightKg != 100 {
		t.Errorf("set = %+v", sets[0])
	}
}

func TestParseExerciseArgWhitespace(t *testing.T) {
	name, sets, err := parseExerciseArg(" Leg press : 10x180 , 8x200 ")
	if err != nil {
		t.Fatalf("parseExerciseArg: %v", err)
	}
	if name != "Leg press" {
		t.Errorf("name = %q", name)
	}
	if len(sets) != 2 || sets[1].WeightKg != 200 {
		t.Errorf("sets = %+v", sets)
	}
}

func TestParseExerciseArgErrors(t *testing.T) {
	bad := []string{
		"",
		"Bench press",
		"Bench press:",
		":5x80",
		"Bench press:5",
		"Bench press:x80",
		"Bench press:5x",
		"Bench press:0x80",
		"Bench press:-5x80",
		"Bench press:5x-10",
		"Bench press:fivex80",
	}
	for _, arg := range bad {
		if _, _, err := parseExerciseArg(arg); err == nil {
			t.Errorf("parseExerciseArg(%q) succeeded, want error", arg)
		}
	}
}
