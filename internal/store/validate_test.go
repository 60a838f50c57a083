package store

import (
	"strings"
	"testing"
)

func TestValidateAcceptsWellFormedFile(t *testing.T) {
	data := []byte(`[
  {"id": 1, "title": "Buy milk", "priority": "Low", "category": "Home", "completed": false},
  {"id": 2, "title": "Write report", "priority": "High", "category": "Work", "completed": true}
]`)

	result := Validate(data)
	if !result.Valid {
		t.Errorf("expected valid result, got errors: %v", result.Errors)
	}
}

func TestValidateAcceptsEmptyArray(t *testing.T) {
	result := Validate([]byte("[]"))
	if !result.Valid {
		t.Errorf("expected valid result, got errors: %v", result.Errors)
	}
}

func TestValidateRejectsInvalidJSON(t *testing.T) {
	result := Validate([]byte("{not json"))
	if result.Valid {
		t.Error("expected invalid result")
	}
	if len(result.Errors) == 0 {
		t.Fatal("expected at least one error")
	}
	if !strings.Contains(result.Errors[0].Error(), "invalid JSON") {
		t.Errorf("error should mention invalid JSON, got %v", result.Errors[0])
	}
}

func TestValidateRejectsNonArray(t *testing.T) {
	result := Validate([]byte(`{"id": 1, "title": "x"}`))
	if result.Valid {
		t.Error("expected invalid result for a non-array document")
	}
}

func TestValidateRejectsMissingTitle(t *testing.T) {
	result := Validate([]byte(`[{"id": 1, "completed": false}]`))
	if result.Valid {
		t.Error("expected invalid result for a task without a title")
	}
}

func TestValidateRejectsBadPriority(t *testing.T) {
	result := Validate([]byte(`[{"id": 1, "title": "x", "priority": "Urgent"}]`))
	if result.Valid {
		t.Error("expected invalid result for an unknown priority")
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	data := []byte(`[
  {"id": 1, "title": "a"},
  {"id": 1, "title": "b"}
]`)

	result := Validate(data)
	if result.Valid {
		t.Error("expected invalid result for duplicate ids")
	}

	found := false
	for _, err := range result.Errors {
		if strings.Contains(err.Error(), "duplicate id 1") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a duplicate-id error, got %v", result.Errors)
	}
}
