package validation_test

import (
	"testing"

	"github.com/tdat2209/Read-Track-Backend/internal/validation"
)

func TestValidateBookPayload_Valid(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"all fields", map[string]interface{}{"title": "Dune", "author": "Frank Herbert", "totalPages": float64(412)}},
		{"author absent", map[string]interface{}{"title": "Dune", "totalPages": float64(412)}},
		{"author null", map[string]interface{}{"title": "Dune", "author": nil, "totalPages": float64(412)}},
		{"title needs trimming", map[string]interface{}{"title": "  Dune  ", "totalPages": float64(1)}},
		{"totalPages as int", map[string]interface{}{"title": "Dune", "totalPages": 412}},
		{"totalPages at the cap", map[string]interface{}{"title": "Dune", "totalPages": float64(1<<31 - 1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := validation.ValidateBookPayload(tc.payload)
			if !result.Valid {
				t.Fatalf("expected valid, got %q", result.Message)
			}
		})
	}
}

func TestValidateBookPayload_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]interface{}
		message string
	}{
		{"nil payload", nil, "Invalid payload"},
		{"unexpected field", map[string]interface{}{"title": "Dune", "totalPages": float64(10), "isbn": "123"}, "Unexpected fields in payload"},
		{"missing title", map[string]interface{}{"totalPages": float64(10)}, "title is required and must be a non-empty string"},
		{"empty title", map[string]interface{}{"title": "   ", "totalPages": float64(10)}, "title is required and must be a non-empty string"},
		{"non-string title", map[string]interface{}{"title": float64(42), "totalPages": float64(10)}, "title is required and must be a non-empty string"},
		{"missing totalPages", map[string]interface{}{"title": "Dune"}, "totalPages is required and must be a positive integer"},
		{"zero totalPages", map[string]interface{}{"title": "Dune", "totalPages": float64(0)}, "totalPages is required and must be a positive integer"},
		{"negative totalPages", map[string]interface{}{"title": "Dune", "totalPages": float64(-5)}, "totalPages is required and must be a positive integer"},
		{"fractional totalPages", map[string]interface{}{"title": "Dune", "totalPages": 99.5}, "totalPages is required and must be a positive integer"},
		{"string totalPages", map[string]interface{}{"title": "Dune", "totalPages": "412"}, "totalPages is required and must be a positive integer"},
		{"totalPages overflows int", map[string]interface{}{"title": "Dune", "totalPages": 1e300}, "totalPages is required and must be a positive integer"},
		{"totalPages just past the cap", map[string]interface{}{"title": "Dune", "totalPages": float64(1 << 31)}, "totalPages is required and must be a positive integer"},
		{"non-string author", map[string]interface{}{"title": "Dune", "author": float64(7), "totalPages": float64(10)}, "author must be a string if provided"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := validation.ValidateBookPayload(tc.payload)
			if result.Valid {
				t.Fatal("expected invalid")
			}
			if result.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, result.Message)
			}
		})
	}
}

func TestValidateLogPayload(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]interface{}
		valid   bool
	}{
		{"valid", map[string]interface{}{"date": "2024-01-15", "pagesRead": float64(20)}, true},
		{"leap day", map[string]interface{}{"date": "2024-02-29", "pagesRead": float64(20)}, true},
		{"impossible day", map[string]interface{}{"date": "2024-02-30", "pagesRead": float64(20)}, false},
		{"non-leap february 29", map[string]interface{}{"date": "2023-02-29", "pagesRead": float64(20)}, false},
		{"bad shape", map[string]interface{}{"date": "15-01-2024", "pagesRead": float64(20)}, false},
		{"missing date", map[string]interface{}{"pagesRead": float64(20)}, false},
		{"unexpected field", map[string]interface{}{"date": "2024-01-15", "pagesRead": float64(20), "note": "x"}, false},
		{"zero pages", map[string]interface{}{"date": "2024-01-15", "pagesRead": float64(0)}, false},
		{"fractional pages", map[string]interface{}{"date": "2024-01-15", "pagesRead": 3.5}, false},
		{"pages overflow int", map[string]interface{}{"date": "2024-01-15", "pagesRead": 1e300}, false},
		{"nil payload", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := validation.ValidateLogPayload(tc.payload)
			if result.Valid != tc.valid {
				t.Fatalf("expected valid=%v, got %v (%s)", tc.valid, result.Valid, result.Message)
			}
		})
	}
}

func TestIsCalendarDate(t *testing.T) {
	valid := []string{"2024-02-29", "2000-01-01", "1999-12-31"}
	for _, date := range valid {
		if !validation.IsCalendarDate(date) {
			t.Errorf("expected %s to be a valid calendar date", date)
		}
	}

	invalid := []string{"2024-02-30", "2024-13-01", "2024-00-10", "2024-1-1", "20240101", "not-a-date", ""}
	for _, date := range invalid {
		if validation.IsCalendarDate(date) {
			t.Errorf("expected %s to be rejected", date)
		}
	}
}
