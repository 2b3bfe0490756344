package api

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  hello  ", "hello"},
		{"strips angle brackets", "<script>alert(1)</script>", "scriptalert(1)/script"},
		{"plain text untouched", "Buy milk", "Buy milk"},
		{"only brackets", "<>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeText(tt.input); got != tt.want {
				t.Errorf("sanitizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateCreateBody(t *testing.T) {
	t.Run("valid minimal body", func(t *testing.T) {
		req, details := validateCreateBody(&CreateTaskBody{Title: "Buy milk"})
		if details != nil {
			t.Fatalf("unexpected details: %v", details)
		}
		if req.Title != "Buy milk" || req.Description != "" || req.Priority != "" {
			t.Errorf("unexpected request: %+v", req)
		}
	})

	t.Run("sanitizes title and description", func(t *testing.T) {
		req, details := validateCreateBody(&CreateTaskBody{
			Title:       "  <b>Buy milk</b>  ",
			Description: strPtr(" <i>soon</i> "),
		})
		if details != nil {
			t.Fatalf("unexpected details: %v", details)
		}
		if req.Title != "bBuy milk/b" {
			t.Errorf("title not sanitized: %q", req.Title)
		}
		if req.Description != "isoon/i" {
			t.Errorf("description not sanitized: %q", req.Description)
		}
	})

	t.Run("whitespace-only title is missing", func(t *testing.T) {
		_, details := validateCreateBody(&CreateTaskBody{Title: "   "})
		if len(details) != 1 || !strings.Contains(details[0], "title is required") {
			t.Errorf("expected missing-title detail, got %v", details)
		}
	})

	t.Run("overlong fields", func(t *testing.T) {
		_, details := validateCreateBody(&CreateTaskBody{
			Title:       strings.Repeat("a", 201),
			Description: strPtr(strings.Repeat("b", 1001)),
		})
		if len(details) != 2 {
			t.Fatalf("expected 2 details, got %v", details)
		}
	})

	t.Run("boundary lengths pass", func(t *testing.T) {
		_, details := validateCreateBody(&CreateTaskBody{
			Title:       strings.Repeat("a", 200),
			Description: strPtr(strings.Repeat("b", 1000)),
		})
		if details != nil {
			t.Errorf("unexpected details: %v", details)
		}
	})

	t.Run("all violations are collected, not short-circuited", func(t *testing.T) {
		_, details := validateCreateBody(&CreateTaskBody{
			Description: strPtr("x"),
			Priority:    strPtr("bogus"),
		})
		if len(details) != 2 {
			t.Fatalf("expected 2 details, got %v", details)
		}
		joined := strings.Join(details, "; ")
		if !strings.Contains(joined, "title is required") {
			t.Errorf("missing-title rule not reported: %v", details)
		}
		if !strings.Contains(joined, "priority must be one of") {
			t.Errorf("invalid-priority rule not reported: %v", details)
		}
	})
}

func TestValidateTaskID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid generated format", "task_1700000000000_abc123xyz", false},
		{"uppercase suffix rejected", "task_1700000000000_ABC123XYZ", true},
		{"missing prefix", "1700000000000_abc123xyz", true},
		{"missing random segment", "task_1700000000000_", true},
		{"arbitrary string", "not-a-task-id", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := validateTaskID(tt.id)
			if gotErr := details != nil; gotErr != tt.wantErr {
				t.Errorf("validateTaskID(%q) details = %v, wantErr %v", tt.id, details, tt.wantErr)
			}
		})
	}
}

func TestDecodeStatus(t *testing.T) {
	tests := []struct {
		name          string
		value         any
		wantCompleted bool
		wantErr       bool
	}{
		{"boolean true", true, true, false},
		{"boolean false", false, false, false},
		{"string completed", "completed", true, false},
		{"string pending", "pending", false, false},
		{"unknown string", "done", false, true},
		{"number", float64(1), false, true},
		{"missing", nil, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completed, details := decodeStatus(tt.value)
			if gotErr := details != nil; gotErr != tt.wantErr {
				t.Fatalf("decodeStatus(%v) details = %v, wantErr %v", tt.value, details, tt.wantErr)
			}
			if !tt.wantErr && completed != tt.wantCompleted {
				t.Errorf("decodeStatus(%v) = %v, want %v", tt.value, completed, tt.wantCompleted)
			}
		})
	}
}

func TestValidateListQuery(t *testing.T) {
	t.Run("empty filters pass", func(t *testing.T) {
		if details := validateListQuery("", "", ""); details != nil {
			t.Errorf("unexpected details: %v", details)
		}
	})

	t.Run("valid filters pass", func(t *testing.T) {
		if details := validateListQuery("completed", "high", "title"); details != nil {
			t.Errorf("unexpected details: %v", details)
		}
	})

	t.Run("all violations reported together", func(t *testing.T) {
		details := validateListQuery("archived", "urgent", "updatedAt")
		if len(details) != 3 {
			t.Errorf("expected 3 details, got %v", details)
		}
	})
}
