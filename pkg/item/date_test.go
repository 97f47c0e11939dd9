package item

import (
	"strings"
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		errorMsg    string
	}{
		{
			name:  "valid date",
			input: "2024-05-14",
		},
		{
			name:  "leap day in leap year",
			input: "2024-02-29",
		},
		{
			name:  "century leap year",
			input: "2000-02-29",
		},
		{
			name:        "leap day in non-leap year",
			input:       "2023-02-29",
			expectError: true,
			errorMsg:    "invalid date",
		},
		{
			name:        "century non-leap year",
			input:       "1900-02-29",
			expectError: true,
			errorMsg:    "invalid date",
		},
		{
			name:        "month out of range",
			input:       "2024-13-01",
			expectError: true,
			errorMsg:    "invalid date",
		},
		{
			name:        "day out of range",
			input:       "2024-04-31",
			expectError: true,
			errorMsg:    "invalid date",
		},
		{
			name:        "wrong separator",
			input:       "2024/05/14",
			expectError: true,
			errorMsg:    "invalid date",
		},
		{
			name:        "missing zero padding",
			input:       "2024-5-14",
			expectError: true,
			errorMsg:    "invalid date",
		},
		{
			name:        "trailing garbage",
			input:       "2024-05-14x",
			expectError: true,
			errorMsg:    "invalid date",
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
			errorMsg:    "invalid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error but got none")
				} else if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errorMsg, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.String() != tt.input {
				t.Errorf("canonical form mismatch: got %q, want %q", d.String(), tt.input)
			}
			if d.IsZero() {
				t.Error("parsed date should not be zero")
			}
		})
	}
}

func TestDateOrdering(t *testing.T) {
	earlier := MustDate("2023-12-31")
	later := MustDate("2024-01-01")

	if !earlier.Before(later) {
		t.Error("2023-12-31 should sort before 2024-01-01")
	}
	if later.Before(earlier) {
		t.Error("2024-01-01 should not sort before 2023-12-31")
	}

	// Lexicographic order of the canonical form is chronological order.
	if !(earlier.String() < later.String()) {
		t.Error("canonical strings should compare chronologically")
	}
}

func TestDateZeroValue(t *testing.T) {
	var d Date
	if !d.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if d.String() != "" {
		t.Errorf("zero value String should be empty, got %q", d.String())
	}
}
