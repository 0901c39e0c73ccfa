package util

import (
	"strings"
	"testing"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  int
		wantError bool
	}{
		// Integer seconds
		{
			name:     "integer seconds - 30",
			input:    "30",
			expected: 30,
		},
		{
			name:     "integer seconds - 0",
			input:    "0",
			expected: 0,
		},
		{
			name:     "integer seconds - surrounding spaces",
			input:    " 5 ",
			expected: 5,
		},

		// Duration strings
		{
			name:     "duration string - seconds",
			input:    "45s",
			expected: 45,
		},
		{
			name:     "duration string - minute",
			input:    "1m",
			expected: 60,
		},
		{
			name:     "duration string - minutes and seconds",
			input:    "1m30s",
			expected: 90,
		},

		// Error cases
		{
			name:      "invalid format - letters",
			input:     "abc",
			wantError: true,
		},
		{
			name:      "invalid format - fractional seconds",
			input:     "1500ms",
			wantError: true,
		},
		{
			name:      "empty string",
			input:     "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.input)

			if tt.wantError {
				if err == nil {
					t.Errorf("ParsePeriod(%q) expected error but got none", tt.input)
				}
				if err != nil && !strings.Contains(err.Error(), "Valid formats") {
					t.Errorf("ParsePeriod(%q) error should contain format help, got: %v", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Errorf("ParsePeriod(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.expected {
				t.Errorf("ParsePeriod(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}
