package util

import (
	"os"
	"testing"
)

func TestHasCommand(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		expected bool
	}{
		{
			name:     "running test binary",
			command:  os.Args[0],
			expected: true,
		},
		{
			name:     "nonexistent command",
			command:  "jiggler-command-that-does-not-exist-12345",
			expected: false,
		},
		{
			name:     "empty string",
			command:  "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCommand(tt.command); got != tt.expected {
				t.Errorf("HasCommand(%q) = %v, want %v", tt.command, got, tt.expected)
			}
		})
	}
}
