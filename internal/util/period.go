package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParsePeriod parses a jiggle period. A bare integer is taken as seconds;
// anything else must be a Go duration string with a whole number of seconds.
func ParsePeriod(input string) (int, error) {
	input = strings.TrimSpace(input)
	if seconds, err := strconv.Atoi(input); err == nil {
		return seconds, nil
	}

	d, err := time.ParseDuration(input)
	if err != nil || d%time.Second != 0 {
		return 0, fmt.Errorf("Invalid period format: %q\n\nValid formats:\n"+
			"• Seconds: 30\n"+
			"• Duration: 45s, 1m", input)
	}
	return int(d / time.Second), nil
}
