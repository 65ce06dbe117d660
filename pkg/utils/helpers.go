package utils

import (
	"strconv"
	"time"
)

// ParseDuration safely parses duration strings like "5m"
func ParseDuration(d string) time.Duration {
	if d == "" {
		return 5 * time.Minute
	}
	duration, err := time.ParseDuration(d)
	if err != nil {
		return 5 * time.Minute
	}
	return duration
}

// ParseIntInRange parses s as an int clamped to [min, max]; fallback is
// returned for empty or unparsable input.
func ParseIntInRange(s string, fallback, min, max int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
