package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, ParseDuration("30s"))
	assert.Equal(t, 2*time.Hour, ParseDuration("2h"))
	assert.Equal(t, 5*time.Minute, ParseDuration(""))
	assert.Equal(t, 5*time.Minute, ParseDuration("not-a-duration"))
}

func TestParseIntInRange(t *testing.T) {
	assert.Equal(t, 15000, ParseIntInRange("", 15000, 100, 50000))
	assert.Equal(t, 15000, ParseIntInRange("abc", 15000, 100, 50000))
	assert.Equal(t, 2500, ParseIntInRange("2500", 15000, 100, 50000))
	assert.Equal(t, 100, ParseIntInRange("5", 15000, 100, 50000))
	assert.Equal(t, 50000, ParseIntInRange("999999", 15000, 100, 50000))
}
