package utils

import (
	"strconv"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

func GenerateUUIDString() string {
	return uuid.New().String()
}

// IsValidUUID reports whether s parses as a UUID. Used for path-param id checks.
func IsValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Round2 rounds a monetary or statistical value to 2 decimal places.
func Round2(v float64) float64 {
	parsed, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return parsed
}
