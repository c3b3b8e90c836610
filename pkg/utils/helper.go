package utils

import (
	"strconv"
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

// ParseLimit clamps a query limit to [1, max], falling back to defaultValue
func ParseLimit(value string, defaultValue, max int) int {
	limit := ParseInt(value, defaultValue)
	if limit > max {
		return max
	}
	return limit
}
