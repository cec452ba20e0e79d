package vendors

import (
	"strconv"
	"strings"
)

// ParseCurrency parses a user-entered currency string like "1,50,000" or
// "50,000.50" by stripping thousands separators and spaces. Malformed input
// degrades to 0 rather than failing; callers that need strict validation must
// check the raw string themselves.
func ParseCurrency(s string) float64 {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}
