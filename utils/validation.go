// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ParseFeatures turns a comma-separated input string into the stored
// feature list: each segment trimmed, empty segments discarded, order
// preserved.
func ParseFeatures(input string) []string {
	features := []string{}
	for _, segment := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			features = append(features, trimmed)
		}
	}
	return features
}
