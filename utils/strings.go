package utils

import (
	"regexp"
	"strings"
)

// NormalizeStatus lowercases and trims a status value for comparison.
// Upstream consoles write statuses in mixed case ("Lost", "LOST").
func NormalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// FormatRoomNumbers joins room numbers for display on invoices
func FormatRoomNumbers(numbers []string) string {
	return strings.Join(numbers, ", ")
}

// CleanFileName removes invalid characters from filename
func CleanFileName(filename string) string {
	// Replace invalid characters with underscore
	reg := regexp.MustCompile(`[<>:"/\\|?*]`)
	cleaned := reg.ReplaceAllString(filename, "_")

	// Remove extra spaces and trim
	cleaned = strings.TrimSpace(cleaned)
	cleaned = regexp.MustCompile(`\s+`).ReplaceAllString(cleaned, "_")

	return cleaned
}
