package logger

import "strings"

// Field-edit logging must not leak bank details: account and routing
// numbers are masked down to their last 4 characters before they reach a
// log line.
var sensitiveFields = []string{
	"account_number",
	"routing_number",
}

// IsSensitiveField reports whether a field name carries bank details.
func IsSensitiveField(field string) bool {
	field = strings.ToLower(strings.TrimSpace(field))
	for _, needle := range sensitiveFields {
		if strings.Contains(field, needle) {
			return true
		}
	}
	return false
}

// MaskFieldValue masks the value of a sensitive field, preserving only the
// last 4 characters. Non-sensitive fields pass through untouched.
func MaskFieldValue(field, value string) string {
	if !IsSensitiveField(field) {
		return value
	}
	return maskLast4(value)
}

func maskLast4(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return "****" + value
	}
	return "****" + value[len(value)-4:]
}
