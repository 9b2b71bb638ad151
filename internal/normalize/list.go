package normalize

import (
	"strings"

	"github.com/healthtrend/backend/internal/domain"
)

func isListDelimiter(r rune) bool {
	switch r {
	case ',', ';', '\r', '\n', '•', '●', '▪', '◦', '‣':
		return true
	}
	return false
}

// ParseList turns nil, a string slice, or a delimited string into a list of
// trimmed, non-empty strings. Duplicates are kept.
func ParseList(v any) []string {
	out := []string{}
	switch x := v.(type) {
	case nil:
	case string:
		for _, part := range strings.FieldsFunc(x, isListDelimiter) {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	case []string:
		for _, item := range x {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	case []any:
		for _, item := range x {
			if s := String(item); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Dedupe drops repeated entries, comparing case-insensitively and keeping the
// first spelling.
func Dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// Conditions returns the profile's medical conditions as a list.
func Conditions(profile *domain.UserProfile) []string {
	if profile == nil {
		return []string{}
	}
	return append([]string{}, profile.MedicalConditions...)
}

// MedicationNames merges structured medication names with the profile's
// free-text medications.
func MedicationNames(entries []domain.MedicationEntry, profile *domain.UserProfile) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name := strings.TrimSpace(e.Name); name != "" {
			names = append(names, name)
		}
	}
	if profile != nil {
		names = append(names, profile.Medications...)
	}
	return Dedupe(names)
}
