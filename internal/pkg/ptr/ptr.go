package ptr

import "strings"

func To[T any](v T) *T {
	return &v
}

// NonEmpty trims s and returns nil when nothing is left.
func NonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
