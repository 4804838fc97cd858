package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Nullable applies a patch to an optional text column. A nil patch keeps
// current; an empty or blank patch clears it.
func Nullable(patch *string, current *string) *string {
	if patch == nil {
		return current
	}
	trimmed := strings.TrimSpace(*patch)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
