package common

// Coalesce picks the first value that is not T's zero value, so a declared name can win over
// a derived one. It returns the zero value when every input is zero.
//
// Parameters:
//   - values: candidates in order of preference
//
// Returns:
//   - T: the first non-zero candidate
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
