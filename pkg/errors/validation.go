package errors

import (
	"slices"
	"strings"
)

// MaxBenchSize is the largest n the benchmark and verifier accept. 20! is
// the last factorial that fits in a signed 64-bit integer.
const MaxBenchSize = 20

// ValidateSize rejects negative permutation sizes.
func ValidateSize(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidArgument, "size must be non-negative, got %d", n)
	}
	return nil
}

// ValidateRange validates an inclusive [from, to] range of sizes.
//
// Validation rules:
//   - from must be at least 1
//   - to must not be smaller than from
//   - to must not exceed limit
func ValidateRange(from, to, limit int) error {
	if from < 1 {
		return New(ErrCodeInvalidRange, "range start must be at least 1, got %d", from)
	}
	if to < from {
		return New(ErrCodeInvalidRange, "range end %d is before start %d", to, from)
	}
	if to > limit {
		return New(ErrCodeInvalidRange, "range end %d exceeds maximum %d", to, limit)
	}
	return nil
}

// ValidateFormat checks that format is one of valid. Matching is
// case-sensitive.
func ValidateFormat(format string, valid ...string) error {
	if slices.Contains(valid, format) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(valid, ", "))
}
