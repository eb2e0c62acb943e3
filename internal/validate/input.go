// input.go implements validation of raw duration text.

package validate

import (
	"fmt"
	"strings"
)

// Input validates a duration string and returns it with surrounding
// whitespace removed.
//
// Validation rules:
//   - Empty or whitespace-only input rejected
//   - Null bytes rejected
//   - Max length enforced if maxLen > 0 (0 means no limit)
//
// Grammar is not checked here; that is duration.Parse's job.
func Input(s string, maxLen int) (string, error) {
	if maxLen > 0 && len(s) > maxLen {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLong, len(s), maxLen)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyInput
	}
	if strings.ContainsRune(s, 0) {
		return "", fmt.Errorf("%w: null byte", ErrInvalidInput)
	}
	return s, nil
}

// Inputs validates each element of in, returning the cleaned values.
// The first failure is reported with its position.
func Inputs(in []string, maxLen int) ([]string, error) {
	out := make([]string, 0, len(in))
	for i, s := range in {
		v, err := Input(s, maxLen)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}
