// Package cadnum validates cadastral numbers and converts them into the
// registry lookup key.
package cadnum

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// groupCount is the number of colon-separated groups in a cadastral number.
const groupCount = 4

var (
	// ErrNotCadastralNumber is returned when the input does not have the
	// AA:BB:CCCCCC[C]:D+ shape.
	ErrNotCadastralNumber = errors.New("not a cadastral number")

	// ErrNotNumeric is returned when a key group is not a decimal integer.
	ErrNotNumeric = errors.New("cadastral number group is not numeric")
)

var pattern = regexp.MustCompile(`^[0-9]{2}:[0-9]{2}:[0-9]{6,7}:[0-9]+$`)

// Valid reports whether s is a well-formed cadastral number.
func Valid(s string) bool {
	return pattern.MatchString(s)
}

// Normalize validates s and returns its canonical lookup key,
// e.g. "01:02:003456:7" becomes "1:2:3456:7".
func Normalize(s string) (string, error) {
	if !Valid(s) {
		return "", fmt.Errorf("%w: %q", ErrNotCadastralNumber, s)
	}
	return Canonicalize(s)
}

// Canonicalize parses every group as an integer and joins them back with
// colons. Leading zeros are dropped and never restored, so the result is a
// lookup key rather than a display form. Canonicalize is idempotent.
func Canonicalize(s string) (string, error) {
	groups := strings.Split(s, ":")
	if len(groups) != groupCount {
		return "", fmt.Errorf("%w: expected %d groups, got %d", ErrNotCadastralNumber, groupCount, len(groups))
	}

	canonical := make([]string, 0, groupCount)
	for _, group := range groups {
		if !isDigits(group) {
			return "", fmt.Errorf("%w: %q", ErrNotNumeric, group)
		}
		n, err := strconv.ParseInt(group, 10, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrNotNumeric, group, err)
		}
		canonical = append(canonical, strconv.FormatInt(n, 10))
	}
	return strings.Join(canonical, ":"), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
