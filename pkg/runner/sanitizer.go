package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/transducer/pkg/domain"
)

var (
	// DefaultMaxInputSize bounds a single textual input (4KB).
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize overrides DefaultMaxInputSize.
	EnvMaxInputSize = "TRANSDUCER_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// SanitizeInput rejects oversized or malformed text and strips control
// characters other than tab, newline and carriage return.
func SanitizeInput(input string) (string, error) {
	// 1. Size
	if limit := maxInputSize(); len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}

	// 2. Encoding
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	// 3. Control characters
	if strings.IndexFunc(input, unsafeControl) < 0 {
		return input, nil
	}
	return strings.Map(func(r rune) rune {
		if unsafeControl(r) {
			return -1
		}
		return r
	}, input), nil
}

// ParseInput sanitizes raw text and parses it as a Value.
func ParseInput(raw string) (domain.Value, error) {
	clean, err := SanitizeInput(raw)
	if err != nil {
		return domain.Undefined, err
	}
	return domain.ParseValue(strings.TrimSpace(clean))
}

// ParseInputs parses every element of raw, reporting the position of the first bad one.
func ParseInputs(raw []string) ([]domain.Value, error) {
	values := make([]domain.Value, 0, len(raw))
	for i, s := range raw {
		v, err := ParseInput(s)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func unsafeControl(r rune) bool {
	return unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r'
}

func maxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
