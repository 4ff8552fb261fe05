// Package config holds the settings of a greet run and the injectable
// dependencies used to redirect its output.
package config

import (
	"fmt"
	"strings"
)

// MaxCount caps how many greetings a single run may print.
const MaxCount = 1000

// ColorMode controls whether the greeting is coloured.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode converts a flag value into a ColorMode. Matching is case-insensitive.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (must be auto, always or never)", s)
	}
}

type Config struct {
	Count   int
	Color   ColorMode
	Verbose bool
}

func (c *Config) Validate() []error {
	var errors []error

	if c.Count < 1 || c.Count > MaxCount {
		errors = append(errors, fmt.Errorf("'--count' must be in [1, %d]", MaxCount))
	}

	if _, err := ParseColorMode(string(c.Color)); err != nil {
		errors = append(errors, fmt.Errorf("'--color': %s", err))
	}

	return errors
}
