package config

import (
	"strings"
	"testing"
)

func TestParseColorMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{" Always ", ColorAlways, false},
		{"", "", true},
		{"sometimes", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseColorMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColorMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColorMode(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cfg        Config
		wantErrors int
		contains   string
	}{
		{"valid single", Config{Count: 1, Color: ColorNever}, 0, ""},
		{"valid max", Config{Count: MaxCount, Color: ColorAuto}, 0, ""},
		{"zero count", Config{Count: 0, Color: ColorNever}, 1, "--count"},
		{"negative count", Config{Count: -3, Color: ColorNever}, 1, "--count"},
		{"count above max", Config{Count: MaxCount + 1, Color: ColorNever}, 1, "--count"},
		{"bad color", Config{Count: 1, Color: "purple"}, 1, "--color"},
		{"both invalid", Config{Count: 0, Color: ""}, 2, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := tt.cfg.Validate()
			if len(errs) != tt.wantErrors {
				t.Fatalf("Validate() returned %d errors (%v); want %d", len(errs), errs, tt.wantErrors)
			}
			if tt.contains != "" && !strings.Contains(errs[0].Error(), tt.contains) {
				t.Errorf("Validate() error = %q; want it to mention %q", errs[0], tt.contains)
			}
		})
	}
}
