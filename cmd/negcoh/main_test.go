package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/garciat/negcoh/config"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		stdin    string
		cfg      func(*config.Config)
		wantCode int
		wantOut  string
	}{
		{
			name:     "stdin",
			paths:    []string{"-"},
			stdin:    "struct A; trait TA {}\nimpl<P: TA> T<P> for A {}\nimpl<P: -TA> T<P> for A {}\n",
			wantCode: exitOK,
			wantOut:  "Disjoint: \"impl<P: TA> T<P> for A {}\" and \"impl<P: -TA> T<P> for A {}\"\n",
		},
		{
			name:     "deny overlap",
			paths:    []string{"../../tests/pass_supertraits.trait"},
			cfg:      func(c *config.Config) { c.DenyOverlap = true },
			wantCode: exitOverlap,
		},
		{
			name:     "deny overlap without overlaps",
			paths:    []string{"../../examples/presentation.trait"},
			cfg:      func(c *config.Config) { c.DenyOverlap = true; c.Summary = true },
			wantCode: exitOK,
			wantOut:  "1 pairs: 0 overlap, 1 disjoint\n",
		},
		{
			name:     "yaml",
			paths:    []string{"../../tests/pass_multifile"},
			cfg:      func(c *config.Config) { c.Format = config.FormatYAML; c.Workers = 2 },
			wantCode: exitOK,
			wantOut:  "package: main\nresults:\n",
		},
		{
			name:     "error prints no verdicts",
			paths:    []string{"../../tests/pass_negation.trait", "../../tests/fail_undefined.trait"},
			wantCode: exitError,
		},
		{
			name:     "missing path",
			paths:    []string{"../../tests/nope.trait"},
			wantCode: exitError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			if tt.cfg != nil {
				tt.cfg(cfg)
			}
			var out bytes.Buffer
			code := run(context.Background(), cfg, tt.paths, strings.NewReader(tt.stdin), &out)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\n%v", code, tt.wantCode, out.String())
			}
			if tt.wantCode == exitError && out.Len() != 0 {
				t.Errorf("printed output on error: %q", out.String())
			}
			if tt.wantOut != "" && !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output %q does not contain %q", out.String(), tt.wantOut)
			}
		})
	}
}
