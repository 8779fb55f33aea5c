package cmd

import (
	"errors"
	"strings"
	"testing"
)

func TestCalcRun(t *testing.T) {
	tests := []struct {
		program []string
		output  string
		want    string
	}{
		{[]string{`rel("now/d")`, "-", `rel("now-1d/d")`}, OutputText, "24h0m0s\n"},
		{[]string{`fmtDate(rel("now-1M/M"), "YYYY-MM")`}, OutputText, "2025-11\n"},
		{[]string{`startOf(rel("now"), "w")`}, OutputText, "2025-11-30T00:00:00.000Z\n"},
		{[]string{`valid("now-1q")`}, OutputText, "false\n"},
		{[]string{`rel("now+1h")`}, OutputYAML, "2025-12-01T13:00:00.000Z"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.program, " "), func(t *testing.T) {
			ctx, out := testContext(t)

			c := Calc{Program: tt.program, Output: tt.output}
			if err := c.Run(ctx); err != nil {
				t.Fatalf("Run: %v", err)
			}

			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestCalcRun_Error(t *testing.T) {
	ctx, _ := testContext(t)

	c := Calc{Program: []string{`rel("yesterday")`}, Output: OutputText}
	if err := c.Run(ctx); !errors.Is(err, ErrCalc) {
		t.Errorf("error = %v, want ErrCalc", err)
	}
}
