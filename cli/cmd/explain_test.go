package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestExplainRun_Text(t *testing.T) {
	ctx, out := testContext(t)

	e := Explain{Expr: "now-1d/d", Output: OutputText}
	if err := e.Run(ctx); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"OPERATION", "now", "-1d", "/d", "day",
		"2025-12-01T12:00:00.000Z",
		"2025-11-30T12:00:00.000Z",
		"2025-11-30T00:00:00.000Z",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, out.String())
		}
	}
}

func TestExplainRun_JSON(t *testing.T) {
	ctx, out := testContext(t)

	e := Explain{Expr: "now+1w/w", Output: OutputJSON}
	if err := e.Run(ctx); err != nil {
		t.Fatal(err)
	}

	var steps []struct {
		Value     string `json:"value"`
		Operation string `json:"operation"`
	}

	if err := json.Unmarshal(out.Bytes(), &steps); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}

	want := []struct{ op, value string }{
		{"now", "2025-12-01T12:00:00.000Z"},
		{"+1w", "2025-12-08T12:00:00.000Z"},
		{"/w", "2025-12-07T00:00:00.000Z"},
	}

	if len(steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(steps), len(want))
	}

	for i, w := range want {
		if steps[i].Operation != w.op || steps[i].Value != w.value {
			t.Errorf("step %d = %+v, want %+v", i, steps[i], w)
		}
	}
}

func TestExplainRun_Error(t *testing.T) {
	ctx, out := testContext(t)

	e := Explain{Expr: "now/2d", Output: OutputText}
	if err := e.Run(ctx); !errors.Is(err, ErrInvalidExpression) {
		t.Errorf("error = %v, want ErrInvalidExpression", err)
	}

	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}
