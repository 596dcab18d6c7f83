package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunGrid(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-set", "grid", "-points", "10"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run returned %d, stderr: %s", code, stderr.String())
	}
	// The equidistant set {1/n, ..., 1} has discrepancy exactly 1/n.
	if !strings.Contains(stdout.String(), "0.10000000") {
		t.Fatalf("unexpected discrepancy output:\n%s", stdout.String())
	}
}

func TestRunUnknownSet(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-set", "sobol"}, &stdout, &stderr); code != 2 {
		t.Fatalf("run returned %d, want 2", code)
	}
}
