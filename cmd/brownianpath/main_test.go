package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-paths", "500", "-steps", "20"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run returned %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Variance at horizon") {
		t.Fatalf("missing statistics in output:\n%s", stdout.String())
	}
}

func TestRunWithPlot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "paths.png")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-paths", "100", "-steps", "20", "-plot-paths", "3", "-out", out}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run returned %d, stderr: %s", code, stderr.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("Stat: %v", err)
	}
}
