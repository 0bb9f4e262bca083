package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown warn")
	l.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low-level messages leaked:\n%s", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("expected warn and error lines:\n%s", out)
	}
}

func TestWithComponentTag(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelDebug)
	root.SetOutput(&buf)

	root.With("catalog").Info("loaded %d stars", 64)

	out := buf.String()
	if !strings.Contains(out, "catalog: loaded 64 stars") {
		t.Errorf("missing component tag:\n%s", out)
	}
}

func TestWithSharesSink(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelInfo)
	child := root.With("ui")
	child.SetOutput(&buf)
	root.SetLevel(LevelError)

	child.Info("hidden after root level change")
	if buf.Len() != 0 {
		t.Errorf("derived logger did not share level: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("goes nowhere")
}
