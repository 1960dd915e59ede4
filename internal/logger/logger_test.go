package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", "text", &buf)

	log.Info("should be dropped")
	log.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Errorf("info record leaked through warn level: %s", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("warn record missing: %s", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "json", &buf)

	log.Info("hello", "key", "value")

	out := buf.String()
	if !strings.HasPrefix(out, "{") {
		t.Errorf("expected JSON output, got %s", out)
	}
	if !strings.Contains(out, `"key":"value"`) {
		t.Errorf("attribute missing from JSON output: %s", out)
	}
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("loud", "text", &buf)

	log.Debug("debug dropped")
	log.Info("info kept")

	out := buf.String()
	if strings.Contains(out, "debug dropped") {
		t.Errorf("debug record leaked through default info level: %s", out)
	}
	if !strings.Contains(out, "info kept") {
		t.Errorf("info record missing: %s", out)
	}
}
