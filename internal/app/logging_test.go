package app

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"Warning", LogLevelWarn},
		{"error", LogLevelError},
		{"", LogLevelInfo},
		{"verbose", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogLevelString(t *testing.T) {
	if LogLevelWarn.String() != "WARN" {
		t.Errorf("String() = %q, want WARN", LogLevelWarn.String())
	}
	if LogLevel(42).String() != "UNKNOWN" {
		t.Errorf("String() = %q, want UNKNOWN", LogLevel(42).String())
	}
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf, Prefix: "paintr"})

	log.WithComponent("server").WithField("status", 200).Info("served %s", "/api/state")

	line := buf.String()
	pattern := `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3} \[INFO\] paintr: served /api/state component=server status=200\n$`
	if !regexp.MustCompile(pattern).MatchString(line) {
		t.Errorf("log line = %q, want match for %s", line, pattern)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown %d", 1)
	log.Error("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if strings.Count(out, "shown") != 2 {
		t.Errorf("output = %q, want two lines", out)
	}
}

func TestLoggerSetLevelShared(t *testing.T) {
	var buf bytes.Buffer
	root := NewLogger(LoggerConfig{Level: LogLevelError, Output: &buf})
	child := root.WithComponent("history")

	child.Info("before")
	root.SetLevel(LogLevelDebug)
	child.Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Error("child logged below the original level")
	}
	if !strings.Contains(out, "after") {
		t.Error("child did not pick up the new level")
	}
	if child.Level() != LogLevelDebug {
		t.Errorf("child Level() = %v, want debug", child.Level())
	}
}

func TestLoggerWithFieldsDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	root := NewLogger(LoggerConfig{Output: &buf})
	_ = root.WithFields(map[string]any{"a": 1})

	root.Info("plain")
	if strings.Contains(buf.String(), "a=1") {
		t.Errorf("parent logger gained child fields: %q", buf.String())
	}
}

func TestNopLogger(t *testing.T) {
	log := NopLogger()
	if log.Enabled(LogLevelError) {
		t.Error("NopLogger should not be enabled at any level")
	}
	log.Error("nothing %s", "here")
}
