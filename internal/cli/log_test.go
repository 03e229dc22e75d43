package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/meetlayout/pkg/errors"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("pass") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("pass") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("pass") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("layout computed")

	if !strings.Contains(buf.String(), "layout computed (") {
		t.Errorf("progress output %q should contain the message and elapsed time", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	got := loggerFromContext(withLogger(context.Background(), custom))
	if got != custom {
		t.Fatal("loggerFromContext should return the attached logger")
	}
	got.Info("attached")
	if buf.Len() == 0 {
		t.Error("attached logger should write to its buffer")
	}
}

func TestSetLogFormat(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)

	if err := setLogFormat(l, logFormatJSON); err != nil {
		t.Fatal(err)
	}
	l.Info("pass", "passes", 2)
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"passes":2`) {
		t.Errorf("json log = %q", buf.String())
	}

	if err := setLogFormat(l, "xml"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("setLogFormat(xml) error = %v, want INVALID_INPUT", err)
	}
}
