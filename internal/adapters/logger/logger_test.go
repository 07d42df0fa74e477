package logger_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"go.trai.ch/forge/internal/adapters/logger"
)

func capture(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	lg, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("New() did not return a *logger.Logger")
	}
	var buf bytes.Buffer
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := capture(t)
	lg.Info("derivation started")

	out := buf.String()
	if !strings.Contains(out, "derivation started") {
		t.Errorf("expected output to contain the message, got: %s", out)
	}
	if !strings.Contains(out, "INFO") {
		t.Errorf("expected output to contain 'INFO', got: %s", out)
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := capture(t)
	lg.Warn("platform has no lex tool")

	out := buf.String()
	if !strings.Contains(out, "platform has no lex tool") {
		t.Errorf("expected output to contain the message, got: %s", out)
	}
	if !strings.Contains(out, "WARN") {
		t.Errorf("expected output to contain 'WARN', got: %s", out)
	}
}

func TestLogger_Error(t *testing.T) {
	lg, buf := capture(t)
	lg.Error(os.ErrPermission)

	out := buf.String()
	if !strings.Contains(out, "permission denied") {
		t.Errorf("expected output to contain the error, got: %s", out)
	}
	if !strings.Contains(out, "ERROR") {
		t.Errorf("expected output to contain 'ERROR', got: %s", out)
	}
}
