package logger

import (
	"bytes"
	"os"
	"testing"
)

func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer resetLogger()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("fetched page %d", 2)

	if got := buf.String(); got != "[DEBUG] fetched page 2\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("quiet")

	if buf.Len() > 0 {
		t.Error("expected no output when verbose is disabled")
	}
}

func TestInfoWarnSection(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("info %d", 42)
	Warn("warn")
	Section("Pass")

	want := "[INFO] info 42\n[WARN] warn\n\n=== Pass ===\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected output: %q", got)
	}
}
