package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitRejectsUnknownLevel(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	if err := Init("loud", false); err == nil {
		t.Error("Init should fail for an unknown level")
	}
	if Log != prev {
		t.Error("Log should be untouched after a failed Init")
	}
}

func TestInitReplacesLogger(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	if err := Init("warn", true); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Log == prev {
		t.Error("Init should install a new logger")
	}
	if Log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug should be disabled at warn level")
	}
}
