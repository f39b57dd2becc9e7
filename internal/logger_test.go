package internal

import "testing"

func TestSetVerbose(t *testing.T) {
	t.Cleanup(func() { SetLogLevel(LogLevelInfo) })

	SetVerbose(true)
	if logLevel != LogLevelDebug {
		t.Errorf("verbose level = %v, want debug", logLevel)
	}

	SetVerbose(false)
	if logLevel != LogLevelInfo {
		t.Errorf("non-verbose level = %v, want info", logLevel)
	}
}

func TestLogLevelFiltering(t *testing.T) {
	t.Cleanup(func() { SetLogLevel(LogLevelInfo) })

	// These must not panic at any level; output goes to stderr.
	for _, level := range []LogLevel{LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelDebug} {
		SetLogLevel(level)
		LogError("error at %v", level)
		LogWarn("warn at %v", level)
		LogInfo("info at %v", level)
		LogDebug("debug at %v", level)
	}
}
