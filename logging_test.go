package main

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{level: "error"},
		{level: "WARN", wantWarn: true},
		{level: "info", wantInfo: true, wantWarn: true},
		{level: "", wantInfo: true, wantWarn: true},
		{level: "DEBUG", wantDebug: true, wantInfo: true, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			l := NewLogger(tt.level)

			l.Debugf("build %d output", 7)
			l.Infof("build %d started", 7)
			l.Warnf("stderr: %s", "deprecated")
			l.Errorf("build %d failed", 7)
			out := buf.String()

			if got := strings.Contains(out, "build 7 output"); got != tt.wantDebug {
				t.Errorf("debug shown = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(out, "build 7 started"); got != tt.wantInfo {
				t.Errorf("info shown = %v, want %v", got, tt.wantInfo)
			}
			if got := strings.Contains(out, "stderr: deprecated"); got != tt.wantWarn {
				t.Errorf("warn shown = %v, want %v", got, tt.wantWarn)
			}
			if !strings.Contains(out, "build 7 failed") {
				t.Error("errors should always be shown")
			}
		})
	}
}
