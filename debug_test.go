package dvdsaver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/phanxgames/dvdsaver/bounce"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := debugOut
	debugOut = &buf
	t.Cleanup(func() { debugOut = prev })
	return &buf
}

func TestDebugLogsBounce(t *testing.T) {
	buf := captureDebug(t)
	s := newTestScene()
	s.SetDebugMode(true)

	for i := 0; i < 170; i++ {
		_ = s.Update()
	}
	out := buf.String()
	if !strings.Contains(out, "[dvdsaver] frame 15") || !strings.Contains(out, ": bounce y at (") {
		t.Errorf("missing bounce line in:\n%s", out)
	}
	if !strings.Contains(out, ", 250.0) color #") {
		t.Errorf("missing bounce line in:\n%s", out)
	}
}

func TestDebugSilentWhenDisabled(t *testing.T) {
	buf := captureDebug(t)
	s := newTestScene()
	for i := 0; i < 200; i++ {
		_ = s.Update()
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected debug output:\n%s", buf.String())
	}
}

func TestDebugStatsInterval(t *testing.T) {
	buf := captureDebug(t)
	s := newTestScene()
	s.SetDebugMode(true)
	for i := 0; i < debugStatsInterval; i++ {
		_ = s.Update()
	}
	if !strings.Contains(buf.String(), "[dvdsaver] frames: 600 |") {
		t.Errorf("missing stats line in:\n%s", buf.String())
	}
	if s.stats.frames != 0 {
		t.Errorf("stats not reset: %+v", s.stats)
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   bounce.Color
		want string
	}{
		{bounce.Color{R: 1}, "#ff0000"},
		{bounce.Color{}, "#000000"},
		{bounce.Color{R: 1, G: 1, B: 1}, "#ffffff"},
	}
	for _, tt := range tests {
		if got := hexColor(tt.in); got != tt.want {
			t.Errorf("hexColor(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
