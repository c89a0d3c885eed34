package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	l.Debugf("hidden %v", 1)
	l.Infof("shown %v", 2)
	l.Warnf("shown %v", 3)
	l.Errorf("shown %v", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug written at info level")
	}
	for _, s := range []string{"INFO: shown 2", "WARN: shown 3", "ERROR: shown 4"} {
		if !strings.Contains(out, s) {
			t.Errorf("missing %q in %q", s, out)
		}
	}
}

func TestLevelFromString(t *testing.T) {
	for _, level := range []Level{LevelDebug, LevelInfo, LevelError, LevelNone} {
		if LevelFromString(strings.ToLower(level.String())) != level {
			t.Errorf("%v did not round trip", level)
		}
	}
	if LevelFromString("loud") != LevelInfo {
		t.Error("unknown levels should fall back to info")
	}
}
