package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureLogs(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetSink(&buf)
	SetLevel(level)
	t.Cleanup(func() {
		SetSink(os.Stdout)
		SetLevel(Notice)
	})
	return &buf
}

func TestSetLevel_FiltersMessages(t *testing.T) {
	buf := captureLogs(t, Notice)
	logger := New("test")

	logger.Debugf("debug %d", 1)
	logger.Infof("info %d", 2)
	logger.Noticef("notice %d", 3)
	logger.Errorf("error %d", 4)

	out := buf.String()
	for _, hidden := range []string{"debug 1", "info 2"} {
		if strings.Contains(out, hidden) {
			t.Errorf("Expected %q to be filtered at Notice level:\n%s", hidden, out)
		}
	}
	for _, shown := range []string{"notice 3", "error 4", "[test]"} {
		if !strings.Contains(out, shown) {
			t.Errorf("Expected %q in output:\n%s", shown, out)
		}
	}
}

func TestSetLevel_Debug(t *testing.T) {
	buf := captureLogs(t, Debug)
	New("test").Debug("bvh built")

	if !strings.Contains(buf.String(), "bvh built") {
		t.Errorf("Expected debug output, got:\n%s", buf.String())
	}
}

func TestPrintf_RoutesByPrefix(t *testing.T) {
	buf := captureLogs(t, Info)
	logger := Printf("renderer")

	logger.Printf("Rendering %dx%d\n", 20, 10)
	logger.Printf("Warning: %d pixels averaged to a non-finite color\n", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines without blank lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "INFO") || !strings.Contains(lines[0], "Rendering 20x10") {
		t.Errorf("Unexpected info line %q", lines[0])
	}
	if !strings.Contains(lines[1], "WARNING") || !strings.Contains(lines[1], "3 pixels averaged") {
		t.Errorf("Unexpected warning line %q", lines[1])
	}
	if strings.Contains(lines[1], "Warning: ") {
		t.Errorf("Expected the prefix to be replaced by the level, got %q", lines[1])
	}
}

func TestPrintf_DefaultLevelShowsOnlyWarnings(t *testing.T) {
	buf := captureLogs(t, Notice)
	logger := Printf("renderer")

	logger.Printf("Rendering %dx%d\n", 20, 10)
	logger.Printf("Warning: %d pixels averaged to a non-finite color\n", 1)

	out := buf.String()
	if strings.Contains(out, "Rendering 20x10") {
		t.Errorf("Expected render progress to need -v, got:\n%s", out)
	}
	if !strings.Contains(out, "1 pixels averaged") {
		t.Errorf("Expected the warning at the default level, got:\n%s", out)
	}
}
