package tui

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func plainProfile(t *testing.T) {
	t.Helper()
	prevProfile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prevProfile)
	})
}

func TestViewFillsTerminal(t *testing.T) {
	plainProfile(t)
	m := newTestModel(t, nil)

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if len(lines) != 30 {
		t.Fatalf("view lines = %d, want 30", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 80 {
			t.Errorf("line %d width = %d, want 80", i, w)
		}
	}
	if !strings.Contains(lines[0], "J  A  N  U  A  R  Y 2024") {
		t.Errorf("title line = %q", lines[0])
	}
	if !strings.Contains(lines[2], "Mon") || !strings.Contains(lines[2], "Sun") {
		t.Errorf("weekday line = %q", lines[2])
	}
	if !strings.Contains(lines[9], "Mon 01") {
		t.Errorf("first agenda card = %q", lines[9])
	}
	if !strings.Contains(lines[29], "q quit") {
		t.Errorf("footer = %q", lines[29])
	}
}

func TestViewCollapsed(t *testing.T) {
	plainProfile(t)
	m := newTestModel(t, nil)
	m, _ = press(t, m, runeKey("J"), runeKey("J"), runeKey("J"), runeKey("J"))

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if len(lines) != 30 {
		t.Fatalf("view lines = %d, want 30", len(lines))
	}
	if !strings.Contains(lines[0], "JANUARY     2024") {
		t.Errorf("collapsed title = %q", lines[0])
	}
	row := strings.Fields(lines[3])
	if len(row) != 7 || row[0] != "15" || row[6] != "21" {
		t.Errorf("collapsed grid row = %v", row)
	}
	if !strings.Contains(lines[4], "─") {
		t.Errorf("separator expected under the single row, got %q", lines[4])
	}
	if !strings.Contains(lines[5], "Mon 01") {
		t.Errorf("first agenda card = %q", lines[5])
	}
}

func TestViewPrompt(t *testing.T) {
	plainProfile(t)
	m := newTestModel(t, &fakeRepo{})
	m, _ = press(t, m, runeKey("a"), runeKey("Gym"))

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	footer := lines[len(lines)-1]
	if !strings.Contains(footer, "Wed Jan 17") || !strings.Contains(footer, "Gym") {
		t.Errorf("prompt footer = %q", footer)
	}
}

func TestDebugLogger(t *testing.T) {
	prev := debugLog
	t.Cleanup(func() { debugLog = prev })

	path := filepath.Join(t.TempDir(), "debug.log")
	if err := initDebugLoggerAt(true, path); err != nil {
		t.Fatalf("initDebugLoggerAt: %v", err)
	}
	LogSelection(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC))
	LogScroll(2, 73, 0.5)
	CloseDebugLogger()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer func() { _ = f.Close() }()

	var events []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", scanner.Text(), err)
		}
		events = append(events, entry["event"].(string))
		if entry["event"] == "SELECTION" && entry["date"] != "2024-01-17" {
			t.Errorf("selection date = %v", entry["date"])
		}
	}
	want := []string{"DEBUG_START", "SELECTION", "SCROLL", "DEBUG_END"}
	if strings.Join(events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", events, want)
	}
}

func TestDebugLoggerDisabled(t *testing.T) {
	prev := debugLog
	t.Cleanup(func() { debugLog = prev })

	if err := InitDebugLogger(false); err != nil {
		t.Fatalf("InitDebugLogger: %v", err)
	}
	LogScroll(1, 2, 0.5)
	CloseDebugLogger()
	if _, err := os.Stat(DebugLogPath); err == nil {
		t.Error("disabled logger should not create a log file")
	}
}
