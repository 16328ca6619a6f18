package ui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/javiermolinar/foldcal/internal/agenda"
	"github.com/javiermolinar/foldcal/internal/config"
	"github.com/javiermolinar/foldcal/internal/db"
)

var testNow = time.Date(2024, time.January, 17, 10, 0, 0, 0, time.UTC) // Wednesday

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	DisableColor()
	t.Cleanup(func() { color.NoColor = prev })
}

func newTestApp(t *testing.T) (*App, *db.SQLite) {
	t.Helper()
	noColor(t)

	repo, err := db.New(filepath.Join(t.TempDir(), "foldcal.db"))
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	cfg := config.Default()
	cfg.Calendar.Location = "UTC"
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "unused.db")

	a := NewApp(repo, cfg)
	a.now = func() time.Time { return testNow }
	return a, repo
}

func run(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a.root.SetOut(&out)
	a.root.SetErr(&out)
	a.SetArgs(args)
	err := a.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	a, _ := newTestApp(t)
	out, err := run(t, a, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "foldcal dev") {
		t.Errorf("version output = %q", out)
	}
}

func TestAddAndList(t *testing.T) {
	a, _ := newTestApp(t)

	out, err := run(t, a, "add", "2024-01-17", "Release", "review")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "Added #1: Release review on Wed Jan 17 2024") {
		t.Errorf("add output = %q", out)
	}

	if _, err := run(t, a, "add", "tomorrow", "Dentist"); err != nil {
		t.Fatalf("add tomorrow: %v", err)
	}
	if _, err := run(t, a, "add", "2024-02-01", "Next month"); err != nil {
		t.Fatalf("add february: %v", err)
	}

	out, err = run(t, a, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"January 2024", "=== Wed Jan 17 ===", "#1 Release review", "=== Thu Jan 18 ===", "#2 Dentist"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Next month") {
		t.Errorf("list should only show January:\n%s", out)
	}

	out, err = run(t, a, "list", "next")
	if err != nil {
		t.Fatalf("list next: %v", err)
	}
	if !strings.Contains(out, "#3 Next month") {
		t.Errorf("list next output = %q", out)
	}
}

func TestListEmpty(t *testing.T) {
	a, _ := newTestApp(t)
	out, err := run(t, a, "list", "2023-06")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "No entries in June 2023.") {
		t.Errorf("list output = %q", out)
	}
}

func TestAddErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad date", []string{"add", "17/01/2024", "Dentist"}},
		{"blank title", []string{"add", "today", "  "}},
		{"missing title", []string{"add", "today"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp(t)
			if _, err := run(t, a, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRemove(t *testing.T) {
	a, _ := newTestApp(t)
	if _, err := run(t, a, "add", "today", "Standup"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := run(t, a, "remove", "1")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !strings.Contains(out, "Removed entry #1") {
		t.Errorf("remove output = %q", out)
	}

	_, err = run(t, a, "rm", "1")
	if !errors.Is(err, agenda.ErrEntryNotFound) {
		t.Errorf("second remove error = %v, want ErrEntryNotFound", err)
	}

	if _, err := run(t, a, "remove", "abc"); err == nil {
		t.Error("expected error for non-numeric id")
	}
}

func TestMonthCommand(t *testing.T) {
	a, _ := newTestApp(t)
	if _, err := run(t, a, "add", "2024-01-03", "Kickoff"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := run(t, a, "month", "2024-01")
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.Contains(lines[0], "January 2024") {
		t.Errorf("title = %q", lines[0])
	}
	if got := strings.Fields(lines[1]); strings.Join(got, " ") != "Mon Tue Wed Thu Fri Sat Sun" {
		t.Errorf("weekday header = %v", got)
	}
	if got := strings.Fields(lines[2]); len(got) != 7 || got[0] != "01" || got[2] != "03•" {
		t.Errorf("first week = %v", got)
	}
	if got := strings.Fields(lines[6]); len(got) != 7 || got[0] != "29" || got[6] != "04" {
		t.Errorf("last week = %v", got)
	}
	if !strings.Contains(out, "1 day with entries") {
		t.Errorf("expected entry summary:\n%s", out)
	}
}

func TestMonthCommandSundayFirst(t *testing.T) {
	a, _ := newTestApp(t)
	a.config.Calendar.FirstWeekday = "sunday"

	out, err := run(t, a, "month", "2024-09")
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if got := strings.Fields(lines[1]); got[0] != "Sun" {
		t.Errorf("weekday header = %v", got)
	}
	// September 2024 starts on a Sunday: no leading days, five rows
	if got := strings.Fields(lines[2]); got[0] != "01" {
		t.Errorf("first week = %v", got)
	}
	if len(lines) != 7 {
		t.Errorf("lines = %d, want 7:\n%s", len(lines), out)
	}
}

func TestMonthInvalid(t *testing.T) {
	a, _ := newTestApp(t)
	if _, err := run(t, a, "month", "2024-13"); err == nil {
		t.Error("expected error for invalid month")
	}
}

func TestMonthCellWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{10, 4},
		{32, 4},
		{40, 5},
		{80, 6},
		{200, 6},
	}
	for _, tt := range tests {
		if got := monthCellWidth(tt.width); got != tt.want {
			t.Errorf("monthCellWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foldcal", "config.toml")
	var out bytes.Buffer

	if err := runConfigInteractive(path, strings.NewReader("n\n"), &out); err != nil {
		t.Fatalf("runConfigInteractive: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if !strings.Contains(out.String(), "first_weekday = monday") {
		t.Errorf("config output = %q", out.String())
	}
}

func TestConfigEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	input := strings.Join([]string{
		"y",
		"funday", // rejected
		"sunday",
		"UTC",
		"",
		"latte",
		"2",
	}, "\n") + "\n"

	var out bytes.Buffer
	if err := runConfigInteractive(path, strings.NewReader(input), &out); err != nil {
		t.Fatalf("runConfigInteractive: %v", err)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Calendar.FirstWeekday != "sunday" || cfg.Calendar.Location != "UTC" {
		t.Errorf("calendar = %+v", cfg.Calendar)
	}
	if cfg.UI.Theme != "latte" || cfg.UI.RowLines != 2 {
		t.Errorf("ui = %+v", cfg.UI)
	}
	if !strings.Contains(out.String(), `Invalid weekday "funday"`) {
		t.Errorf("expected weekday rejection in output")
	}
}
