package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DebugLogger logs TUI state, keystrokes, and events to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "foldcal-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	return initDebugLoggerAt(enabled, DebugLogPath)
}

func initDebugLoggerAt(enabled bool, logPath string) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": logPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
		debugLog.file = nil
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key": msg.String(),
	})
}

// LogMouse logs a mouse event that changed state.
func LogMouse(msg tea.MouseMsg, action string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("MOUSE", map[string]any{
		"x":      msg.X,
		"y":      msg.Y,
		"button": msg.String(),
		"action": action,
	})
}

// LogScroll logs the scroll offset and the header progress it produced.
func LogScroll(scroll, maxScroll int, progress float64) {
	if !debugEnabled() {
		return
	}
	debugLog.log("SCROLL", map[string]any{
		"scroll":     scroll,
		"max_scroll": maxScroll,
		"progress":   progress,
	})
}

// LogSelection logs the selected month and date.
func LogSelection(month, date time.Time) {
	if !debugEnabled() {
		return
	}
	debugLog.log("SELECTION", map[string]any{
		"month": month.Format("2006-01"),
		"date":  date.Format("2006-01-02"),
	})
}

// LogMonthChange logs a grid rebuild for a new month.
func LogMonthChange(from, to time.Time, cells int) {
	if !debugEnabled() {
		return
	}
	debugLog.log("MONTH_CHANGE", map[string]any{
		"from":  from.Format("2006-01"),
		"to":    to.Format("2006-01"),
		"cells": cells,
	})
}

// LogMonthLoaded logs the arrival of agenda entries.
func LogMonthLoaded(month time.Time, entries int, stale bool) {
	if !debugEnabled() {
		return
	}
	debugLog.log("MONTH_LOADED", map[string]any{
		"month":   month.Format("2006-01"),
		"entries": entries,
		"stale":   stale,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("MODE_CHANGE", map[string]any{
		"from":   modeString(from),
		"to":     modeString(to),
		"reason": reason,
	})
}
