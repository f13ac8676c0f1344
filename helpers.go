package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/tiles/internal/logger"
)

// Helper functions

type tickMsg time.Time

type fileOpenResultMsg struct {
	path string
	err  error
}

// tickCmd schedules the next background re-list.
func (m *model) tickCmd() tea.Cmd {
	interval := time.Duration(m.config.RefreshInterval) * time.Millisecond
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) openFile(path string) tea.Cmd {
	opener := m.opener
	return func() tea.Msg {
		err := opener.Open(path)
		if err != nil {
			logger.Warn("open %s failed: %v", path, err)
		}
		return fileOpenResultMsg{path: path, err: err}
	}
}

func (m *model) copyPath(path string) {
	// Use clipboard library for cross-platform support
	err := clipboard.WriteAll(path)
	if err == nil {
		m.setStatus(fmt.Sprintf("Copied: %s", path), false)
	} else {
		m.setStatus(fmt.Sprintf("Failed to copy: %v", err), true)
	}
}

// plural formats a count with its noun.
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// describeTargets names a single target or counts several.
func describeTargets(paths []string) string {
	if len(paths) == 1 {
		return filepath.Base(paths[0])
	}
	return plural(len(paths), "item")
}
