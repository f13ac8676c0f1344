package utils

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

var extIcons = map[string]string{
	".go": "🐹",
	".js": "📜", ".ts": "📜", ".jsx": "📜", ".tsx": "📜",
	".py":   "🐍",
	".rb":   "💎",
	".java": "☕",
	".rs":   "🦀",
	".c":    "⚙️", ".h": "⚙️", ".cpp": "⚙️",
	".html": "🌐", ".htm": "🌐",
	".css": "🎨", ".scss": "🎨",
	".json": "📋", ".yaml": "📋", ".yml": "📋", ".toml": "📋",
	".md": "📝", ".markdown": "📝",
	".png": "🖼️", ".jpg": "🖼️", ".jpeg": "🖼️", ".gif": "🖼️", ".svg": "🖼️", ".webp": "🖼️",
	".mp4": "🎬", ".mov": "🎬", ".mkv": "🎬",
	".mp3": "🎵", ".wav": "🎵", ".flac": "🎵",
	".zip": "📦", ".tar": "📦", ".gz": "📦", ".7z": "📦",
	".pdf": "📕",
	".sh":  "🖥️", ".bash": "🖥️", ".zsh": "🖥️",
}

// Icon returns the glyph drawn on a tile.
func Icon(name string, isDir, isSymlink bool) string {
	switch {
	case isDir:
		return "📁"
	case isSymlink:
		return "🔗"
	}
	if icon, ok := extIcons[strings.ToLower(filepath.Ext(name))]; ok {
		return icon
	}
	return "📄"
}

// Fit shortens name to width terminal columns, keeping the extension
// visible where possible ("very-long-na….txt").
func Fit(name string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(name) <= width {
		return name
	}

	ext := filepath.Ext(name)
	if ext != "" && ext != name && ansi.StringWidth(ext)+2 <= width {
		stem := strings.TrimSuffix(name, ext)
		return ansi.Truncate(stem, width-ansi.StringWidth(ext), "…") + ext
	}
	return ansi.Truncate(name, width, "…")
}

// HumanSize formats bytes as "4.2 kB".
func HumanSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.Bytes(uint64(size))
}

// HumanTime formats t relative to now ("3 minutes ago").
func HumanTime(t time.Time) string {
	return humanize.Time(t)
}

// HighlightMatches renders text with base, drawing the runes at the matched
// positions in bold yellow.
func HighlightMatches(text string, matches []int, base lipgloss.Style) string {
	if len(matches) == 0 {
		return base.Render(text)
	}

	highlightStyle := base.
		Foreground(lipgloss.Color("226")).
		Bold(true)

	runes := []rune(text)
	matchMap := make(map[int]bool)
	for _, idx := range matches {
		if idx < len(runes) {
			matchMap[idx] = true
		}
	}

	var result strings.Builder
	var run []rune
	flush := func() {
		if len(run) > 0 {
			result.WriteString(base.Render(string(run)))
			run = run[:0]
		}
	}
	for i, r := range runes {
		if matchMap[i] {
			flush()
			result.WriteString(highlightStyle.Render(string(r)))
			continue
		}
		run = append(run, r)
	}
	flush()

	return result.String()
}
