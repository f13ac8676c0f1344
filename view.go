package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/LFroesch/tiles/internal/grid"
	"github.com/LFroesch/tiles/internal/selection"
	"github.com/LFroesch/tiles/internal/utils"
)

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var mainContent string
	if m.mode == modeHelp {
		mainContent = m.renderHelpView()
	} else {
		mainContent = m.renderGrid()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderInfoLine(),
		mainContent,
		m.renderStatusBar(),
		m.renderHelpLine(),
	)
}

func (m *model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(m.width)

	activeNav := lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("235"))
	idleNav := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("235"))

	back, forward := idleNav.Render("◀"), idleNav.Render("▶")
	if !m.paths.Current().IsRoot() {
		back = activeNav.Render("◀")
	}
	if m.paths.CanForward() {
		forward = activeNav.Render("▶")
	}

	var branch string
	if m.gitInfo.InRepo() && m.gitInfo.Branch != "" {
		branchStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("235"))
		branch = branchStyle.Render(" " + m.gitInfo.Branch)
	}

	prefix := "🧱 Tiles " + back + forward + " "
	room := m.width - 2 - lipgloss.Width(prefix) - lipgloss.Width(branch) - 1
	path := truncateLeft(m.paths.Current().String(), room)

	title := prefix + path
	padding := m.width - 2 - lipgloss.Width(title) - lipgloss.Width(branch)
	if padding < 1 {
		padding = 1
	}
	return titleStyle.Render(title + strings.Repeat(" ", padding) + branch)
}

func (m *model) renderInfoLine() string {
	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(m.width)

	var parts []string
	if n := len(m.visible); n > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", m.cursor+1, n))
	}
	if len(m.visible) != len(m.entries) {
		parts = append(parts, fmt.Sprintf("%d hidden by filter", len(m.entries)-len(m.visible)))
	}
	if n := len(m.visibleMarks()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d marked", n))
	}
	if m.listOpts.ShowHidden {
		parts = append(parts, "dotfiles shown")
	}
	rightSide := strings.Join(parts, " · ")

	leftWidth := m.width - 2 - lipgloss.Width(rightSide) - 1
	left := ansi.Truncate(m.focusInfo, max(leftWidth, 0), "…")
	padding := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(rightSide)
	if padding < 1 {
		padding = 1
	}
	return infoStyle.Render(left + strings.Repeat(" ", padding) + rightSide)
}

// renderGrid draws the visible rows of tiles, exactly gridHeight lines.
func (m *model) renderGrid() string {
	height := m.gridHeight()

	if len(m.visible) == 0 {
		msg := "Empty directory"
		switch {
		case m.listErr != nil:
			msg = "⚠️ " + m.listErr.Error()
		case len(m.entries) > 0:
			msg = "No matches"
		}
		emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			emptyStyle.Render(ansi.Truncate(msg, m.width-4, "…")))
	}

	layout := m.layout()
	cols := layout.Columns()
	n := len(m.visible)
	rows := layout.Rows(n)
	hl := m.highlights()

	cellW, rowH := m.config.CellWidth, m.config.RowHeight
	tileW := max(cellW-m.config.Spacing, 1)
	tileH := max(rowH-m.config.Spacing, 1)
	gutter := strings.Repeat(" ", max(cellW-tileW, 0))
	margin := strings.Repeat(" ", gridLeft)

	lines := make([]string, 0, height)
	for row := m.scrollRow; row < rows && len(lines) < height; row++ {
		tiles := make([][]string, cols)
		for col := 0; col < cols; col++ {
			i := layout.Index(grid.Position{Row: row, Col: col})
			if i < n {
				tiles[col] = m.renderTile(i, hl[i], tileW, tileH)
			}
		}

		for y := 0; y < rowH && len(lines) < height; y++ {
			if y >= tileH {
				lines = append(lines, "")
				continue
			}
			var b strings.Builder
			b.WriteString(margin)
			for col := 0; col < cols; col++ {
				if tiles[col] == nil {
					break
				}
				b.WriteString(tiles[col][y])
				b.WriteString(gutter)
			}
			lines = append(lines, b.String())
		}
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// renderTile returns the tileH lines of one tile, each tileW columns wide.
func (m *model) renderTile(i int, h selection.Highlight, tileW, tileH int) []string {
	e := m.visible[i]
	marked := m.marked[e.Path]

	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("235"))
	switch {
	case i == m.cursor:
		base = base.Foreground(lipgloss.Color("255")).Background(lipgloss.Color("99")).Bold(true)
	case h == selection.Selected:
		base = base.Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62"))
	case marked:
		base = base.Foreground(lipgloss.Color("255")).Background(lipgloss.Color("57"))
	case h == selection.Hovered:
		base = base.Background(lipgloss.Color("238"))
	}

	nameStyle := base
	if e.IsSymlink && i != m.cursor {
		nameStyle = nameStyle.Foreground(lipgloss.Color("51"))
	}
	if e.IsDir && i != m.cursor {
		nameStyle = nameStyle.Bold(true)
	}

	icon := utils.Icon(e.Name, e.IsDir, e.IsSymlink)
	if marked {
		icon = base.Render("✓ ") + base.Render(icon)
	} else {
		icon = base.Render(icon)
	}
	if m.gitInfo.IsModified(e.Path, e.IsDir) {
		icon += base.Foreground(lipgloss.Color("214")).Render(" ●")
	}

	nameWidth := tileW - 2
	if tileH == 1 {
		nameWidth = tileW - lipgloss.Width(icon) - 2
	}
	fitted := utils.Fit(e.Name, max(nameWidth, 1))
	var name string
	if fitted == e.Name && i < len(m.matches) {
		name = utils.HighlightMatches(e.Name, m.matches[i].MatchedIndexes, nameStyle)
	} else {
		name = nameStyle.Render(fitted)
	}

	var content []string
	if tileH == 1 {
		content = []string{icon + base.Render(" ") + name}
	} else {
		content = []string{icon, name}
	}

	lineStyle := base.Width(tileW).MaxWidth(tileW).Align(lipgloss.Center)
	top := (tileH - len(content)) / 2
	lines := make([]string, tileH)
	for y := range lines {
		c := y - top
		if c >= 0 && c < len(content) {
			lines[y] = lineStyle.Render(content[c])
		} else {
			lines[y] = lineStyle.Render("")
		}
	}
	return lines
}

func (m *model) renderStatusBar() string {
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("240")).
		Padding(0, 1).
		Width(m.width)

	switch m.mode {
	case modePath, modeRename:
		return statusStyle.Render(m.textInput.View())
	case modeFilter:
		return statusStyle.Render(m.filterInput.View())
	case modeConfirmDelete:
		confirmStyle := statusStyle.
			Background(lipgloss.Color("160")).
			Bold(true)
		return confirmStyle.Render(fmt.Sprintf("Delete %s? This cannot be undone. (y/n)", describeTargets(m.pendingDelete)))
	}

	statusText := m.statusMsg
	if m.statusMsg != "" && m.statusIsErr {
		statusStyle = statusStyle.Foreground(lipgloss.Color("203"))
	}
	if statusText == "" && m.filterInput.Value() != "" {
		statusText = fmt.Sprintf("Filter: %s (esc to clear)", m.filterInput.Value())
	}

	rightSide := "? for help"
	room := m.width - 2 - lipgloss.Width(rightSide) - 1
	statusText = ansi.Truncate(statusText, max(room, 0), "…")
	padding := m.width - 2 - lipgloss.Width(statusText) - lipgloss.Width(rightSide)
	if padding < 1 {
		padding = 1
	}
	return statusStyle.Render(statusText + strings.Repeat(" ", padding) + rightSide)
}

func (m *model) renderHelpLine() string {
	return lipgloss.NewStyle().Padding(0, 1).Render(m.help.View(m.keys))
}

func (m *model) renderHelpView() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Keys"),
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		"Mouse: drag to mark · double-click to open · right-click to delete · wheel to scroll",
	)
	return lipgloss.Place(m.width, m.gridHeight(), lipgloss.Center, lipgloss.Center, content)
}

// truncateLeft keeps the tail of s within width columns, since the end of
// a path is the part worth seeing.
func truncateLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for i := range runes {
		tail := string(runes[i:])
		if ansi.StringWidth(tail)+1 <= width {
			return "…" + tail
		}
	}
	return "…"
}
