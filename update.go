package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/tiles/internal/fileops"
	"github.com/LFroesch/tiles/internal/git"
	"github.com/LFroesch/tiles/internal/listing"
	"github.com/LFroesch/tiles/internal/logger"
	"github.com/LFroesch/tiles/internal/selection"
)

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("Tiles"),
		m.tickCmd(),
	)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear expired status messages
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Enforce minimum dimensions for small terminals
		m.width = max(msg.Width, minTerminalWidth)
		m.height = max(msg.Height, minTerminalHeight)
		m.help.Width = m.width
		m.clampCursor()
		return m, nil

	case tickMsg:
		// Pick up external changes; skip while a dialog holds entry paths
		if m.mode != modeRename && m.mode != modeConfirmDelete {
			m.refresh()
		}
		return m, m.tickCmd()

	case fileOpenResultMsg:
		if msg.err != nil {
			m.setStatus(fileops.FormatError(msg.err, msg.path, "open").Error(), true)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		model, cmd := m.handleKey(msg)
		if m.mode != modeNormal {
			m.cancelDrag()
		}
		return model, cmd
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modePath:
		return m.handlePathKey(msg)
	case modeRename:
		return m.handleRenameKey(msg)
	case modeFilter:
		return m.handleFilterKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	case modeHelp:
		if key.Matches(msg, m.keys.Help, m.keys.Clear, m.keys.Quit) {
			m.mode = modeNormal
		}
		return m, nil
	default:
		return m.handleNormalKey(msg)
	}
}

// cancelDrag drops the press origin without committing a selection.
func (m *model) cancelDrag() {
	m.buttonDown = false
	m.pressOrigin = nil
}

func (m *model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	layout := m.layout()
	n := len(m.visible)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp

	case key.Matches(msg, m.keys.Up):
		m.cursor = layout.Move(m.cursor, 0, -1, n)
		m.clampCursor()
	case key.Matches(msg, m.keys.Down):
		m.cursor = layout.Move(m.cursor, 0, 1, n)
		m.clampCursor()
	case key.Matches(msg, m.keys.Left):
		m.cursor = layout.Move(m.cursor, -1, 0, n)
		m.clampCursor()
	case key.Matches(msg, m.keys.Right):
		m.cursor = layout.Move(m.cursor, 1, 0, n)
		m.clampCursor()

	case key.Matches(msg, m.keys.Open):
		if e, ok := m.focused(); ok {
			return m, m.openEntry(e)
		}

	case key.Matches(msg, m.keys.Back):
		m.navigate(m.paths.Back)
	case key.Matches(msg, m.keys.Forward):
		m.navigate(m.paths.Forward)

	case key.Matches(msg, m.keys.EditPath):
		m.mode = modePath
		m.textInput.Prompt = "Go to: "
		m.textInput.Placeholder = "/path/to/dir or ~/dir"
		m.textInput.SetValue(m.paths.Current().String())
		m.textInput.CursorEnd()
		return m, m.textInput.Focus()

	case key.Matches(msg, m.keys.Rename):
		e, ok := m.focused()
		if !ok {
			return m, nil
		}
		m.mode = modeRename
		m.renameTarget = e
		m.textInput.Prompt = "Rename to: "
		m.textInput.Placeholder = ""
		m.textInput.SetValue(e.Name)
		m.textInput.CursorEnd()
		return m, m.textInput.Focus()

	case key.Matches(msg, m.keys.Delete):
		m.startDelete(m.targets())

	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.Mark):
		if e, ok := m.focused(); ok {
			if m.marked[e.Path] {
				delete(m.marked, e.Path)
			} else {
				m.marked[e.Path] = true
			}
			m.cursor = layout.Move(m.cursor, 1, 0, n)
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.MarkAll):
		for _, e := range m.visible {
			m.marked[e.Path] = true
		}
		m.setStatus(fmt.Sprintf("Marked %s", plural(len(m.visible), "item")), false)

	case key.Matches(msg, m.keys.Clear):
		switch {
		case m.filterInput.Value() != "":
			m.filterInput.SetValue("")
			m.applyFilter()
		case len(m.marked) > 0:
			m.marked = make(map[string]bool)
		}

	case key.Matches(msg, m.keys.Hidden):
		m.listOpts.ShowHidden = !m.listOpts.ShowHidden
		m.refresh()
		if m.listOpts.ShowHidden {
			m.setStatus("Showing hidden files", false)
		} else {
			m.setStatus("Hiding hidden files", false)
		}

	case key.Matches(msg, m.keys.CopyPath):
		if e, ok := m.focused(); ok {
			m.copyPath(e.Path)
		} else {
			m.copyPath(m.paths.Current().String())
		}

	case key.Matches(msg, m.keys.Refresh):
		m.gitInfo = git.Status(m.paths.Current().String())
		m.refresh()
		if m.listErr == nil {
			m.setStatus("Refreshed", false)
		}
	}

	return m, nil
}

// navigate runs a history move and resets per-directory state if the
// directory changed.
func (m *model) navigate(move func()) {
	before := m.paths.Current()
	move()
	if m.paths.Current() != before {
		m.afterNavigate()
	}
}

// openEntry enters a directory or hands a file to the opener. Symlinks to
// directories are followed to their canonical target.
func (m *model) openEntry(e listing.Entry) tea.Cmd {
	switch {
	case e.IsDir:
		m.navigate(func() { m.paths.Open(e.Name) })
		return nil
	case e.IsSymlink:
		info, err := os.Stat(e.Path)
		if err != nil {
			m.setStatus(fileops.FormatError(err, e.Path, "open").Error(), true)
			return nil
		}
		if info.IsDir() {
			m.navigate(func() { m.paths.SetPath(e.Path) })
			return nil
		}
	}
	m.setStatus(fmt.Sprintf("Opening %s", e.Name), false)
	return m.openFile(e.Path)
}

func (m *model) handlePathKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Open):
		raw := strings.TrimSpace(m.textInput.Value())
		m.mode = modeNormal
		m.textInput.Blur()
		before := m.paths.Current()
		if !m.paths.SetPath(raw) {
			m.setStatus(fmt.Sprintf("Not a directory: %s", raw), true)
			return m, nil
		}
		if m.paths.Current() != before {
			m.afterNavigate()
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.mode = modeNormal
		m.textInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *model) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Open):
		newName := m.textInput.Value()
		target := m.renameTarget
		m.mode = modeNormal
		m.textInput.Blur()

		if err := fileops.Rename(target.Path, newName); err != nil {
			m.setStatus(fileops.FormatError(err, target.Path, "rename").Error(), true)
			m.refresh()
			return m, nil
		}
		m.refresh()
		if newName != target.Name {
			m.focusName(newName)
			m.setStatus(fmt.Sprintf("Renamed %s → %s", target.Name, newName), false)
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.mode = modeNormal
		m.textInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filterInput.SetValue("")
		m.filterInput.Blur()
		m.mode = modeNormal
		m.applyFilter()
		return m, nil
	case "enter":
		m.filterInput.Blur()
		m.mode = modeNormal
		return m, nil
	case "up", "down":
		return m.handleNormalKey(msg)
	}

	var cmd tea.Cmd
	before := m.filterInput.Value()
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() != before {
		m.cursor = 0
		m.applyFilter()
	}
	return m, cmd
}

func (m *model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = modeNormal
		m.deletePending()
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeNormal
		m.pendingDelete = nil
		m.setStatus("Delete cancelled", false)
	}
	return m, nil
}

// startDelete asks for confirmation, or deletes right away when the config
// says not to ask.
func (m *model) startDelete(paths []string) {
	if len(paths) == 0 {
		return
	}
	m.pendingDelete = paths
	if m.config.ConfirmDelete {
		m.mode = modeConfirmDelete
		return
	}
	m.deletePending()
}

func (m *model) deletePending() {
	paths := m.pendingDelete
	m.pendingDelete = nil
	if len(paths) == 0 {
		return
	}

	deleted, err := fileops.DeleteMultiple(paths)
	for _, p := range paths {
		delete(m.marked, p)
	}
	m.refresh()

	switch {
	case err == nil:
		m.setStatus(fmt.Sprintf("Deleted %s", describeTargets(paths)), false)
	case len(paths) == 1:
		m.setStatus(fileops.FormatError(err, paths[0], "delete").Error(), true)
	default:
		logger.Warn("deleted %d of %d: %v", deleted, len(paths), err)
		m.setStatus(fmt.Sprintf("Deleted %d of %d; some items failed", deleted, len(paths)), true)
	}
}

// focusName moves the cursor onto the visible entry called name.
func (m *model) focusName(name string) {
	for i, e := range m.visible {
		if e.Name == name {
			m.cursor = i
			m.clampCursor()
			return
		}
	}
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Dialogs own the input while open. A release still ends any drag so
	// the rectangle never outlives the button.
	if m.mode != modeNormal {
		if msg.Action == tea.MouseActionRelease {
			m.cancelDrag()
		}
		return m, nil
	}

	p, inside := m.toGrid(msg.X, msg.Y)
	n := len(m.visible)
	layout := m.layout()

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollRow--
		m.clampScroll()
		return m, nil

	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollRow++
		m.clampScroll()
		return m, nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !inside {
			return m, nil
		}
		m.buttonDown = true
		m.pressOrigin = &p
		m.pointer = &p

		idx := layout.IndexAt(p, n)
		if idx < 0 {
			m.lastClickIndex = -1
			return m, nil
		}
		m.cursor = idx
		m.clampCursor()

		now := time.Now()
		if idx == m.lastClickIndex && now.Sub(m.lastClickTime) < m.doubleClickThreshold {
			m.lastClickIndex = -1
			m.buttonDown = false
			m.pressOrigin = nil
			return m, m.openEntry(m.visible[idx])
		}
		m.lastClickIndex = idx
		m.lastClickTime = now
		return m, nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		if !inside {
			return m, nil
		}
		idx := layout.IndexAt(p, n)
		if idx < 0 {
			return m, nil
		}
		m.cursor = idx
		m.clampCursor()
		if e := m.visible[idx]; !m.marked[e.Path] {
			m.marked = map[string]bool{e.Path: true}
		}
		m.startDelete(m.targets())
		return m, nil

	case msg.Action == tea.MouseActionRelease:
		if !m.buttonDown {
			return m, nil
		}
		m.pointer = &p
		hl := selection.Resolve(m.frame(), layout.Boxes(n))
		if !msg.Ctrl {
			m.marked = make(map[string]bool)
		}
		for _, i := range selection.SelectedIndexes(hl) {
			m.marked[m.visible[i].Path] = true
		}
		m.buttonDown = false
		m.pressOrigin = nil
		if !inside {
			m.pointer = nil
		}
		return m, nil

	case msg.Action == tea.MouseActionMotion:
		if inside || m.buttonDown {
			m.pointer = &p
		} else {
			m.pointer = nil
		}
		return m, nil
	}

	return m, nil
}
