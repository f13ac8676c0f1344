package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/skratchdot/open-golang/open"

	"github.com/LFroesch/tiles/internal/config"
	"github.com/LFroesch/tiles/internal/fileops"
	"github.com/LFroesch/tiles/internal/fserr"
	"github.com/LFroesch/tiles/internal/git"
	"github.com/LFroesch/tiles/internal/grid"
	"github.com/LFroesch/tiles/internal/listing"
	"github.com/LFroesch/tiles/internal/logger"
	"github.com/LFroesch/tiles/internal/pathstate"
	"github.com/LFroesch/tiles/internal/search"
	"github.com/LFroesch/tiles/internal/selection"
	"github.com/LFroesch/tiles/internal/utils"
)

// Terminal dimension constants
const (
	minTerminalWidth  = 40
	minTerminalHeight = 12
	headerHeight      = 2 // path bar + info line
	footerHeight      = 2 // status line + help line
	gridLeft          = 1 // left margin column
)

type mode int

const (
	modeNormal mode = iota
	modePath
	modeRename
	modeFilter
	modeConfirmDelete
	modeHelp
)

// Opener hands a file to whatever the platform uses to open it.
type Opener interface {
	Open(path string) error
}

type systemOpener struct{}

func (systemOpener) Open(path string) error {
	return open.Start(path)
}

type model struct {
	mode   mode
	config *config.Config
	keys   keyMap
	help   help.Model
	opener Opener

	paths      *pathstate.State
	listOpts   listing.Options
	filterMode search.Mode

	// Listing of the current frame. listedDir is the directory entries
	// belong to, so a failed re-list of the same directory can keep them.
	listedDir pathstate.AbsolutePath
	entries   []listing.Entry
	visible   []listing.Entry
	matches   []search.MatchResult
	listErr   error

	cursor    int
	scrollRow int
	marked    map[string]bool // committed selection, by path

	// Pointer state in grid coordinates
	buttonDown  bool
	pressOrigin *image.Point
	pointer     *image.Point

	lastClickTime        time.Time
	lastClickIndex       int
	doubleClickThreshold time.Duration

	textInput     textinput.Model // path box and rename
	filterInput   textinput.Model
	renameTarget  listing.Entry
	pendingDelete []string

	width        int
	height       int
	statusMsg    string
	statusIsErr  bool
	statusExpiry time.Time
	focusInfo    string
	gitInfo      git.Info
}

func newModel(cfg *config.Config, start string, opener Opener) (*model, error) {
	paths, err := pathstate.New(start)
	if err != nil {
		return nil, fmt.Errorf("cannot start in %s: %w", start, err)
	}

	hide, err := listing.CompilePatterns(cfg.HidePatterns)
	if err != nil {
		logger.Warn("ignoring hide patterns: %v", err)
		hide = nil
	}

	ti := textinput.New()
	ti.CharLimit = 4096
	ti.Width = 60

	fi := textinput.New()
	fi.Placeholder = "Type to filter..."
	fi.Prompt = "/ "
	fi.CharLimit = 256
	fi.Width = 40

	m := &model{
		mode:                 modeNormal,
		config:               cfg,
		keys:                 defaultKeyMap(),
		help:                 help.New(),
		opener:               opener,
		paths:                paths,
		listOpts:             listing.Options{ShowHidden: cfg.ShowHidden, Hide: hide},
		filterMode:           search.ParseMode(cfg.FilterMode),
		marked:               make(map[string]bool),
		lastClickIndex:       -1,
		doubleClickThreshold: time.Duration(cfg.DoubleClickMs) * time.Millisecond,
		textInput:            ti,
		filterInput:          fi,
		width:                minTerminalWidth,
		height:               minTerminalHeight,
	}

	m.afterNavigate()
	return m, nil
}

// layout builds this frame's grid geometry from the current width.
func (m *model) layout() grid.Layout {
	return grid.Layout{
		CellWidth: m.config.CellWidth,
		RowHeight: m.config.RowHeight,
		Spacing:   m.config.Spacing,
		Available: m.width - gridLeft*2,
	}
}

// gridHeight is the number of terminal lines given to tiles.
func (m *model) gridHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 1 {
		h = 1
	}
	return h
}

// visibleRows is how many grid rows fit in the viewport.
func (m *model) visibleRows() int {
	rows := m.gridHeight() / m.config.RowHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// toGrid converts a screen cell into grid coordinates. ok is false outside
// the grid viewport.
func (m *model) toGrid(x, y int) (image.Point, bool) {
	gx := x - gridLeft
	gy := y - headerHeight
	inside := gx >= 0 && gy >= 0 && gx < m.width-gridLeft*2 && gy < m.gridHeight()
	return image.Pt(gx, gy+m.scrollRow*m.config.RowHeight), inside
}

// frame is the selection input for the current pointer state.
func (m *model) frame() selection.Frame {
	return selection.Frame{
		Down:    m.buttonDown,
		Origin:  m.pressOrigin,
		Pointer: m.pointer,
		Cells:   true,
	}
}

// highlights resolves hover and drag highlighting for the visible entries.
func (m *model) highlights() []selection.Highlight {
	return selection.Resolve(m.frame(), m.layout().Boxes(len(m.visible)))
}

// refresh re-lists the current directory. A failed re-list of the same
// directory keeps the previous entries on screen; after a navigation the
// stale entries are dropped.
func (m *model) refresh() {
	dir := m.paths.Current()
	entries, err := listing.List(dir.String(), m.listOpts)
	if err != nil {
		if errors.Is(err, fserr.ErrNotFound) && m.paths.Refresh() {
			m.setStatus(fmt.Sprintf("%s no longer exists", dir), true)
			m.afterNavigate()
			return
		}
		if m.listErr == nil || m.listedDir != dir {
			logger.Warn("listing %s failed: %v", dir, err)
			m.setStatus(fileops.FormatError(err, dir.String(), "list").Error(), true)
		}
		m.listErr = err
		if m.listedDir != dir {
			m.entries = nil
			m.listedDir = dir
		}
		m.applyFilter()
		return
	}

	m.listErr = nil
	m.listedDir = dir
	m.entries = entries
	m.applyFilter()
	m.pruneMarks()
}

// afterNavigate resets per-directory state and lists the new directory.
func (m *model) afterNavigate() {
	m.cursor = 0
	m.scrollRow = 0
	m.marked = make(map[string]bool)
	m.filterInput.SetValue("")
	m.lastClickIndex = -1
	m.buttonDown = false
	m.pressOrigin = nil
	m.gitInfo = git.Status(m.paths.Current().String())
	m.refresh()
}

func (m *model) applyFilter() {
	m.matches = search.Filter(m.filterInput.Value(), m.entries, m.filterMode)
	m.visible = search.Apply(m.entries, m.matches)
	m.clampCursor()
}

func (m *model) clampCursor() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
	m.updateFocusInfo()
}

func (m *model) ensureCursorVisible() {
	if len(m.visible) == 0 {
		m.scrollRow = 0
		return
	}
	row := m.layout().Position(m.cursor).Row
	rows := m.visibleRows()
	if row < m.scrollRow {
		m.scrollRow = row
	}
	if row >= m.scrollRow+rows {
		m.scrollRow = row - rows + 1
	}
	m.clampScroll()
}

func (m *model) clampScroll() {
	maxScroll := m.layout().Rows(len(m.visible)) - m.visibleRows()
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scrollRow > maxScroll {
		m.scrollRow = maxScroll
	}
	if m.scrollRow < 0 {
		m.scrollRow = 0
	}
}

// pruneMarks drops marks for entries that are no longer listed.
func (m *model) pruneMarks() {
	if len(m.marked) == 0 {
		return
	}
	present := make(map[string]bool, len(m.entries))
	for _, e := range m.entries {
		present[e.Path] = true
	}
	for p := range m.marked {
		if !present[p] {
			delete(m.marked, p)
		}
	}
}

func (m *model) focused() (listing.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return listing.Entry{}, false
	}
	return m.visible[m.cursor], true
}

// visibleMarks returns the marked paths the filter currently shows. Marks
// hidden by the filter are kept but not acted on.
func (m *model) visibleMarks() []string {
	var paths []string
	for _, e := range m.visible {
		if m.marked[e.Path] {
			paths = append(paths, e.Path)
		}
	}
	return paths
}

// targets returns the visible marked paths, or the focused entry when none
// are marked.
func (m *model) targets() []string {
	if paths := m.visibleMarks(); len(paths) > 0 {
		return paths
	}
	if e, ok := m.focused(); ok {
		return []string{e.Path}
	}
	return nil
}

func (m *model) updateFocusInfo() {
	e, ok := m.focused()
	if !ok {
		m.focusInfo = ""
		return
	}
	info, err := os.Lstat(e.Path)
	if err != nil {
		m.focusInfo = e.Name
		return
	}
	if e.IsDir {
		m.focusInfo = fmt.Sprintf("%s/ · modified %s", e.Name, utils.HumanTime(info.ModTime()))
		return
	}
	m.focusInfo = fmt.Sprintf("%s · %s · modified %s", e.Name, utils.HumanSize(info.Size()), utils.HumanTime(info.ModTime()))
}

func (m *model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
	d := 3 * time.Second
	if isErr {
		d = 5 * time.Second
	}
	m.statusExpiry = time.Now().Add(d)
}
