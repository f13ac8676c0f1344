// Package listing enumerates the immediate children of a directory into
// DirectoryEntry snapshots.
package listing

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/LFroesch/tiles/internal/fserr"
)

// Entry is one child of a listed directory at listing time. Entries are
// never reused across listings: after a navigation their paths are stale.
type Entry struct {
	Name      string
	Path      string
	IsDir     bool
	IsSymlink bool
	Hidden    bool
}

// Options filters what List returns.
type Options struct {
	ShowHidden bool
	Hide       []glob.Glob // names matching any pattern are skipped
}

// CompilePatterns compiles user supplied name globs such as "node_modules"
// or "*.pyc".
func CompilePatterns(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid hide pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// List reads dir and returns its children, directories first and then by
// name. Classification comes from each entry's own type bits. If the
// directory cannot be read the error is returned with no entries.
func List(dir string, opts Options) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &fserr.IOError{Op: "list", Path: dir, Err: err}
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		hidden := strings.HasPrefix(name, ".")
		if hidden && !opts.ShowHidden {
			continue
		}
		if matchesAny(opts.Hide, name) {
			continue
		}

		entries = append(entries, Entry{
			Name:      name,
			Path:      filepath.Join(dir, name),
			IsDir:     de.IsDir(),
			IsSymlink: de.Type()&fs.ModeSymlink != 0,
			Hidden:    hidden,
		})
	}

	sortEntries(entries)
	return entries, nil
}

func matchesAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		// Directories first
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		li, lj := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
		if li != lj {
			return li < lj
		}
		return entries[i].Name < entries[j].Name
	})
}

// Names returns the entry names in order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
