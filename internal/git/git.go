package git

import (
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Info is the git state of the directory being browsed.
type Info struct {
	Root     string
	Branch   string
	Modified map[string]bool // absolute paths with uncommitted changes
}

// InRepo reports whether the directory belongs to a work tree.
func (i Info) InRepo() bool {
	return i.Root != ""
}

// IsModified reports whether path has changes, or for a directory whether
// anything beneath it does.
func (i Info) IsModified(path string, isDir bool) bool {
	if i.Modified[path] {
		return true
	}
	if !isDir {
		return false
	}
	prefix := path + string(filepath.Separator)
	for p := range i.Modified {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// Status returns the branch and modified files for dir. Outside a work tree,
// or without a git binary, it returns a zero Info.
func Status(dir string) Info {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return Info{}
	}
	root := strings.TrimSpace(string(out))

	cmd = exec.Command("git", "status", "--porcelain=v1", "--branch")
	cmd.Dir = dir
	out, err = cmd.Output()
	if err != nil {
		return Info{Root: root}
	}
	return parseStatus(root, string(out))
}

func parseStatus(root, output string) Info {
	info := Info{Root: root, Modified: make(map[string]bool)}

	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "## ") {
			info.Branch = parseBranch(strings.TrimPrefix(line, "## "))
			continue
		}
		// Status is in first two characters, filename starts at position 3
		if len(line) <= 3 {
			continue
		}
		name := line[3:]
		if i := strings.Index(name, " -> "); i >= 0 {
			name = name[i+4:]
		}
		name = unquote(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		info.Modified[filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(name, "/")))] = true
	}

	return info
}

func parseBranch(header string) string {
	if rest, ok := strings.CutPrefix(header, "No commits yet on "); ok {
		return rest
	}
	if i := strings.Index(header, "..."); i >= 0 {
		return header[:i]
	}
	if i := strings.Index(header, " "); i >= 0 {
		return header[:i]
	}
	return header
}

func unquote(name string) string {
	if strings.HasPrefix(name, `"`) {
		if s, err := strconv.Unquote(name); err == nil {
			return s
		}
	}
	return name
}
