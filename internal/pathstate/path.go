package pathstate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/LFroesch/tiles/internal/fserr"
)

// AbsolutePath is an absolute, cleaned directory path.
type AbsolutePath string

// NewAbsolutePath canonicalizes raw into an existing directory. A leading
// "~" expands to the user's home directory and relative input resolves
// against the working directory. Symlinks are resolved.
func NewAbsolutePath(raw string) (AbsolutePath, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", &fserr.InvalidPathError{Path: raw, Err: errors.New("empty path")}
	}

	expanded, err := expandHome(raw)
	if err != nil {
		return "", &fserr.InvalidPathError{Path: raw, Err: err}
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", &fserr.InvalidPathError{Path: raw, Err: err}
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &fserr.InvalidPathError{Path: raw, Err: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &fserr.InvalidPathError{Path: raw, Err: err}
	}
	if !info.IsDir() {
		return "", &fserr.InvalidPathError{Path: raw, Err: errors.New("not a directory")}
	}

	return AbsolutePath(filepath.Clean(resolved)), nil
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, p[1:]), nil
}

func (p AbsolutePath) String() string { return string(p) }

// Base returns the final path segment. Empty for a filesystem root.
func (p AbsolutePath) Base() string {
	if p.IsRoot() {
		return ""
	}
	return filepath.Base(string(p))
}

// IsRoot reports whether p has no parent.
func (p AbsolutePath) IsRoot() bool {
	return filepath.Dir(string(p)) == string(p)
}

// Parent returns the containing directory, or p itself at a root.
func (p AbsolutePath) Parent() AbsolutePath {
	return AbsolutePath(filepath.Dir(string(p)))
}

// Child appends a single segment. The result is not checked against the disk.
func (p AbsolutePath) Child(name string) AbsolutePath {
	return AbsolutePath(filepath.Join(string(p), name))
}

// ValidSegment reports whether name can be appended as one path segment
// without breaking normalization.
func ValidSegment(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/`+string(filepath.Separator))
}
