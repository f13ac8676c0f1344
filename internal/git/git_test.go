package git

import (
	"path/filepath"
	"testing"
)

func TestParseStatus(t *testing.T) {
	root := filepath.FromSlash("/repo")
	output := "## main...origin/main [ahead 1]\n" +
		" M internal/grid/grid.go\n" +
		"?? notes/\n" +
		"R  old.txt -> new.txt\n" +
		"?? \"with space.txt\"\n"

	info := parseStatus(root, output)

	if info.Branch != "main" {
		t.Errorf("Branch = %q, want main", info.Branch)
	}

	for _, rel := range []string{"internal/grid/grid.go", "notes", "new.txt", "with space.txt"} {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if !info.Modified[p] {
			t.Errorf("expected %s to be modified", p)
		}
	}
	if info.Modified[filepath.Join(root, "old.txt")] {
		t.Error("rename source should not be marked")
	}
}

func TestParseBranch(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"main", "main"},
		{"main...origin/main", "main"},
		{"feature/x...origin/feature/x [behind 2]", "feature/x"},
		{"No commits yet on trunk", "trunk"},
		{"HEAD (no branch)", "HEAD"},
	}

	for _, tt := range tests {
		if got := parseBranch(tt.header); got != tt.want {
			t.Errorf("parseBranch(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestIsModified(t *testing.T) {
	root := filepath.FromSlash("/repo")
	info := Info{Root: root, Modified: map[string]bool{
		filepath.Join(root, "internal", "grid", "grid.go"): true,
	}}

	if !info.IsModified(filepath.Join(root, "internal", "grid", "grid.go"), false) {
		t.Error("file itself should be modified")
	}
	if !info.IsModified(filepath.Join(root, "internal"), true) {
		t.Error("ancestor directory should be modified")
	}
	if info.IsModified(filepath.Join(root, "intern"), true) {
		t.Error("prefix without separator should not match")
	}
	if info.IsModified(filepath.Join(root, "internal"), false) {
		t.Error("non-directory should only match exactly")
	}
}

func TestStatusOutsideRepo(t *testing.T) {
	info := Status(t.TempDir())
	if info.InRepo() && info.Modified == nil {
		t.Error("repo info should carry a modified map")
	}
}
