package pathstate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LFroesch/tiles/internal/fserr"
)

// tempTree returns the canonical form of a fresh temp dir containing
// user/docs.
func tempTree(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "user", "docs"), 0755))
	return root
}

func TestNewAbsolutePath(t *testing.T) {
	root := tempTree(t)

	p, err := NewAbsolutePath(filepath.Join(root, "user", ".", "docs", ".."))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "user"), p.String())
	assert.True(t, filepath.IsAbs(p.String()))

	_, err = NewAbsolutePath(filepath.Join(root, "missing"))
	var invalid *fserr.InvalidPathError
	assert.ErrorAs(t, err, &invalid)

	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = NewAbsolutePath(file)
	assert.ErrorAs(t, err, &invalid)

	_, err = NewAbsolutePath("   ")
	assert.ErrorAs(t, err, &invalid)
}

func TestNewAbsolutePathResolvesSymlinks(t *testing.T) {
	root := tempTree(t)
	link := filepath.Join(root, "link")
	if err := os.Symlink(filepath.Join(root, "user"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	p, err := NewAbsolutePath(link)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "user"), p.String())
}

func TestNewAbsolutePathExpandsHome(t *testing.T) {
	root := tempTree(t)
	t.Setenv("HOME", root)

	p, err := NewAbsolutePath("~/user")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "user"), p.String())
}

func TestOpenBackForwardScenario(t *testing.T) {
	root := tempTree(t)
	home := filepath.Join(root, "user")

	s, err := New(home)
	require.NoError(t, err)

	s.Open("docs")
	assert.Equal(t, filepath.Join(home, "docs"), s.Current().String())
	assert.Empty(t, s.History())

	s.Back()
	assert.Equal(t, home, s.Current().String())
	assert.Equal(t, []string{"docs"}, s.History())

	s.Forward()
	assert.Equal(t, filepath.Join(home, "docs"), s.Current().String())
	assert.Empty(t, s.History())
}

func TestBackThenForwardRestoresPath(t *testing.T) {
	root := tempTree(t)
	start := filepath.Join(root, "user", "docs")
	s, err := New(start)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		s.Back()
	}
	for i := 0; i < 3; i++ {
		s.Forward()
	}
	assert.Equal(t, start, s.Current().String())
	assert.False(t, s.CanForward())
}

func TestBackAtRootIsNoop(t *testing.T) {
	s, err := New(string(filepath.Separator))
	require.NoError(t, err)
	root := s.Current()
	require.True(t, root.IsRoot())

	for i := 0; i < 5; i++ {
		s.Back()
		assert.Equal(t, root, s.Current())
	}
	assert.Empty(t, s.History())
}

func TestBackUntilRoot(t *testing.T) {
	root := tempTree(t)
	s, err := New(filepath.Join(root, "user", "docs"))
	require.NoError(t, err)

	for i := 0; i < 256 && !s.Current().IsRoot(); i++ {
		s.Back()
	}
	require.True(t, s.Current().IsRoot())
	depth := len(s.History())

	s.Back()
	s.Back()
	assert.True(t, s.Current().IsRoot())
	assert.Len(t, s.History(), depth)
}

func TestForwardOnEmptyHistoryIsNoop(t *testing.T) {
	root := tempTree(t)
	s, err := New(root)
	require.NoError(t, err)

	s.Forward()
	assert.Equal(t, root, s.Current().String())
}

func TestOpenClearsHistory(t *testing.T) {
	root := tempTree(t)
	s, err := New(filepath.Join(root, "user", "docs"))
	require.NoError(t, err)

	s.Back()
	s.Back()
	require.Len(t, s.History(), 2)

	s.Open("other")
	assert.Empty(t, s.History())
	assert.Equal(t, filepath.Join(root, "other"), s.Current().String())

	before := s.Current()
	s.Forward()
	assert.Equal(t, before, s.Current())
}

func TestOpenDoesNotValidateExistence(t *testing.T) {
	root := tempTree(t)
	s, err := New(root)
	require.NoError(t, err)

	s.Open("does-not-exist")
	assert.Equal(t, filepath.Join(root, "does-not-exist"), s.Current().String())
}

func TestOpenRejectsNonSegments(t *testing.T) {
	root := tempTree(t)
	s, err := New(filepath.Join(root, "user"))
	require.NoError(t, err)
	s.Back()
	require.Len(t, s.History(), 1)

	for _, name := range []string{"", ".", "..", "a/b"} {
		s.Open(name)
		assert.Equal(t, root, s.Current().String(), "name %q", name)
		assert.Len(t, s.History(), 1, "name %q", name)
	}
}

func TestSetPath(t *testing.T) {
	root := tempTree(t)
	s, err := New(filepath.Join(root, "user", "docs"))
	require.NoError(t, err)
	s.Back()
	require.Len(t, s.History(), 1)

	t.Run("invalid leaves state untouched", func(t *testing.T) {
		before := s.Current()
		assert.False(t, s.SetPath(filepath.Join(root, "nope")))
		assert.Equal(t, before, s.Current())
		assert.Equal(t, []string{"docs"}, s.History())
	})

	t.Run("valid jumps and clears history", func(t *testing.T) {
		assert.True(t, s.SetPath(root))
		assert.Equal(t, root, s.Current().String())
		assert.Empty(t, s.History())
	})
}

func TestRefreshWalksUpFromVanishedDir(t *testing.T) {
	root := tempTree(t)
	s, err := New(filepath.Join(root, "user", "docs"))
	require.NoError(t, err)

	assert.False(t, s.Refresh())

	require.NoError(t, os.RemoveAll(filepath.Join(root, "user")))
	assert.True(t, s.Refresh())
	assert.Equal(t, root, s.Current().String())
	assert.Empty(t, s.History())
}

func TestValidSegment(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"docs", true},
		{".hidden", true},
		{"a b", true},
		{"", false},
		{".", false},
		{"..", false},
		{"a/b", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidSegment(tt.name), "segment %q", tt.name)
	}
}
