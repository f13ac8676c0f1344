package fileops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LFroesch/tiles/internal/fserr"
	"github.com/LFroesch/tiles/internal/logger"
	"github.com/LFroesch/tiles/internal/pathstate"
)

// Delete removes a file, or a directory with everything under it.
// A path that is already gone yields fserr.ErrNotFound.
func Delete(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return fserr.Wrap("delete", path, err)
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		logger.Error("delete %s failed: %v", path, err)
		return fserr.Wrap("delete", path, err)
	}

	logger.Info("deleted %s", path)
	return nil
}

// DeleteMultiple deletes every path, continuing past failures, and returns
// the joined errors.
func DeleteMultiple(paths []string) (int, error) {
	var errs []error
	deleted := 0
	for _, p := range paths {
		if err := Delete(p); err != nil {
			errs = append(errs, err)
			continue
		}
		deleted++
	}
	return deleted, errors.Join(errs...)
}

// Rename moves path to newName inside the same parent directory. It never
// overwrites: an existing destination yields fserr.ErrAlreadyExists and the
// source is left in place.
func Rename(path, newName string) error {
	if !pathstate.ValidSegment(newName) {
		return &fserr.InvalidPathError{Path: newName, Err: errors.New("name must be a single path segment")}
	}

	parent := filepath.Dir(path)
	if parent == path {
		return &fserr.InvalidPathError{Path: path, Err: errors.New("cannot rename a filesystem root")}
	}

	srcInfo, err := os.Lstat(path)
	if err != nil {
		return fserr.Wrap("rename", path, err)
	}

	newPath := filepath.Join(parent, newName)
	if newPath == path {
		return nil
	}

	// A case-only rename on a case-insensitive filesystem sees itself as the
	// destination.
	if dstInfo, err := os.Lstat(newPath); err == nil && os.SameFile(srcInfo, dstInfo) {
		return fserr.Wrap("rename", path, os.Rename(path, newPath))
	}

	if err := renameNoReplace(path, newPath); err != nil {
		logger.Warn("rename %s -> %s failed: %v", path, newName, err)
		return fserr.Wrap("rename", path, err)
	}

	logger.Info("renamed %s -> %s", path, newName)
	return nil
}

// renameCheckThenMove is the portable fallback: check the destination, then
// rename.
func renameCheckThenMove(oldPath, newPath string) error {
	if _, err := os.Lstat(newPath); err == nil {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: os.ErrExist}
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.Rename(oldPath, newPath)
}

// FormatError turns an operation failure into a short message for the
// status bar.
func FormatError(err error, path, operation string) error {
	if err == nil {
		return nil
	}

	name := filepath.Base(path)
	var invalid *fserr.InvalidPathError
	switch {
	case errors.Is(err, fserr.ErrNotFound):
		return fmt.Errorf("cannot %s %s: it no longer exists", operation, name)
	case errors.Is(err, fserr.ErrAlreadyExists):
		return fmt.Errorf("cannot %s %s: destination already exists", operation, name)
	case errors.As(err, &invalid):
		return fmt.Errorf("cannot %s %s: %v", operation, name, invalid.Err)
	case fserr.KindOf(err) == fserr.KindPermission:
		return fmt.Errorf("cannot %s %s: permission denied", operation, name)
	default:
		return fmt.Errorf("cannot %s %s: %w", operation, name, err)
	}
}
