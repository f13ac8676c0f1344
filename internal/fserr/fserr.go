// Package fserr defines the error kinds returned by path, listing and file operations.
package fserr

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotFound means the target vanished between listing and use.
	ErrNotFound = errors.New("no such file or directory")
	// ErrAlreadyExists means a rename destination is taken.
	ErrAlreadyExists = errors.New("destination already exists")
)

// Kind classifies an IOError.
type Kind int

const (
	KindOther Kind = iota
	KindNotFound
	KindPermission
	KindExists
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	case KindExists:
		return "already exists"
	default:
		return "io error"
	}
}

// InvalidPathError is returned when a path cannot be canonicalized or
// does not name an existing directory.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid path %q", e.Path)
	}
	return fmt.Sprintf("invalid path %q: %v", e.Path, e.Err)
}

func (e *InvalidPathError) Unwrap() error { return e.Err }

// IOError wraps an OS failure from a listing or mutation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Kind reports the class of the underlying OS error.
func (e *IOError) Kind() Kind {
	return KindOf(e.Err)
}

// Is lets errors.Is match ErrNotFound and ErrAlreadyExists against the
// wrapped OS error.
func (e *IOError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind() == KindNotFound
	case ErrAlreadyExists:
		return e.Kind() == KindExists
	}
	return false
}

// KindOf classifies any error by the io/fs sentinels it wraps.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindOther
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, fs.ErrExist):
		return KindExists
	default:
		return KindOther
	}
}

// Wrap attaches op and path to an OS error. The result matches ErrNotFound
// or ErrAlreadyExists through errors.Is when the OS error is of that kind,
// and still matches the original io/fs sentinel.
func Wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}
