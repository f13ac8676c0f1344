//go:build !linux

package fileops

func renameNoReplace(oldPath, newPath string) error {
	return renameCheckThenMove(oldPath, newPath)
}
