package fs

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
	"time"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/zerr"
)

// isFile reports whether path names a regular file. Absence is not an error;
// any other stat failure is.
func isFile(path string) (bool, error) {
	info, err := stat(path)
	if err != nil || info == nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// modTime returns the modification time of path, or false if it does not exist.
func modTime(path string) (time.Time, bool, error) {
	info, err := stat(path)
	if err != nil || info == nil {
		return time.Time{}, false, err
	}
	return info.ModTime(), true, nil
}

func stat(path string) (fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStatFailed.Error()), "path", path)
	}
	return info, nil
}
