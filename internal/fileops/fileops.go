package fileops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Result records the outcome of one entry in a batch operation. A failed
// entry never aborts the batch; callers inspect the aggregate error.
type Result struct {
	SourcePath      string
	DestinationPath string
	Done            bool
	Err             error
}

// Delete removes every path, directories recursively. It keeps going past
// failures and returns one Result per path plus an aggregate error.
func Delete(paths []string) ([]Result, error) {
	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		r := Result{SourcePath: p}
		if err := os.RemoveAll(p); err != nil {
			r.Err = err
		} else {
			r.Done = true
		}
		results = append(results, r)
	}
	return results, aggregate("delete", results)
}

// MoveInto moves every source path into destDir under its base name.
// Rename is tried first; cross-device moves fall back to copy and remove.
// An existing destination fails that entry, it is never overwritten.
func MoveInto(destDir string, paths []string) ([]Result, error) {
	results := make([]Result, 0, len(paths))
	for _, src := range paths {
		dst := filepath.Join(destDir, filepath.Base(src))
		r := Result{SourcePath: src, DestinationPath: dst}
		r.Err = moveOne(src, dst)
		r.Done = r.Err == nil
		results = append(results, r)
	}
	return results, aggregate("move", results)
}

// CopyInto copies every source path into destDir under its base name,
// directories recursively. An existing destination fails that entry.
func CopyInto(destDir string, paths []string) ([]Result, error) {
	results := make([]Result, 0, len(paths))
	for _, src := range paths {
		dst := filepath.Join(destDir, filepath.Base(src))
		r := Result{SourcePath: src, DestinationPath: dst}
		r.Err = copyOne(src, dst)
		r.Done = r.Err == nil
		results = append(results, r)
	}
	return results, aggregate("copy", results)
}

func aggregate(op string, results []Result) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", filepath.Base(r.SourcePath), r.Err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %d of %d failed: %w", op, len(errs), len(results), errors.Join(errs...))
}

func moveOne(src, dst string) error {
	if src == dst {
		return nil
	}
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("destination already exists")
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	// Rename cannot cross filesystems; copy then remove the original.
	if err := copyOne(src, dst); err != nil {
		return err
	}
	return os.RemoveAll(src)
}

func copyOne(src, dst string) error {
	if src == dst {
		return fmt.Errorf("source and destination are the same")
	}
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("destination already exists")
	}
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return copySymlink(src, dst)
	case info.IsDir():
		return copyDir(src, dst)
	default:
		return copyFile(src, dst, info.Mode())
	}
}

func copyFile(src, dst string, mode os.FileMode) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		os.Remove(dst)
		return err
	}
	return dstFile.Close()
}

func copyDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, info.Mode().Perm()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		childInfo, err := os.Lstat(srcPath)
		if err != nil {
			return err
		}
		switch {
		case childInfo.Mode()&os.ModeSymlink != 0:
			err = copySymlink(srcPath, dstPath)
		case entry.IsDir():
			err = copyDir(srcPath, dstPath)
		default:
			err = copyFile(srcPath, dstPath, childInfo.Mode())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return err
	}
	return os.Symlink(target, dst)
}
