// Package fileutil provides file discovery and write helpers.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrNotDirectory           = errors.New("not a directory")
)

// DefaultExtensions lists the content file extensions discovered by default.
var DefaultExtensions = []string{".md", ".markdown"}

// ValidateExtension checks that the extension is safe to match file names against.
func ValidateExtension(extension string) error {
	if strings.TrimPrefix(extension, ".") == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// NormalizeExtensions validates each extension and returns them lowercased
// with a leading dot. "MD" and ".md" both become ".md".
func NormalizeExtensions(extensions []string) ([]string, error) {
	out := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		if err := ValidateExtension(ext); err != nil {
			return nil, fmt.Errorf("%w: %q", err, ext)
		}
		out = append(out, "."+strings.ToLower(strings.TrimPrefix(ext, ".")))
	}
	return out, nil
}

// Discover walks root and returns the files whose extension is one of
// extensions, in lexical order. Hidden directories (".git", ".cache") are
// skipped. Extensions are compared case-insensitively.
func Discover(root string, extensions []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	exts, err := NormalizeExtensions(extensions)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if HasExtension(path, exts) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// HasExtension reports whether path ends in one of the normalized extensions.
func HasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// WriteFileAtomic replaces path with data. The content goes to a temporary
// file in the same directory which is then renamed over path, so readers see
// either the old or the new file, never a partial one.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if chmodErr := os.Chmod(tmpPath, perm); chmodErr != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", chmodErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		cleanup()
		return fmt.Errorf("replacing %s: %w", path, renameErr)
	}
	return nil
}

// FileMode returns the permission bits of path, or 0o644 if it cannot be read.
func FileMode(path string) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return 0o644
	}
	return info.Mode().Perm()
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "sitekit" -> false (name)
//   - "./sitekit.yaml" -> true (relative path)
//   - "../shared/site.yaml" -> true (parent path)
//   - "/absolute/site.yaml" -> true (absolute)
//   - "my-site" -> false (hyphenated name)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
