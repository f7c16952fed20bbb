// Package fsutil provides file system helpers for locating prior files.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PriorFileExtension is the conventional extension for prior declaration files.
const PriorFileExtension = ".priors"

// FindFilesByExtension recursively searches the given root path for all files
// ending with the specified extension and returns their paths, sorted for
// deterministic load order.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		return nil, fmt.Errorf("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ResolvePriorFiles expands a path into the list of prior files it names: a
// regular file resolves to itself, a directory to every .priors file beneath
// it. An empty result is an error, since loading nothing silently would let
// an inference run start without its priors.
func ResolvePriorFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve prior path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := FindFilesByExtension(path, PriorFileExtension)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %q for prior files: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found under %q", PriorFileExtension, path)
	}
	return files, nil
}
