package layertree

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// MaxTreeFileSize is the maximum allowed size for a tree file (1MB).
	MaxTreeFileSize = 1 * 1024 * 1024

	// MaxTreeDepth is the maximum layer nesting depth.
	MaxTreeDepth = 100

	// MaxLayerCount is the maximum total number of layers in a tree file.
	MaxLayerCount = 100000
)

// sanitizePathError removes the path from os.PathError so error messages do
// not expose file system paths.
func sanitizePathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}

// Load reads and parses a layer-tree file from the given path. Returns an
// error if the file cannot be read, is not a regular file, is too large, or
// fails validation.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tree file: %w", sanitizePathError(err))
	}
	defer f.Close()

	// Stat the file descriptor (not the path) to avoid TOCTOU.
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat tree file: %w", sanitizePathError(err))
	}

	if !info.Mode().IsRegular() {
		return nil, errors.New("tree file must be a regular file")
	}
	if info.Size() == 0 {
		return nil, errors.New("tree file is empty")
	}
	if info.Size() > MaxTreeFileSize {
		return nil, fmt.Errorf("tree file too large: %d bytes (max %d)", info.Size(), MaxTreeFileSize)
	}

	// Read MaxTreeFileSize+1 to detect the file growing past the limit
	// between Stat and Read.
	data, err := io.ReadAll(io.LimitReader(f, MaxTreeFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read tree file: %w", sanitizePathError(err))
	}
	if len(data) > MaxTreeFileSize {
		return nil, fmt.Errorf("tree file too large: %d bytes (max %d)", len(data), MaxTreeFileSize)
	}

	return LoadBytes(data)
}

// LoadBytes parses a layer-tree file from a byte slice.
func LoadBytes(data []byte) (*File, error) {
	if len(data) == 0 {
		return nil, errors.New("tree file is empty")
	}
	if len(data) > MaxTreeFileSize {
		return nil, fmt.Errorf("tree file too large: %d bytes (max %d)", len(data), MaxTreeFileSize)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}
