package loader

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/nagaozen/schematools/schemaerrors"
)

// MaxFileSize is the default maximum size (in bytes) for documents read by
// the bundled providers. This prevents resource exhaustion from loading
// arbitrarily large files. 10MB is sufficient for most schema documents.
const MaxFileSize = 10 * 1024 * 1024

// FileProvider serves the "file" scheme from the local filesystem.
//
// Relative addresses resolve against BaseDir; when BaseDir is set, absolute
// addresses outside it are rejected to block path traversal through crafted
// references. Documents parse as YAML, which accepts JSON as a subset.
type FileProvider struct {
	// BaseDir is the directory relative addresses resolve against.
	// When non-empty it also bounds which files may be read.
	BaseDir string

	// MaxFileSize bounds the size of a single document.
	// Zero means the package default.
	MaxFileSize int64
}

// NewFileProvider creates a FileProvider rooted at baseDir.
func NewFileProvider(baseDir string) *FileProvider {
	return &FileProvider{BaseDir: baseDir}
}

// Fetch implements Provider.
func (p *FileProvider) Fetch(ctx context.Context, address string, _ FetchOptions) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := address
	if u, err := url.Parse(address); err == nil && u.Scheme == "file" {
		path = u.Path
	}

	if !filepath.IsAbs(path) {
		path = filepath.Clean(filepath.Join(p.BaseDir, path))
	}

	if p.BaseDir != "" {
		if err := p.checkWithinBase(path); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	limit := p.MaxFileSize
	if limit <= 0 {
		limit = MaxFileSize
	}
	if int64(len(data)) > limit {
		return nil, &schemaerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Actual:       int64(len(data)),
			Message:      path,
		}
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return doc, nil
}

// checkWithinBase rejects paths escaping the base directory.
// filepath.Rel properly handles all cases including different volumes on
// Windows, where it returns an error for paths on different drives.
func (p *FileProvider) checkWithinBase(path string) error {
	absBase, err := filepath.Abs(p.BaseDir)
	if err != nil {
		return fmt.Errorf("failed to resolve base directory: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve file path: %w", err)
	}
	relPath, err := filepath.Rel(absBase, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return fmt.Errorf("path %s escapes base directory %s", path, p.BaseDir)
	}
	return nil
}

// Ensure FileProvider implements Provider at compile time.
var _ Provider = (*FileProvider)(nil)
