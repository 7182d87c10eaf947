package patchspec

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Load reads and parses a patch document from disk, choosing the decoder by
// file extension: .yaml/.yml or .hcl.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("patchspec: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS is Load against an fs.FS, for embedded documents and tests.
func LoadFS(fsys fs.FS, name string) (*Spec, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("patchspec: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse dispatches on the filename extension.
func Parse(data []byte, filename string) (*Spec, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".hcl":
		return ParseHCL(data, filename)
	default:
		return nil, fmt.Errorf("patchspec: unsupported document format %q", filepath.Ext(filename))
	}
}
