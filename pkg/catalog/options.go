package catalog

import (
	"io/fs"
	"os"

	"github.com/kbase/datacatalog/internal/embedded"
	"github.com/kbase/datacatalog/pkg/errors"
)

// catalogOptions is a struct that contains the options for the catalog.
type catalogOptions struct {
	readFS   fs.FS  // Filesystem the document is read from
	filename string // Document name inside readFS
	path     string // Document path on disk, takes precedence over readFS
	raw      []byte // In-memory document, takes precedence over everything
}

// apply applies the given options to the catalog options.
func (c *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// catalogDefaults returns the default options for a catalog: the embedded
// document.
func catalogDefaults() *catalogOptions {
	return &catalogOptions{
		readFS:   embedded.FS,
		filename: embedded.DocumentPath,
	}
}

// document resolves the options to raw document bytes.
func (c *catalogOptions) document() ([]byte, error) {
	if c.raw != nil {
		return c.raw, nil
	}

	if c.path != "" {
		data, err := os.ReadFile(c.path)
		if err != nil {
			return nil, errors.WrapIO("read", c.path, err)
		}
		return data, nil
	}

	data, err := fs.ReadFile(c.readFS, c.filename)
	if err != nil {
		return nil, errors.WrapIO("read", c.filename, err)
	}
	return data, nil
}

// Option configures a catalog.
type Option func(*catalogOptions)

// WithEmbedded configures the catalog to load the document compiled into
// the binary. This is the default.
func WithEmbedded() Option {
	return func(c *catalogOptions) {
		c.readFS = embedded.FS
		c.filename = embedded.DocumentPath
		c.path = ""
		c.raw = nil
	}
}

// WithFile configures the catalog to load the document from a file on disk.
// This is useful for development when you want to edit the document without
// recompiling the binary.
func WithFile(path string) Option {
	return func(c *catalogOptions) {
		c.path = path
		c.raw = nil
	}
}

// WithFS configures the catalog to load the named document from a custom
// fs.FS implementation.
func WithFS(fsys fs.FS, name string) Option {
	return func(c *catalogOptions) {
		c.readFS = fsys
		c.filename = name
		c.path = ""
		c.raw = nil
	}
}

// WithDocument configures the catalog to load an in-memory document.
func WithDocument(data []byte) Option {
	return func(c *catalogOptions) {
		c.raw = data
	}
}
