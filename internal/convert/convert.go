// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert walks a folder tree and turns every internet shortcut it
// finds into an HTML redirect page written next to the shortcut.
package convert

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/linkconv/internal/redirect"
	"github.com/pdiddy/linkconv/internal/shortcut"
	"github.com/pdiddy/linkconv/pkg/types"
)

// ErrInvalidRoot is returned when the folder to convert does not exist or
// is not a directory.
var ErrInvalidRoot = errors.New("not a valid directory")

// Extractor returns the URL held by a shortcut file, or false when there
// is none. *shortcut.Extractor implements it.
type Extractor interface {
	Extract(path string) (string, bool)
}

// Result holds the outcome of a folder conversion.
type Result struct {
	Converted   int
	NoURL       int
	Unsupported int
}

// Total returns the number of files visited.
func (r Result) Total() int {
	return r.Converted + r.NoURL + r.Unsupported
}

// Converter converts shortcut files into HTML redirects.
type Converter struct {
	extractor Extractor
	cfg       types.ConversionConfig
	logger    *zap.Logger
	w         io.Writer
}

// New creates a Converter that reports progress to w. A nil logger
// disables diagnostics and a nil w discards progress output.
func New(ex Extractor, cfg types.ConversionConfig, logger *zap.Logger, w io.Writer) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if w == nil {
		w = io.Discard
	}
	return &Converter{extractor: ex, cfg: cfg, logger: logger, w: w}
}

// ValidateRoot checks that root exists and is a directory.
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s is %w", root, ErrInvalidRoot)
	}
	return nil
}

// ConvertFile converts a single shortcut, writing the redirect page into
// the shortcut's directory. Files that are not shortcuts or hold no URL are
// reported through the status; only a failed write returns an error.
func (c *Converter) ConvertFile(path string) (types.ConversionStatus, error) {
	if !shortcut.FormatOf(path).Supported() {
		return types.ConversionUnsupported, nil
	}

	url, ok := c.extractor.Extract(path)
	if !ok {
		return types.ConversionNoURL, nil
	}

	out, err := redirect.Write(filepath.Base(path), url, filepath.Dir(path))
	if err != nil {
		return "", err
	}
	c.logger.Debug("wrote redirect", zap.String("file", path), zap.String("url", url), zap.String("output", out))
	fmt.Fprintf(c.w, "converted: %s -> %s\n", path, filepath.Base(out))
	return types.ConversionDone, nil
}

// ConvertFolder walks root recursively and converts every shortcut in it.
// Symlinked directories are not followed. Directories that cannot be read
// are logged and skipped. A failed write stops the walk; the partial
// result is returned with the error.
func (c *Converter) ConvertFolder(root string) (Result, error) {
	if err := ValidateRoot(root); err != nil {
		return Result{}, err
	}

	var result Result
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.logger.Warn("skipping unreadable path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if c.cfg.SkipHidden && path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		status, err := c.ConvertFile(path)
		if err != nil {
			return err
		}
		switch status {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionNoURL:
			c.logger.Debug("no URL found", zap.String("file", path))
			result.NoURL++
		case types.ConversionUnsupported:
			result.Unsupported++
		}
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("converting %s: %w", root, err)
	}

	fmt.Fprintf(c.w, "\n%d shortcut(s) converted to HTML in:\n%s\n", result.Converted, root)
	return result, nil
}
