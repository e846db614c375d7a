// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shortcut extracts target URLs from internet-shortcut files:
// Windows .url (INI), freedesktop .desktop entries, and Apple .webloc
// property lists.
//
// Extraction is best effort: an unreadable file, a parse error or a missing
// key all resolve to "no URL found" rather than an error.
package shortcut

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Format identifies a shortcut file format.
type Format string

const (
	FormatUnknown Format = ""
	FormatURL     Format = "url"
	FormatDesktop Format = "desktop"
	FormatWebloc  Format = "webloc"
)

// FormatOf classifies path by its extension. Matching ignores case, so
// "Link.URL" is an INI shortcut just like "link.url".
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".url":
		return FormatURL
	case ".desktop":
		return FormatDesktop
	case ".webloc":
		return FormatWebloc
	default:
		return FormatUnknown
	}
}

// Supported reports whether f is one of the known shortcut formats.
func (f Format) Supported() bool {
	return f != FormatUnknown
}

// Options tunes extraction.
type Options struct {
	// StripExecArgs drops trailing field codes such as "%u" from .desktop
	// Exec= values.
	StripExecArgs bool
}

// Extractor reads shortcut files and returns the URL they point to.
type Extractor struct {
	opts   Options
	logger *zap.Logger
}

// NewExtractor creates an Extractor. A nil logger disables diagnostics.
func NewExtractor(opts Options, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{opts: opts, logger: logger}
}

// Extract returns the URL stored in the shortcut at path. The boolean is
// false when the extension is not a shortcut format, the file is malformed,
// or it holds no URL. An empty URL counts as absent.
func (e *Extractor) Extract(path string) (string, bool) {
	var (
		url string
		err error
	)
	format := FormatOf(path)
	switch format {
	case FormatURL:
		url, err = extractURLFile(path)
	case FormatDesktop:
		url, err = extractDesktopFile(path, e.opts.StripExecArgs)
	case FormatWebloc:
		url, err = extractWeblocFile(path)
	default:
		return "", false
	}

	if err != nil {
		e.logger.Debug("no URL in shortcut",
			zap.String("file", path),
			zap.String("format", string(format)),
			zap.Error(err))
		return "", false
	}
	if url == "" {
		return "", false
	}
	return url, true
}
