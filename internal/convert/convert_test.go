// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/linkconv/internal/shortcut"
	"github.com/pdiddy/linkconv/pkg/types"
)

// fakeExtractor returns canned URLs keyed by file base name.
type fakeExtractor struct {
	urls  map[string]string
	calls []string
}

func (f *fakeExtractor) Extract(path string) (string, bool) {
	f.calls = append(f.calls, path)
	url, ok := f.urls[filepath.Base(path)]
	return url, ok && url != ""
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// setupTree creates a folder with three valid shortcuts (one per format,
// spread over nested directories) and four files that must not convert.
func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "My Link.url"), "[InternetShortcut]\nURL=https://example.com\n")
	writeFile(t, filepath.Join(root, "sub", "app.desktop"), "[Desktop Entry]\nExec=https://example.org %u\n")
	writeFile(t, filepath.Join(root, "sub", "deep", "site.webloc"),
		`<?xml version="1.0" encoding="UTF-8"?><plist version="1.0"><dict><key>URL</key><string>https://example.net</string></dict></plist>`)

	writeFile(t, filepath.Join(root, "broken.url"), "not an ini file at all")
	writeFile(t, filepath.Join(root, "sub", "cmd.desktop"), "[Desktop Entry]\nExec=gedit\n")
	writeFile(t, filepath.Join(root, "notes.txt"), "https://example.com")
	writeFile(t, filepath.Join(root, "sub", "deep", "empty.webloc"), "")
	return root
}

func TestValidateRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeFile(t, file, "x")

	assert.NoError(t, ValidateRoot(dir))

	err := ValidateRoot(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRoot))

	err = ValidateRoot(file)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRoot))
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	ex := &fakeExtractor{urls: map[string]string{"good.url": "https://example.com"}}
	c := New(ex, types.ConversionConfig{}, nil, nil)

	tests := []struct {
		name       string
		file       string
		wantStatus types.ConversionStatus
		wantHTML   bool
	}{
		{name: "shortcut with URL", file: "good.url", wantStatus: types.ConversionDone, wantHTML: true},
		{name: "shortcut without URL", file: "bad.webloc", wantStatus: types.ConversionNoURL},
		{name: "not a shortcut", file: "readme.md", wantStatus: types.ConversionUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			writeFile(t, path, "content")

			status, err := c.ConvertFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)

			_, statErr := os.Stat(filepath.Join(dir, "good.html"))
			if tt.wantHTML {
				assert.NoError(t, statErr)
			}
		})
	}

	// Unsupported files never reach the extractor.
	for _, call := range ex.calls {
		assert.NotEqual(t, "readme.md", filepath.Base(call))
	}
}

func TestConvertFolder(t *testing.T) {
	root := setupTree(t)
	var log bytes.Buffer
	c := New(shortcut.NewExtractor(shortcut.Options{}, nil), types.ConversionConfig{}, nil, &log)

	result, err := c.ConvertFolder(root)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Converted)
	assert.Equal(t, 3, result.NoURL)
	assert.Equal(t, 1, result.Unsupported)
	assert.Equal(t, 7, result.Total())

	for _, out := range []string{
		filepath.Join(root, "My_Link.html"),
		filepath.Join(root, "sub", "app.html"),
		filepath.Join(root, "sub", "deep", "site.html"),
	} {
		assert.FileExists(t, out)
	}
	for _, out := range []string{
		filepath.Join(root, "broken.html"),
		filepath.Join(root, "sub", "cmd.html"),
		filepath.Join(root, "notes.html"),
		filepath.Join(root, "sub", "deep", "empty.html"),
	} {
		assert.NoFileExists(t, out)
	}

	data, err := os.ReadFile(filepath.Join(root, "sub", "app.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "url=https://example.org %u")

	assert.Contains(t, log.String(), "converted: ")
	assert.Contains(t, log.String(), "3 shortcut(s) converted to HTML in:\n"+root)
}

func TestConvertFolder_Idempotent(t *testing.T) {
	root := setupTree(t)
	c := New(shortcut.NewExtractor(shortcut.Options{}, nil), types.ConversionConfig{}, nil, nil)

	_, err := c.ConvertFolder(root)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(root, "My_Link.html"))
	require.NoError(t, err)

	// The second run sees the generated .html files as unsupported input
	// and rewrites the same redirects.
	result, err := c.ConvertFolder(root)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Converted)
	assert.Equal(t, 4, result.Unsupported)

	second, err := os.ReadFile(filepath.Join(root, "My_Link.html"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConvertFolder_SkipHidden(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "visible.url"), "[InternetShortcut]\nURL=https://example.com\n")
	writeFile(t, filepath.Join(root, ".hidden.url"), "[InternetShortcut]\nURL=https://example.com\n")
	writeFile(t, filepath.Join(root, ".cache", "inner.url"), "[InternetShortcut]\nURL=https://example.com\n")

	ex := shortcut.NewExtractor(shortcut.Options{}, nil)

	result, err := New(ex, types.ConversionConfig{}, nil, nil).ConvertFolder(root)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Converted)

	root2 := t.TempDir()
	writeFile(t, filepath.Join(root2, "visible.url"), "[InternetShortcut]\nURL=https://example.com\n")
	writeFile(t, filepath.Join(root2, ".hidden.url"), "[InternetShortcut]\nURL=https://example.com\n")
	writeFile(t, filepath.Join(root2, ".cache", "inner.url"), "[InternetShortcut]\nURL=https://example.com\n")

	result, err = New(ex, types.ConversionConfig{SkipHidden: true}, nil, nil).ConvertFolder(root2)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Converted)
	assert.NoFileExists(t, filepath.Join(root2, ".cache", "inner.html"))
}

func TestConvertFolder_InvalidRoot(t *testing.T) {
	c := New(&fakeExtractor{}, types.ConversionConfig{}, nil, nil)

	_, err := c.ConvertFolder(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRoot)
}

func TestConvertFolder_WriteFailureAborts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.url"), "x")
	writeFile(t, filepath.Join(root, "z.url"), "x")
	// A directory where a.html must go makes the write fail.
	require.NoError(t, os.Mkdir(filepath.Join(root, "a.html"), 0o755))

	ex := &fakeExtractor{urls: map[string]string{
		"a.url": "https://example.com/a",
		"z.url": "https://example.com/z",
	}}
	result, err := New(ex, types.ConversionConfig{}, nil, nil).ConvertFolder(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing redirect")
	assert.Equal(t, 0, result.Converted)
	// WalkDir visits entries in lexical order, so z.url is never reached.
	assert.NoFileExists(t, filepath.Join(root, "z.html"))
}
