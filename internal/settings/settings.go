// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package settings remembers the last folder the user converted so the
// next run can default to it.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultFileName is the settings file created in the user's home directory.
// It matches the file earlier releases wrote, so the remembered folder
// carries over.
const DefaultFileName = ".convert_links_config.json"

const lastFolderKey = "last_folder"

// Provider stores and recalls the last-used folder.
type Provider interface {
	// LastFolder returns the remembered folder, or a fallback (the home
	// directory) when nothing has been saved yet.
	LastFolder() (string, error)

	// SavedFolder returns the folder stored by SaveLastFolder. The boolean
	// is false when nothing has been saved; no fallback is substituted.
	SavedFolder() (string, bool, error)

	// SaveLastFolder remembers folder for the next run.
	SaveLastFolder(folder string) error
}

// DefaultPath returns ~/.convert_links_config.json.
func DefaultPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultFileName), nil
}

// FileProvider persists the last folder as {"last_folder": "<path>"} in a
// JSON file.
type FileProvider struct {
	path string
}

// NewFileProvider returns a provider backed by the JSON file at path. The
// file need not exist yet; it is created on the first save.
func NewFileProvider(path string) (*FileProvider, error) {
	if filepath.Ext(path) != ".json" {
		return nil, fmt.Errorf("settings file %s must have a .json extension", path)
	}
	return &FileProvider{path: path}, nil
}

// Path returns the settings file location.
func (p *FileProvider) Path() string {
	return p.path
}

// SavedFolder reads the remembered folder. A missing file or an empty
// value reports false.
func (p *FileProvider) SavedFolder() (string, bool, error) {
	if _, err := os.Stat(p.path); errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}

	v := p.newViper()
	if err := v.ReadInConfig(); err != nil {
		return "", false, fmt.Errorf("reading settings %s: %w", p.path, err)
	}

	folder := v.GetString(lastFolderKey)
	return folder, folder != "", nil
}

// LastFolder returns the remembered folder, or the home directory when
// nothing has been saved.
func (p *FileProvider) LastFolder() (string, error) {
	folder, ok, err := p.SavedFolder()
	if err != nil {
		return "", err
	}
	if ok {
		return folder, nil
	}
	return homeDir()
}

func homeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return home, nil
}

// SaveLastFolder writes folder to the settings file, replacing its contents.
func (p *FileProvider) SaveLastFolder(folder string) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	v := p.newViper()
	v.Set(lastFolderKey, folder)
	if err := v.WriteConfigAs(p.path); err != nil {
		return fmt.Errorf("writing settings %s: %w", p.path, err)
	}
	return nil
}

func (p *FileProvider) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(p.path)
	v.SetConfigType("json")
	return v
}

// MemoryProvider keeps the last folder in memory only.
type MemoryProvider struct {
	Folder   string
	Fallback string
}

// LastFolder returns the stored folder or the fallback.
func (m *MemoryProvider) LastFolder() (string, error) {
	if m.Folder == "" {
		return m.Fallback, nil
	}
	return m.Folder, nil
}

// SavedFolder returns the stored folder, if any.
func (m *MemoryProvider) SavedFolder() (string, bool, error) {
	return m.Folder, m.Folder != "", nil
}

// SaveLastFolder stores folder.
func (m *MemoryProvider) SaveLastFolder(folder string) error {
	m.Folder = folder
	return nil
}
