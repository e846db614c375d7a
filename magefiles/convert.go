//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Convert builds the CLI and converts the shortcuts in sample/, writing
// settings and history under bin/ so the user's own state is untouched.
func Convert() error {
	mg.Deps(Build, Sample)
	fmt.Println("[convert] Converting sample shortcuts.")
	return sh.RunV(filepath.Join(binDir, binName), "convert", sample,
		"--settings-file", filepath.Join(binDir, "settings.json"),
		"--history-db", filepath.Join(binDir, "history.db"),
		"--log-level", "debug")
}
