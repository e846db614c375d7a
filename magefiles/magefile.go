//go:build mage

// Package main contains Mage build targets for linkconv developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "linkconv"
	cmdPkg  = "./cmd/linkconv"
	sample  = "sample"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Clean removes build output and the sample folder.
func Clean() error {
	for _, dir := range []string{binDir, sample} {
		if err := sh.Rm(dir); err != nil {
			return err
		}
	}
	return nil
}

const sampleWebloc = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>URL</key>
	<string>https://www.apple.com/</string>
</dict>
</plist>
`

// sampleShortcuts maps file names under sample/ to their contents.
var sampleShortcuts = map[string]string{
	"Example Site.url":     "[InternetShortcut]\r\nURL=https://example.com/\r\n",
	"docs/Go Docs.desktop": "[Desktop Entry]\nType=Link\nName=Go Docs\nExec=https://go.dev/doc/ %u\n",
	"docs/Apple.webloc":    sampleWebloc,
	"notes.txt":            "not a shortcut\n",
}

// Sample writes a folder of example shortcuts for trying the CLI.
func Sample() error {
	for name, content := range sampleShortcuts {
		path := filepath.Join(sample, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	fmt.Println("Sample shortcuts written.")
	return nil
}

// Stats prints project metrics: Go production and test LOC.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), "_") || (d.Name() == sample && path != root) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}
