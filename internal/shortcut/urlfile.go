// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shortcut

import (
	"fmt"

	"gopkg.in/ini.v1"
)

const (
	urlSection = "InternetShortcut"
	urlKey     = "URL"
)

// iniOptions mirrors how Windows shortcut readers treat .url files: key
// names are case-insensitive, section names are not, and a "#" or ";"
// inside a value is part of the URL rather than a comment.
var iniOptions = ini.LoadOptions{
	InsensitiveKeys:         true,
	IgnoreInlineComment:     true,
	SkipUnrecognizableLines: true,
}

// extractURLFile reads the URL key of the [InternetShortcut] section.
func extractURLFile(path string) (string, error) {
	cfg, err := ini.LoadSources(iniOptions, path)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}

	sec, err := cfg.GetSection(urlSection)
	if err != nil {
		return "", err
	}

	key, err := sec.GetKey(urlKey)
	if err != nil {
		return "", err
	}

	// String would expand %(name)s references inside the URL.
	return key.Value(), nil
}
