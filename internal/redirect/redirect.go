// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package redirect writes HTML pages that send the browser straight to a
// URL with a zero-delay meta refresh and show a fallback link.
package redirect

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
)

// OutputName derives the redirect file name from a shortcut file name: the
// extension is dropped, spaces become underscores, and ".html" is appended.
// "My Link.url" becomes "My_Link.html".
func OutputName(name string) string {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// Dotfiles such as ".url" keep their whole name.
		stem = base
	}
	return strings.ReplaceAll(stem, " ", "_") + ".html"
}

// Render returns the redirect page for url. The output depends only on
// name and url, so rewriting an unchanged shortcut yields identical bytes.
func Render(name, url string) []byte {
	title := html.EscapeString(OutputName(name))
	href := html.EscapeString(url)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n")
	b.WriteString("  <head>\n")
	b.WriteString("    <meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "    <meta http-equiv=\"refresh\" content=\"0; url=%s\">\n", href)
	fmt.Fprintf(&b, "    <title>%s</title>\n", title)
	b.WriteString("  </head>\n")
	b.WriteString("  <body>\n")
	fmt.Fprintf(&b, "    <p><a href=\"%s\">Click here if not redirected</a></p>\n", href)
	b.WriteString("  </body>\n")
	b.WriteString("</html>\n")
	return []byte(b.String())
}

// Write renders the redirect page for url and writes it into dir under
// OutputName(name), replacing any existing file. It returns the path written.
func Write(name, url, dir string) (string, error) {
	path := filepath.Join(dir, OutputName(name))
	if err := os.WriteFile(path, Render(name, url), 0o644); err != nil {
		return "", fmt.Errorf("writing redirect %s: %w", path, err)
	}
	return path, nil
}
