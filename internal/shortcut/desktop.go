// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shortcut

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const execPrefix = "Exec="

var errNoExecURL = errors.New("no Exec= line with an http URL")

// extractDesktopFile returns the value of the first Exec= line that holds
// an http(s) URL. Exec= lines with other commands are skipped.
func extractDesktopFile(path string, stripArgs bool) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	// Lines are read whole; comments and descriptions may be arbitrarily long.
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if strings.HasPrefix(line, execPrefix) {
			url := strings.TrimPrefix(strings.TrimSpace(line), execPrefix)
			if strings.HasPrefix(url, "http") {
				if stripArgs {
					url = stripFieldCodes(url)
				}
				return url, nil
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
	}
	return "", errNoExecURL
}

// stripFieldCodes removes trailing desktop-entry field codes (%u, %U, %f,
// %F and friends) from an Exec= value.
func stripFieldCodes(value string) string {
	fields := strings.Fields(value)
	for len(fields) > 1 && isFieldCode(fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " ")
}

func isFieldCode(s string) bool {
	return len(s) == 2 && s[0] == '%' && strings.ContainsRune("fFuUdDnNickvm", rune(s[1]))
}
