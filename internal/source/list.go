// Package source reads candidate hostnames from lists, hosts files and readers.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// asciiSpace is the whitespace trimmed around list lines. Unicode spaces are
// kept, so they are reported as part of an invalid hostname.
const asciiSpace = " \t\r\n\v\f"

// ReadList reads one hostname per line from r. Lines may be of any length.
//
// Surrounding ASCII whitespace is trimmed. Blank lines and lines starting
// with '#' are skipped. Anything else is returned as is, valid or not.
func ReadList(r io.Reader) ([]string, error) {
	var names []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading list: %w", err)
		}
		if line = strings.Trim(line, asciiSpace); line != "" && !strings.HasPrefix(line, "#") {
			names = append(names, line)
		}
		if err != nil {
			return names, nil
		}
	}
}
