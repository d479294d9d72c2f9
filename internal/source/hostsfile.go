package source

import (
	"bytes"
	"os"
	"sort"
	"strings"

	"github.com/jaytaylor/go-hostsfile"

	"github.com/Control-D-Inc/hostname"
)

// ReadHostsFile returns all hostnames and aliases found in the hosts(5) file
// at path, deduplicated and sorted.
func ReadHostsFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseHosts(content)
}

// The hosts parser splits fields with strings.Fields, which also splits on
// Unicode spaces. Those are escaped before parsing and restored afterwards,
// so a name like "foo\u00a0bar" stays one (invalid) name. NUL is the escape
// byte and is escaped itself.
var (
	unicodeSpaceEscaper = strings.NewReplacer(
		"\x00", "\x00z",
		"\u0085", "\x00a",
		"\u00A0", "\x00b",
		"\u1680", "\x00c",
		"\u2000", "\x00d",
		"\u2001", "\x00e",
		"\u2002", "\x00f",
		"\u2003", "\x00g",
		"\u2004", "\x00h",
		"\u2005", "\x00i",
		"\u2006", "\x00j",
		"\u2007", "\x00k",
		"\u2008", "\x00l",
		"\u2009", "\x00m",
		"\u200A", "\x00n",
		"\u2028", "\x00o",
		"\u2029", "\x00p",
		"\u202F", "\x00q",
		"\u205F", "\x00r",
		"\u3000", "\x00s",
	)
	unicodeSpaceUnescaper = strings.NewReplacer(
		"\x00z", "\x00",
		"\x00a", "\u0085",
		"\x00b", "\u00A0",
		"\x00c", "\u1680",
		"\x00d", "\u2000",
		"\x00e", "\u2001",
		"\x00f", "\u2002",
		"\x00g", "\u2003",
		"\x00h", "\u2004",
		"\x00i", "\u2005",
		"\x00j", "\u2006",
		"\x00k", "\u2007",
		"\x00l", "\u2008",
		"\x00m", "\u2009",
		"\x00n", "\u200A",
		"\x00o", "\u2028",
		"\x00p", "\u2029",
		"\x00q", "\u202F",
		"\x00r", "\u205F",
		"\x00s", "\u3000",
	)
)

func parseHosts(content []byte) ([]string, error) {
	escaped := unicodeSpaceEscaper.Replace(string(stripComments(content)))
	hosts, err := hostsfile.ParseHosts([]byte(escaped), nil)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	names := make([]string, 0, len(hosts))
	for ip, hns := range hosts {
		if len(hns) == 0 {
			hostname.Logger.Load().Debug().Msgf("hosts entry %s has no hostname", ip)
		}
		for _, hn := range hns {
			hn = unicodeSpaceUnescaper.Replace(hn)
			if _, ok := seen[hn]; ok {
				continue
			}
			seen[hn] = struct{}{}
			names = append(names, hn)
		}
	}
	sort.Strings(names)
	return names, nil
}

// stripComments drops everything after '#' on each line, so trailing comments
// are not mistaken for aliases.
func stripComments(content []byte) []byte {
	lines := bytes.Split(content, []byte("\n"))
	for i, line := range lines {
		if idx := bytes.IndexByte(line, '#'); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return bytes.Join(lines, []byte("\n"))
}
