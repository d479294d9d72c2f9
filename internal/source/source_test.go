package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Control-D-Inc/hostname"
)

func TestReadList(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single", "example.com", []string{"example.com"}},
		{"crlf", "foo\r\nbar\r\n", []string{"foo", "bar"}},
		{"comments and blanks", "# header\n\nfoo\n  \n#bar\nbaz\n", []string{"foo", "baz"}},
		{"trimmed", "  foo  \n\tbar\t\n", []string{"foo", "bar"}},
		{"interior space kept", "asd f@\n", []string{"asd f@"}},
		{"invalid kept", "-invalid-name\n.invalid\n", []string{"-invalid-name", ".invalid"}},
		{"no trailing newline", "foo\nbar", []string{"foo", "bar"}},
		{"nbsp kept", "example.com\u00a0\n", []string{"example.com\u00a0"}},
		{"nel kept", "\u0085example.com\n", []string{"\u0085example.com"}},
		{"ideographic space kept", "exa\u3000mple\n", []string{"exa\u3000mple"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReadList(strings.NewReader(tc.content))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadList_unicodeSpaceStaysInvalid(t *testing.T) {
	got, err := ReadList(strings.NewReader("example.com\u00a0\n\u00a0example.com\n"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, name := range got {
		assert.False(t, hostname.IsValid(name), "%q", name)
	}
}

func TestReadList_longLine(t *testing.T) {
	long := strings.Repeat("a", 200*1024)
	got, err := ReadList(strings.NewReader("short\n" + long + "\nafter\n"))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, long, got[1])
	assert.True(t, hostname.IsValid(got[1]))
}

var hostsContent = `
# The following lines are desirable for IPv4 capable hosts
127.0.0.1	localhost localhost.localdomain
192.168.1.10	nas.home.arpa nas # storage
192.168.1.11	printer_1
::1		localhost ip6-localhost ip6-loopback
10.0.0.1
`

func Test_parseHosts(t *testing.T) {
	got, err := parseHosts([]byte(hostsContent))
	require.NoError(t, err)
	want := []string{
		"ip6-localhost",
		"ip6-loopback",
		"localhost",
		"localhost.localdomain",
		"nas",
		"nas.home.arpa",
		"printer_1",
	}
	assert.Equal(t, want, got)
}

func Test_parseHosts_unicodeSpace(t *testing.T) {
	content := "192.168.1.20 nas\u00a0box printer\u2003one\n192.168.1.21 nul\x00byte\n"
	got, err := parseHosts([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, []string{"nas\u00a0box", "nul\x00byte", "printer\u2003one"}, got)
	for _, name := range got {
		assert.False(t, hostname.IsValid(name), "%q", name)
	}
}

func TestReadHostsFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "hosts")
	require.NoError(t, os.WriteFile(p, []byte(hostsContent), 0600))

	got, err := ReadHostsFile(p)
	require.NoError(t, err)
	assert.Contains(t, got, "nas.home.arpa")
	assert.NotContains(t, got, "storage")

	_, err = ReadHostsFile(filepath.Join(dir, "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "list.txt")
	hosts := filepath.Join(dir, "hosts")
	require.NoError(t, os.WriteFile(list, []byte("b.example\na.example\n"), 0600))
	require.NoError(t, os.WriteFile(hosts, []byte("127.0.0.1 localhost\n"), 0600))

	entries, err := Collect(context.Background(), strings.NewReader("-invalid-name\n"), []Input{
		{Kind: KindHosts, Path: hosts},
		{Kind: KindList, Path: Stdin},
		{Kind: KindList, Path: list},
	})
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Origin: hosts, Hostname: "localhost"},
		{Origin: "stdin", Hostname: "-invalid-name"},
		{Origin: list, Hostname: "b.example"},
		{Origin: list, Hostname: "a.example"},
	}, entries)
}

func TestCollect_errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		inputs []Input
	}{
		{"missing file", []Input{{Kind: KindList, Path: filepath.Join(dir, "missing")}}},
		{"stdin hosts", []Input{{Kind: KindHosts, Path: Stdin}}},
		{"stdin twice", []Input{{Kind: KindList, Path: Stdin}, {Kind: KindList, Path: Stdin}}},
		{"unknown kind", []Input{{Kind: Kind(42), Path: filepath.Join(dir, "x")}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Collect(context.Background(), strings.NewReader(""), tc.inputs)
			assert.Error(t, err)
		})
	}
}

func TestCollect_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Collect(ctx, strings.NewReader("foo\n"), []Input{{Kind: KindList, Path: Stdin}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "list", KindList.String())
	assert.Equal(t, "hosts", KindHosts.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(p, []byte("foo\n"), 0600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{p}, func(path string) {
			select {
			case changed <- path:
			default:
			}
		})
	}()

	// The watcher may not be ready yet, keep writing until it notices.
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for got := ""; got == ""; {
		select {
		case got = <-changed:
			assert.Equal(t, p, got)
		case <-ticker.C:
			require.NoError(t, os.WriteFile(p, []byte("bar\n"), 0600))
		case <-deadline:
			t.Fatal("no change event received")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatch_missingDir(t *testing.T) {
	err := Watch(context.Background(), []string{filepath.Join(t.TempDir(), "nope", "list.txt")}, func(string) {})
	assert.Error(t, err)
}
