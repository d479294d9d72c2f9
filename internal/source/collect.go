package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

// Kind is the format of an Input.
type Kind int

const (
	// KindList is a plain list, one hostname per line.
	KindList Kind = iota
	// KindHosts is a hosts(5) file.
	KindHosts
)

// String returns human-readable format of k.
func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindHosts:
		return "hosts"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Stdin is the Input path that reads from standard input.
const Stdin = "-"

// Input describes a file to read hostnames from.
type Input struct {
	Kind Kind
	Path string
}

// Entry is a candidate hostname and where it came from.
type Entry struct {
	Origin   string
	Hostname string
}

var errStdinHosts = errors.New("hosts file can not be read from stdin")

// Collect reads all inputs concurrently and returns their entries, in input order.
//
// stdin is used for inputs with Path == Stdin, which must be of KindList and
// appear at most once.
func Collect(ctx context.Context, stdin io.Reader, inputs []Input) ([]Entry, error) {
	stdinUsed := false
	for _, s := range inputs {
		if s.Path != Stdin {
			continue
		}
		if s.Kind != KindList {
			return nil, errStdinHosts
		}
		if stdinUsed {
			return nil, errors.New("stdin can only be read once")
		}
		stdinUsed = true
	}

	results := make([][]string, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range inputs {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			names, err := read(stdin, s)
			if err != nil {
				return fmt.Errorf("%s %s: %w", s.Kind, originOf(s), err)
			}
			results[i] = names
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var entries []Entry
	for i, names := range results {
		origin := originOf(inputs[i])
		for _, n := range names {
			entries = append(entries, Entry{Origin: origin, Hostname: n})
		}
	}
	return entries, nil
}

func read(stdin io.Reader, s Input) ([]string, error) {
	switch s.Kind {
	case KindHosts:
		return ReadHostsFile(s.Path)
	case KindList:
		if s.Path == Stdin {
			return ReadList(stdin)
		}
		f, err := os.Open(s.Path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadList(f)
	}
	return nil, fmt.Errorf("unknown kind: %s", s.Kind)
}

func originOf(s Input) string {
	if s.Path == Stdin {
		return "stdin"
	}
	return s.Path
}
