// Package report checks collected hostnames and renders the results.
package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/Control-D-Inc/hostname"
	"github.com/Control-D-Inc/hostname/internal/source"
)

// Result is the outcome of checking a single hostname.
type Result struct {
	Origin   string
	Hostname string
	Valid    bool
}

// Check validates every entry, preserving order.
func Check(entries []source.Entry) []Result {
	results := make([]Result, len(entries))
	for i, e := range entries {
		results[i] = Result{
			Origin:   e.Origin,
			Hostname: e.Hostname,
			Valid:    hostname.IsValid(e.Hostname),
		}
	}
	return results
}

// Summary returns the number of valid and invalid results.
func Summary(results []Result) (valid, invalid int) {
	for _, r := range results {
		if r.Valid {
			valid++
		} else {
			invalid++
		}
	}
	return valid, invalid
}

// Render writes results as a table to w. If onlyInvalid is true, valid
// results are omitted.
func Render(w io.Writer, results []Result, onlyInvalid bool) {
	data := make([][]string, 0, len(results))
	for _, r := range results {
		if onlyInvalid && r.Valid {
			continue
		}
		data = append(data, []string{r.Origin, displayName(r), validString(r.Valid)})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Origin", "Hostname", "Valid"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
}

// displayName quotes invalid hostnames, so whitespace, control characters
// and escape sequences are shown instead of interpreted by the terminal.
// Valid hostnames are printable ASCII and shown as is.
func displayName(r Result) string {
	if r.Valid {
		return r.Hostname
	}
	return strconv.Quote(r.Hostname)
}

func validString(valid bool) string {
	if valid {
		return "yes"
	}
	return "no"
}
