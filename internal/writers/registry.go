// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// ReportWriters maps a --format value to its handler. Register in init()
// blocks; the last registration for a format wins.
var ReportWriters = map[string]func(w io.Writer, data interface{}) error{}

func RegisterReport(format string, fn func(io.Writer, interface{}) error) { ReportWriters[format] = fn }

// WriteReport dispatches payload to the writer registered for format.
func WriteReport(format string, w io.Writer, payload interface{}) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, payload)
}

// Registered lists the known formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(ReportWriters))
	for f := range ReportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
