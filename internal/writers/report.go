// internal/writers/report.go
package writers

import (
	"fmt"
	"io"

	"fastacheck-core/report"
	"fastacheck/internal/output"
	"fastacheck/internal/summary"
)

// ReportArgs is the payload every report writer receives.
type ReportArgs struct {
	Report  report.Report
	Source  string
	Header  bool
	Summary *summary.Stats // nil unless --summary
}

func reportArgs(payload interface{}) (ReportArgs, error) {
	args, ok := payload.(ReportArgs)
	if !ok {
		return ReportArgs{}, fmt.Errorf("report writer: unexpected payload %T", payload)
	}
	return args, nil
}

func init() {
	// Record table; diagnostics go to stderr separately.
	RegisterReport(output.FormatTSV, func(w io.Writer, payload interface{}) error {
		args, err := reportArgs(payload)
		if err != nil {
			return err
		}
		return output.WriteTSV(w, args.Report.Records, args.Header)
	})

	// Whole report as one v1 document.
	RegisterReport(output.FormatJSON, func(w io.Writer, payload interface{}) error {
		args, err := reportArgs(payload)
		if err != nil {
			return err
		}
		v := output.ToAPIReport(args.Report, args.Source)
		if args.Summary != nil {
			v.Summary = output.ToAPISummary(*args.Summary)
		}
		return output.WriteJSON(w, v)
	})

	// One record per line.
	RegisterReport(output.FormatJSONL, func(w io.Writer, payload interface{}) error {
		args, err := reportArgs(payload)
		if err != nil {
			return err
		}
		return output.WriteJSONL(w, args.Report.Records, IsBrokenPipe)
	})
}
