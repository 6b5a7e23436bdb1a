package appcore

import (
	"io"

	"fastacheck-core/report"
	"fastacheck/internal/output"
	"fastacheck/internal/summary"
	"fastacheck/internal/writers"
)

// ReportWriterFactory picks the stdout writer for one run.
type ReportWriterFactory struct {
	Format  string
	Header  bool
	Summary bool
}

func NewReportWriterFactory(format string, header, summary bool) ReportWriterFactory {
	return ReportWriterFactory{Format: format, Header: header, Summary: summary}
}

func (w ReportWriterFactory) NeedSummary() bool { return w.Summary }

// SummaryOnStderr is true when the stdout format has no place for the
// summary, so it is drawn on stderr next to the diagnostics.
func (w ReportWriterFactory) SummaryOnStderr() bool {
	return w.Summary && w.Format != output.FormatJSON
}

func (w ReportWriterFactory) Write(out io.Writer, source string, rep report.Report, st *summary.Stats) error {
	args := writers.ReportArgs{Report: rep, Source: source, Header: w.Header}
	if !w.SummaryOnStderr() {
		args.Summary = st
	}
	return writers.WriteReport(w.Format, out, args)
}
