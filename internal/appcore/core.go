// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"fastacheck-core/fasta"
	"fastacheck-core/report"
	"fastacheck-core/scan"
	"fastacheck/internal/output"
	"fastacheck/internal/summary"
	"fastacheck/internal/writers"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

type Options struct {
	Input string
	Stdin io.Reader // used for Input "-"; nil means os.Stdin

	SarifPath string

	Scan scan.Options

	DiagnosticsExitCode int
}

type WriterFactory interface {
	NeedSummary() bool
	SummaryOnStderr() bool
	Write(out io.Writer, source string, rep report.Report, st *summary.Stats) error
}

func open(o Options) (fasta.Source, error) {
	if o.Input == "-" && o.Stdin != nil {
		return fasta.OpenStdin(o.Stdin)
	}
	return fasta.Open(o.Input)
}

// Run validates one input and writes every output. stdout gets the record
// report; stderr gets the summary (tsv only), the diagnostics table and
// plain error lines. The returned value is the process exit code.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	wf WriterFactory,
	log hclog.Logger,
) int {
	src, err := open(o)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, fasta.ErrUnsupportedSuffix) {
			return ExitUsage
		}
		return ExitIO
	}
	defer src.Close()

	log.Debug("scan started", "input", o.Input, "chunk_size", o.Scan.ChunkSize)
	rep, err := scan.Scan(parent, src, o.Scan)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitCanceled
		}
		fmt.Fprintf(stderr, "%s: %v\n", o.Input, err)
		return ExitIO
	}
	byCat := rep.CountByCategory()
	log.Debug("scan finished",
		"input", o.Input,
		"records", len(rep.Records),
		"diagnostics", len(rep.Diagnostics),
		"defline", byCat[report.CategoryDefline],
		"nucleotide", byCat[report.CategoryNucleotide],
		"sequence", byCat[report.CategorySequence],
	)

	var st *summary.Stats
	if wf.NeedSummary() {
		s := summary.Compute(rep.Records)
		st = &s
	}

	outw := bufio.NewWriter(stdout)
	werr := wf.Write(outw, o.Input, rep, st)
	if werr == nil {
		werr = outw.Flush()
	}
	if writers.IsBrokenPipe(werr) {
		log.Debug("stdout closed early")
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitIO
	}

	if o.SarifPath != "" {
		if err := output.WriteSARIFFile(o.SarifPath, o.Input, rep); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitIO
		}
		log.Debug("sarif written", "path", o.SarifPath, "results", len(rep.Diagnostics))
	}

	if st != nil && wf.SummaryOnStderr() {
		if writers.IgnoreBrokenPipe(output.WriteSummary(stderr, *st)) != nil {
			return ExitIO
		}
	}
	if writers.IgnoreBrokenPipe(output.WriteDiagnostics(stderr, rep.Diagnostics)) != nil {
		return ExitIO
	}

	if rep.HasDiagnostics() {
		return o.DiagnosticsExitCode
	}
	return ExitOK
}
