// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"fastacheck-core/fasta"
	"fastacheck/internal/output"
	"fastacheck/internal/writers"
)

// Options holds the flags and argument of a validation run.
type Options struct {
	Input string

	// Shared with serve
	ConfigPath string
	LogLevel   string
	Quiet      bool

	// Output
	Format    string
	SarifPath string
	NoHeader  bool
	Summary   bool

	// Performance
	ChunkSize int

	DiagnosticsExitCode int
}

// ServeOptions holds the flags of `fastacheck serve`.
type ServeOptions struct {
	ConfigPath string
	LogLevel   string
	Quiet      bool
	Addr       string
}

// UsageError marks errors caused by the command line itself.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// IsUsage reports whether err (or anything it wraps) is a UsageError.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "off"}

func bindShared(fs *pflag.FlagSet, config, level *string, quiet *bool) {
	fs.StringVar(config, "config", "", "YAML configuration file [built-in defaults]")
	fs.StringVar(level, "log-level", "", "log level: "+strings.Join(logLevels, " | ")+" [config, $FASTACHECK_LOG_LEVEL, info]")
	fs.BoolVarP(quiet, "quiet", "q", false, "only log errors [false]")
}

func (o *Options) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Format, "format", "f", output.FormatTSV, "stdout format: "+strings.Join(writers.Registered(), " | ")+" ["+output.FormatTSV+"]")
	fs.StringVar(&o.SarifPath, "sarif", "", "also write diagnostics as SARIF 2.1.0 to this path")
	fs.BoolVar(&o.NoHeader, "no-header", false, "suppress header line in TSV [false]")
	fs.BoolVar(&o.Summary, "summary", false, "report length statistics (stderr for tsv, embedded for json) [false]")
	fs.IntVar(&o.ChunkSize, "chunk-size", 0, "bytes read per chunk (0 = config or 4 MiB) [0]")
	fs.IntVar(&o.DiagnosticsExitCode, "diagnostics-exit-code", 0, "exit status when any diagnostic is reported [0]")
}

// Validate checks option values and the input suffix. Every error it
// returns is a UsageError.
func (o Options) Validate() error {
	if formats := writers.Registered(); !contains(formats, o.Format) {
		return usageErrorf("--format must be one of %s, got %q", strings.Join(formats, ", "), o.Format)
	}
	if o.ChunkSize < 0 {
		return usageErrorf("--chunk-size must be ≥ 0, got %d", o.ChunkSize)
	}
	if o.DiagnosticsExitCode < 0 || o.DiagnosticsExitCode > 125 {
		return usageErrorf("--diagnostics-exit-code must be in [0, 125], got %d", o.DiagnosticsExitCode)
	}
	if err := validateLevel(o.LogLevel); err != nil {
		return err
	}
	if o.Input == "" {
		return usageErrorf("missing FASTA file")
	}
	if fasta.KindOf(o.Input) == fasta.KindUnknown {
		return &UsageError{Err: fmt.Errorf("%w: %q", fasta.ErrUnsupportedSuffix, o.Input)}
	}
	return nil
}

func (o ServeOptions) Validate() error {
	return validateLevel(o.LogLevel)
}

func validateLevel(level string) error {
	if level != "" && !contains(logLevels, strings.ToLower(level)) {
		return usageErrorf("--log-level must be one of %s, got %q", strings.Join(logLevels, ", "), level)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
