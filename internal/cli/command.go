// internal/cli/command.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"fastacheck/internal/version"
)

// Handlers run the parsed commands and return a process exit code.
type Handlers struct {
	Validate func(ctx context.Context, o Options) int
	Serve    func(ctx context.Context, o ServeOptions) int
}

const long = `fastacheck validates FASTA nucleotide files against viral genome submission
rules in a single streaming pass. Records go to stdout as TSV (or JSON);
diagnostics are drawn as a table on stderr once the scan is done.
The seqid column holds the identifier without its leading '>'.

FILE may end in .fa, .fsa, .fna or .fasta, optionally followed by .gz.
Use "-" to read standard input (gzip is detected automatically).`

const examples = `  fastacheck sample.fasta
  fastacheck --format json --summary sample.fa.gz > report.json
  zcat batch.fa.gz | fastacheck --sarif batch.sarif -
  fastacheck serve --addr :8080`

// NewRootCmd builds the command tree. The exit code chosen by a handler is
// stored in *code; parse failures are returned from Execute as UsageError.
func NewRootCmd(h Handlers, code *int) *cobra.Command {
	var opts Options

	root := &cobra.Command{
		Use:                   "fastacheck [flags] FILE",
		Short:                 "Streaming FASTA submission validator",
		Long:                  long,
		Example:               examples,
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Args:                  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Usage()
			}
			opts.Input = args[0]
			if err := opts.Validate(); err != nil {
				return err
			}
			*code = h.Validate(cmd.Context(), opts)
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	bindShared(root.PersistentFlags(), &opts.ConfigPath, &opts.LogLevel, &opts.Quiet)
	opts.bind(root.Flags())

	root.AddCommand(newServeCmd(h, &opts, code), newVersionCmd())
	return root
}

func newServeCmd(h Handlers, shared *Options, code *int) *cobra.Command {
	var so ServeOptions
	cmd := &cobra.Command{
		Use:                   "serve",
		Short:                 "Serve the validator over HTTP",
		Long:                  "Serve GET /health and POST /api/v1/validate (FASTA body, optionally gzip-encoded).",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Args:                  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			so.ConfigPath, so.LogLevel, so.Quiet = shared.ConfigPath, shared.LogLevel, shared.Quiet
			if err := so.Validate(); err != nil {
				return err
			}
			*code = h.Serve(cmd.Context(), so)
			return nil
		},
	}
	cmd.Flags().StringVar(&so.Addr, "addr", "", "listen address [config server.addr]")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "version",
		Short:                 "Print the version number",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Args:                  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fastacheck version %s\n", version.Version)
		},
	}
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}
