// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"fastacheck/internal/appcore"
	"fastacheck/internal/cli"
	"fastacheck/internal/config"
	"fastacheck/internal/logging"
	"fastacheck/internal/runutil"
	"fastacheck/internal/server"
	"fastacheck/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	code := appcore.ExitOK
	root := cli.NewRootCmd(cli.Handlers{
		Validate: func(ctx context.Context, o cli.Options) int { return validate(ctx, o, stdout, stderr) },
		Serve:    func(ctx context.Context, o cli.ServeOptions) int { return serve(ctx, o, stderr) },
	}, &code)
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	if err := root.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		if errors.Is(err, context.Canceled) {
			return appcore.ExitCanceled
		}
		if cli.IsUsage(err) {
			_, _ = fmt.Fprintln(stderr, "Run 'fastacheck --help' for usage.")
		}
		return appcore.ExitUsage
	}

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return appcore.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitIO
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func loadConfig(path, level string, quiet bool, stderr io.Writer) (*config.Config, bool) {
	cfg, err := config.Load(path)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return nil, false
	}
	cfg.Logger.Level = runutil.EffectiveLogLevel(cfg.Logger.Level, level, quiet)
	return cfg, true
}

func validate(ctx context.Context, o cli.Options, stdout, stderr io.Writer) int {
	cfg, ok := loadConfig(o.ConfigPath, o.LogLevel, o.Quiet, stderr)
	if !ok {
		return appcore.ExitUsage
	}
	log := logging.New(cfg.Logger, "fastacheck", stderr)

	chunk, warns := runutil.EffectiveChunkSize(o.ChunkSize, cfg.Scanner.ChunkSize)
	for _, w := range warns {
		log.Warn(w)
	}
	sopt := cfg.ScanOptions()
	sopt.ChunkSize = chunk

	coreOpts := appcore.Options{
		Input:               o.Input,
		SarifPath:           o.SarifPath,
		Scan:                sopt,
		DiagnosticsExitCode: o.DiagnosticsExitCode,
	}
	writer := appcore.NewReportWriterFactory(o.Format, !o.NoHeader, o.Summary)
	return appcore.Run(ctx, stdout, stderr, coreOpts, writer, log)
}

func serve(ctx context.Context, o cli.ServeOptions, stderr io.Writer) int {
	cfg, ok := loadConfig(o.ConfigPath, o.LogLevel, o.Quiet, stderr)
	if !ok {
		return appcore.ExitUsage
	}
	if o.Addr != "" {
		cfg.Server.Addr = o.Addr
	}
	log := logging.New(cfg.Logger, "fastacheck.server", stderr)

	sopt := cfg.ScanOptions()
	sopt.ChunkSize, _ = runutil.EffectiveChunkSize(0, cfg.Scanner.ChunkSize)

	if err := server.New(cfg.Server, sopt, log).ListenAndServe(ctx); err != nil {
		log.Error("server failed", "error", err)
		return appcore.ExitIO
	}
	return appcore.ExitOK
}
