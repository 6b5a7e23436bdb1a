// internal/cli/options_test.go
package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastacheck-core/fasta"
)

type captured struct {
	validate *Options
	serve    *ServeOptions
}

func execute(t *testing.T, args ...string) (captured, int, string, error) {
	t.Helper()
	var c captured
	code := -1
	h := Handlers{
		Validate: func(_ context.Context, o Options) int { c.validate = &o; return 7 },
		Serve:    func(_ context.Context, o ServeOptions) int { c.serve = &o; return 0 },
	}
	var out bytes.Buffer
	root := NewRootCmd(h, &code)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return c, code, out.String(), err
}

func TestDefaults(t *testing.T) {
	c, code, _, err := execute(t, "ref.fa")
	require.NoError(t, err)
	assert.Equal(t, 7, code, "handler exit code is propagated")
	require.NotNil(t, c.validate)
	o := *c.validate
	assert.Equal(t, "ref.fa", o.Input)
	assert.Equal(t, "tsv", o.Format)
	assert.False(t, o.NoHeader)
	assert.Zero(t, o.ChunkSize)
	assert.Zero(t, o.DiagnosticsExitCode)
}

func TestAllFlags(t *testing.T) {
	c, _, _, err := execute(t,
		"--config", "cfg.yml", "--format", "json", "--sarif", "out.sarif",
		"--no-header", "--chunk-size", "65536", "--summary",
		"--diagnostics-exit-code", "4", "--log-level", "debug", "-q",
		"in.fasta.gz",
	)
	require.NoError(t, err)
	o := *c.validate
	assert.Equal(t, Options{
		Input: "in.fasta.gz", ConfigPath: "cfg.yml", LogLevel: "debug", Quiet: true,
		Format: "json", SarifPath: "out.sarif", NoHeader: true, Summary: true,
		ChunkSize: 65536, DiagnosticsExitCode: 4,
	}, o)
}

func TestStdinDash(t *testing.T) {
	c, _, _, err := execute(t, "-")
	require.NoError(t, err)
	assert.Equal(t, "-", c.validate.Input)
}

func TestNoFilePrintsUsage(t *testing.T) {
	c, code, out, err := execute(t)
	require.NoError(t, err)
	assert.Nil(t, c.validate)
	assert.Equal(t, -1, code)
	assert.Contains(t, out, "fastacheck [flags] FILE")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--frobnicate", "a.fa"}},
		{"bad format", []string{"--format", "xml", "a.fa"}},
		{"negative chunk", []string{"--chunk-size", "-1", "a.fa"}},
		{"exit code range", []string{"--diagnostics-exit-code", "300", "a.fa"}},
		{"bad level", []string{"--log-level", "loud", "a.fa"}},
		{"two files", []string{"a.fa", "b.fa"}},
		{"serve positional", []string{"serve", "extra"}},
		{"not an int", []string{"--chunk-size", "big", "a.fa"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, IsUsage(err), "want UsageError, got %T: %v", err, err)
			assert.Nil(t, c.validate)
		})
	}
}

func TestUnsupportedSuffix(t *testing.T) {
	_, _, _, err := execute(t, "reads.txt")
	require.Error(t, err)
	assert.True(t, IsUsage(err))
	assert.True(t, errors.Is(err, fasta.ErrUnsupportedSuffix))
}

func TestServeInheritsPersistentFlags(t *testing.T) {
	c, code, _, err := execute(t, "serve", "--config", "c.yml", "--addr", ":9999", "--log-level", "warn")
	require.NoError(t, err)
	assert.Zero(t, code)
	require.NotNil(t, c.serve)
	assert.Equal(t, ServeOptions{ConfigPath: "c.yml", LogLevel: "warn", Addr: ":9999"}, *c.serve)
}

func TestVersion(t *testing.T) {
	_, _, out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fastacheck version ")
}

func TestHelp(t *testing.T) {
	_, _, out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--diagnostics-exit-code")
	assert.Contains(t, out, "serve")
	assert.Contains(t, out, "json | jsonl | tsv", "--format lists the registered writers")
	assert.Contains(t, out, "without its leading '>'")
}
