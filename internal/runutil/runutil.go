// internal/runutil/runutil.go
package runutil

import (
	"fmt"

	"fastacheck-core/fasta"
)

const (
	// MinChunkSize is the smallest chunk that does not warn.
	MinChunkSize = 4 << 10
	// MaxChunkSize caps the read buffer.
	MaxChunkSize = 256 << 20
)

// EffectiveChunkSize picks the read buffer size. A positive flag wins over
// the config value; zero in both falls back to fasta.ChunkSize.
// Rules:
//   - sizes below MinChunkSize are kept but warned about (results are
//     identical, only throughput suffers)
//   - sizes above MaxChunkSize are clamped with a warning
func EffectiveChunkSize(flagSize, cfgSize int) (int, []string) {
	size := cfgSize
	if flagSize > 0 {
		size = flagSize
	}
	if size <= 0 {
		return fasta.ChunkSize, nil
	}
	var warns []string
	if size < MinChunkSize {
		warns = append(warns, fmt.Sprintf("warning: chunk size %d is below %d bytes; scanning will be slow", size, MinChunkSize))
	}
	if size > MaxChunkSize {
		warns = append(warns, fmt.Sprintf("warning: chunk size %d exceeds %d bytes; clamping", size, MaxChunkSize))
		size = MaxChunkSize
	}
	return size, warns
}

// EffectiveLogLevel resolves the log level: --quiet forces ERROR, then the
// --log-level flag, then the config value (which may be empty so the
// logger falls back to the environment).
func EffectiveLogLevel(cfgLevel, flagLevel string, quiet bool) string {
	if quiet {
		return "ERROR"
	}
	if flagLevel != "" {
		return flagLevel
	}
	return cfgLevel
}
