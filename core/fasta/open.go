// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedSuffix is returned by Open for paths whose suffix is neither
// a plain FASTA extension nor .gz.
var ErrUnsupportedSuffix = errors.New("the suffix of sequence file should be one of [.fa, .fsa, .fna, .fasta] or a combination of those with .gz")

// Kind tells Open which byte source to build.
type Kind int

const (
	KindUnknown Kind = iota
	KindPlain
	KindGzip
	KindStdin
)

// plainSuffixes are matched case-insensitively.
var plainSuffixes = map[string]bool{
	".fa":    true,
	".fsa":   true,
	".fna":   true,
	".fasta": true,
}

// KindOf classifies path by suffix. "-" means standard input.
func KindOf(path string) Kind {
	if path == "-" {
		return KindStdin
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".gz":
		return KindGzip
	case plainSuffixes[ext]:
		return KindPlain
	}
	return KindUnknown
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns the byte source for path. The suffix decides the variant
// before the file is touched, so an unsupported name fails without I/O.
// "-" reads standard input and detects gzip by its magic number (1F 8B).
func Open(path string) (Source, error) {
	kind := KindOf(path)
	switch kind {
	case KindUnknown:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSuffix, path)
	case KindStdin:
		return OpenStdin(os.Stdin)
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if kind == KindPlain {
		return &plainSource{rc: fh}, nil
	}
	gr, err := gzip.NewReader(bufio.NewReader(fh))
	if err != nil {
		_ = fh.Close()
		return nil, fmt.Errorf("gzip %s: %w", path, err)
	}
	return &gzipSource{rc: &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}}, nil
}

// OpenStdin builds a Source over in, decompressing when it starts with the
// gzip magic number.
func OpenStdin(in io.Reader) (Source, error) {
	br := bufio.NewReader(in)
	if magic, _ := br.Peek(2); len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip stdin: %w", err)
		}
		return &gzipSource{rc: gr}, nil
	}
	return &plainSource{rc: io.NopCloser(br)}, nil
}
