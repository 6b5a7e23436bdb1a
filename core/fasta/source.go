package fasta

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
)

// ChunkSize is the default number of bytes requested per ReadChunk call.
// It only affects throughput, never results.
const ChunkSize = 4 << 20 // 4 MiB

// Source yields raw FASTA bytes in chunks, independent of compression.
//
// ReadChunk fills at most len(buf) bytes and reports how many were written.
// Only buf[:n] is content. End of input is (0, io.EOF); a non-EOF error is
// fatal for the scan.
type Source interface {
	ReadChunk(buf []byte) (int, error)
	Close() error
}

type plainSource struct {
	rc io.ReadCloser
}

func (s *plainSource) ReadChunk(buf []byte) (int, error) { return readChunk(s.rc, buf) }
func (s *plainSource) Close() error                      { return s.rc.Close() }

type gzipSource struct {
	rc io.ReadCloser
}

func (s *gzipSource) ReadChunk(buf []byte) (int, error) {
	n, err := readChunk(s.rc, buf)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("gzip: %w", err)
	}
	return n, err
}
func (s *gzipSource) Close() error { return s.rc.Close() }

// readChunk reads until buf is full or the reader is exhausted, so a short
// read in the middle of the stream is never mistaken for end of input.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err == io.EOF {
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// NewSource wraps an already-open reader. If gzipped is true the stream is
// decompressed first.
func NewSource(r io.Reader, gzipped bool) (Source, error) {
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(r)
	}
	if !gzipped {
		return &plainSource{rc: rc}, nil
	}
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	return &gzipSource{rc: &multiReadCloser{Reader: gr, closers: []io.Closer{gr, rc}}}, nil
}

// ErrTooLarge is returned by a limited Source once its byte budget is spent.
var ErrTooLarge = errors.New("input exceeds size limit")

type limitSource struct {
	Source
	left int64
}

// Limit returns a Source that fails with ErrTooLarge as soon as src has
// produced more than max bytes. Bytes past the limit are not returned.
func Limit(src Source, max int64) Source {
	return &limitSource{Source: src, left: max}
}

func (s *limitSource) ReadChunk(buf []byte) (int, error) {
	n, err := s.Source.ReadChunk(buf)
	s.left -= int64(n)
	if s.left < 0 {
		return 0, ErrTooLarge
	}
	return n, err
}
