// Package scan is the single-pass FASTA validator. It classifies every byte
// as header or body from the byte itself and the one before it, so records
// may span any number of chunk refills without being buffered.
package scan

import (
	"context"
	"fmt"
	"io"

	"fastacheck-core/fasta"
	"fastacheck-core/report"
	"fastacheck-core/rules"
	"fastacheck-core/seqid"
)

// DefaultMaxDeflineBytes caps the buffered defline.
const DefaultMaxDeflineBytes = 64 << 10

// Options configure one scan.
type Options struct {
	Limits          rules.Limits
	Organism        report.Organism
	ChunkSize       int // bytes per ReadChunk; <=0 uses fasta.ChunkSize
	MaxDeflineBytes int // <=0 disables the cap
}

// DefaultOptions returns the SARS-CoV-2 profile with a 4 MiB chunk.
func DefaultOptions() Options {
	return Options{
		Limits:          rules.DefaultLimits(),
		Organism:        report.DefaultOrganism(),
		ChunkSize:       fasta.ChunkSize,
		MaxDeflineBytes: DefaultMaxDeflineBytes,
	}
}

// entry is the record whose body is being read.
type entry struct {
	rawID     string // marker included
	id        string
	line      int
	length    int
	hasBody   bool // a body byte closed the defline
	ambiguous int
	lastBase  byte
	lastLine  int
	lastCol   int
}

// Scanner holds the state of one validation run. Feed it bytes in any
// chunking, then call Finish once. A Scanner is not safe for concurrent use.
type Scanner struct {
	opt Options
	out *report.Collector

	line, col int
	prev      byte
	seen      bool // false until the first byte; stands in for line start

	inHeader   bool
	header     []byte
	headerLine int
	truncated  bool

	cur      *entry // nil until the first defline is closed
	preamble bool
	done     bool
}

// New returns a Scanner positioned at line 1.
func New(opt Options) *Scanner {
	return &Scanner{
		opt:    opt,
		out:    report.NewCollector(opt.Organism),
		line:   1,
		header: make([]byte, 0, 256),
	}
}

// Feed processes p. Only the bytes in p are looked at.
func (s *Scanner) Feed(p []byte) {
	for _, c := range p {
		s.step(c)
	}
}

// Write makes Scanner an io.Writer; it never fails.
func (s *Scanner) Write(p []byte) (int, error) {
	s.Feed(p)
	return len(p), nil
}

func (s *Scanner) step(c byte) {
	if c == '\n' {
		s.line++
		s.col = 0
	}
	lineStart := !s.seen || s.prev == '\n'

	switch {
	case c == '>' && lineStart:
		if s.inHeader {
			// header directly followed by a header: record without body
			s.closeHeader()
		}
		s.trailingN()
		s.inHeader = true
		s.headerLine = s.line
		s.truncated = false
		s.col = 1
		s.header = append(s.header[:0], c)

	case c == '>':
		// never part of a defline or a body
		s.col++
		rules.UnexpectedMarker(s.out, s.curID(), s.line, s.col)

	default:
		if s.inHeader && s.prev == '\n' {
			s.inHeader = false
			s.closeHeader()
			s.cur.hasBody = true
		}
		if s.inHeader {
			s.appendHeader(c)
		} else {
			s.body(c)
		}
	}

	s.prev = c
	s.seen = true
}

func (s *Scanner) appendHeader(c byte) {
	if c != '\n' {
		s.col++
	}
	if max := s.opt.MaxDeflineBytes; max > 0 && len(s.header) >= max {
		if !s.truncated {
			s.truncated = true
			rules.DeflineTruncated(s.out, s.headerLine, max)
		}
		return
	}
	s.header = append(s.header, c)
}

func (s *Scanner) body(c byte) {
	if c == '\n' {
		return
	}
	s.col++

	r := s.cur
	if r == nil {
		if !s.preamble {
			s.preamble = true
			rules.Preamble(s.out, s.line)
		}
		if !rules.IsNucleotide(c) {
			rules.InvalidChar(s.out, "", c, s.line, s.col)
		}
		return
	}

	r.length++
	r.lastBase, r.lastLine, r.lastCol = c, s.line, s.col
	if r.length == 1 && rules.IsAmbiguous(c) {
		rules.LeadingN(s.out, r.id, s.line, s.col)
	}
	switch {
	case rules.IsAmbiguous(c):
		r.ambiguous++
	case rules.IsNucleotide(c):
	default:
		rules.InvalidChar(s.out, r.id, c, s.line, s.col)
	}
}

// closeHeader finalizes the current record and starts a new one from the
// buffered defline.
func (s *Scanner) closeHeader() {
	s.finalize()
	raw := seqid.Extract(string(s.header))
	s.cur = &entry{rawID: raw, id: seqid.Bare(raw), line: s.headerLine}
	s.header = s.header[:0]
}

func (s *Scanner) finalize() {
	r := s.cur
	if r == nil {
		return
	}
	lim := s.opt.Limits
	lim.Identifier(s.out, r.rawID, r.line)
	n := r.length
	if !r.hasBody {
		n = rules.UnknownLength
	}
	lim.Length(s.out, r.id, n, r.line)
	s.out.AddRecord(r.id, r.length, r.ambiguous, r.line)
	lim.Ambiguous(s.out, r.id, r.ambiguous, r.length, r.line)
	s.cur = nil
}

// trailingN looks at the last body base of the current record, not at the
// trailing window, so a missing final newline or blank lines do not hide it.
func (s *Scanner) trailingN() {
	if r := s.cur; r != nil && rules.IsAmbiguous(r.lastBase) {
		rules.TrailingN(s.out, r.id, r.lastLine, r.lastCol)
	}
}

func (s *Scanner) curID() string {
	if s.cur == nil {
		return ""
	}
	return s.cur.id
}

// Finish flushes the last record, runs the whole-file checks and returns
// the report. Later calls return the same report.
func (s *Scanner) Finish() report.Report {
	if s.done {
		return s.out.Report()
	}
	s.done = true
	if s.inHeader {
		s.inHeader = false
		s.closeHeader()
	}
	s.trailingN()
	s.finalize()
	rules.Duplicates(s.out, s.out.Records())
	return s.out.Report()
}

// Scan drains src through a fresh Scanner. ctx is checked between chunks
// only; a canceled scan returns ctx.Err() and no report.
func Scan(ctx context.Context, src fasta.Source, opt Options) (report.Report, error) {
	size := opt.ChunkSize
	if size <= 0 {
		size = fasta.ChunkSize
	}
	buf := make([]byte, size)
	s := New(opt)
	for {
		if err := ctx.Err(); err != nil {
			return report.Report{}, err
		}
		n, err := src.ReadChunk(buf)
		if err != nil && err != io.EOF {
			return report.Report{}, fmt.Errorf("read: %w", err)
		}
		s.Feed(buf[:n])
		if err == io.EOF {
			break
		}
	}
	return s.Finish(), nil
}

// ScanReader is Scan over an uncompressed io.Reader.
func ScanReader(ctx context.Context, r io.Reader, opt Options) (report.Report, error) {
	src, err := fasta.NewSource(r, false)
	if err != nil {
		return report.Report{}, err
	}
	return Scan(ctx, src, opt)
}
