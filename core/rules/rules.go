// Package rules implements the submission checks applied to each FASTA
// record. Every check appends zero or more diagnostics to a report.Sink and
// keeps no state between calls.
package rules

import (
	"errors"
	"fmt"

	"fastacheck-core/report"
)

// Rule ids are stable; SARIF and JSON outputs expose them.
const (
	RuleSeqIDMissing     = "seqid-missing"
	RuleSeqIDFirstChar   = "seqid-first-char"
	RuleSeqIDChar        = "seqid-invalid-char"
	RuleSeqIDLength      = "seqid-too-long"
	RuleSeqLength        = "seq-length"
	RuleLeadingN         = "leading-n"
	RuleTrailingN        = "trailing-n"
	RuleAmbiguous        = "ambiguous-fraction"
	RuleDuplicate        = "duplicate-seqid"
	RuleInvalidChar      = "invalid-char"
	RuleUnexpectedMarker = "unexpected-marker"
	RulePreamble         = "preamble"
	RuleDeflineTruncated = "defline-truncated"
)

// Descriptions maps rule ids to one-line summaries.
var Descriptions = map[string]string{
	RuleSeqIDMissing:     "Defline carries no sequence identifier.",
	RuleSeqIDFirstChar:   "Sequence identifier must start with a letter.",
	RuleSeqIDChar:        "Sequence identifier contains a character outside letters, digits and _ - * # . :",
	RuleSeqIDLength:      "Sequence identifier is too long.",
	RuleSeqLength:        "Sequence length is outside the accepted range.",
	RuleLeadingN:         "Sequence starts with an ambiguous base.",
	RuleTrailingN:        "Sequence ends with an ambiguous base.",
	RuleAmbiguous:        "Too many ambiguous bases in the sequence.",
	RuleDuplicate:        "Sequence identifier occurs more than once.",
	RuleInvalidChar:      "Sequence contains a character outside the nucleotide alphabet.",
	RuleUnexpectedMarker: "'>' found away from the start of a line.",
	RulePreamble:         "Sequence data found before the first defline.",
	RuleDeflineTruncated: "Defline exceeds the maximum buffered length.",
}

// Limits are the numeric bounds of the submission profile.
type Limits struct {
	MinLength            int
	MaxLength            int
	MaxIDLength          int
	MaxAmbiguousFraction float64
}

// DefaultLimits returns the SARS-CoV-2 deposition bounds.
func DefaultLimits() Limits {
	return Limits{
		MinLength:            50,
		MaxLength:            30000,
		MaxIDLength:          23,
		MaxAmbiguousFraction: 0.5,
	}
}

// Validate rejects limits no sequence could satisfy.
func (l Limits) Validate() error {
	switch {
	case l.MinLength < 0:
		return errors.New("min_length must be ≥ 0")
	case l.MaxLength < l.MinLength:
		return fmt.Errorf("max_length (%d) is smaller than min_length (%d)", l.MaxLength, l.MinLength)
	case l.MaxIDLength < 1:
		return errors.New("max_seqid_length must be ≥ 1")
	case l.MaxAmbiguousFraction <= 0 || l.MaxAmbiguousFraction > 1:
		return fmt.Errorf("max_ambiguous_fraction must be in (0, 1], got %g", l.MaxAmbiguousFraction)
	}
	return nil
}

// UnknownLength marks a record whose body never started.
const UnknownLength = -1

// Length checks that length lies in [MinLength, MaxLength]. UnknownLength
// always passes.
func (l Limits) Length(sink report.Sink, seqid string, length, line int) bool {
	if length == UnknownLength || (length >= l.MinLength && length <= l.MaxLength) {
		return true
	}
	sink.Add(report.Diagnostic{
		Category: report.CategorySequence,
		Rule:     RuleSeqLength,
		SeqID:    seqid,
		Line:     line,
		Message: fmt.Sprintf("Sequence length must be between %d and %d. SeqLength of '%s' is %d",
			l.MinLength, l.MaxLength, seqid, length),
	})
	return false
}

// Ambiguous flags records whose N fraction reaches MaxAmbiguousFraction.
// Empty records are not evaluated.
func (l Limits) Ambiguous(sink report.Sink, seqid string, ambiguous, length, line int) bool {
	if length <= 0 {
		return true
	}
	frac := float64(ambiguous) / float64(length)
	if frac < l.MaxAmbiguousFraction {
		return true
	}
	sink.Add(report.Diagnostic{
		Category: report.CategoryNucleotide,
		Rule:     RuleAmbiguous,
		SeqID:    seqid,
		Line:     line,
		Message: fmt.Sprintf("The proportion of unknown bases must stay below %.0f%%. Found %d/%d(%.2f%%) for sequence '%s'",
			l.MaxAmbiguousFraction*100, ambiguous, length, frac*100, seqid),
	})
	return false
}

// LeadingN reports a sequence whose first base is N/n.
func LeadingN(sink report.Sink, seqid string, line, col int) {
	sink.Add(report.Diagnostic{
		Category: report.CategoryNucleotide,
		Rule:     RuleLeadingN,
		SeqID:    seqid,
		Line:     line,
		Column:   col,
		Message:  fmt.Sprintf("Found invalid 'N' at start of sequence '%s'. It should not start with 'N' or 'n'", seqid),
	})
}

// TrailingN reports a sequence whose last base is N/n.
func TrailingN(sink report.Sink, seqid string, line, col int) {
	sink.Add(report.Diagnostic{
		Category: report.CategoryNucleotide,
		Rule:     RuleTrailingN,
		SeqID:    seqid,
		Line:     line,
		Column:   col,
		Message:  fmt.Sprintf("Found invalid 'N' at end of sequence '%s'. It should not end with 'N' or 'n'", seqid),
	})
}

// InvalidChar reports a body byte outside the nucleotide alphabet.
func InvalidChar(sink report.Sink, seqid string, c byte, line, col int) {
	sink.Add(report.Diagnostic{
		Category: report.CategoryNucleotide,
		Rule:     RuleInvalidChar,
		SeqID:    seqid,
		Line:     line,
		Column:   col,
		Message:  fmt.Sprintf("Found invalid char %q at Line %d, Column %d", rune(c), line, col),
	})
}

// UnexpectedMarker reports a '>' that does not start a line, in a body or
// in a defline.
func UnexpectedMarker(sink report.Sink, seqid string, line, col int) {
	sink.Add(report.Diagnostic{
		Category: report.CategoryNucleotide,
		Rule:     RuleUnexpectedMarker,
		SeqID:    seqid,
		Line:     line,
		Column:   col,
		Message: fmt.Sprintf("Found invalid '>' at Line %d, Column %d in sequence(seqid:'%s'). "+
			"This symbol is not allowed in the sequence. Please check whether the new-line character is missing.",
			line, col, seqid),
	})
}

// Preamble reports sequence bytes that precede every defline.
func Preamble(sink report.Sink, line int) {
	sink.Add(report.Diagnostic{
		Category: report.CategoryDefline,
		Rule:     RulePreamble,
		Line:     line,
		Message:  fmt.Sprintf("Found sequence data at Line %d before the first defline. Every sequence must start with a '>' defline", line),
	})
}

// DeflineTruncated reports a defline longer than the scanner buffers.
func DeflineTruncated(sink report.Sink, line, max int) {
	sink.Add(report.Diagnostic{
		Category: report.CategoryDefline,
		Rule:     RuleDeflineTruncated,
		Line:     line,
		Message:  fmt.Sprintf("Defline at Line %d is longer than %d bytes; the remainder was ignored", line, max),
	})
}

// Duplicates emits one diagnostic for every record whose seqid was already
// seen earlier in records.
func Duplicates(sink report.Sink, records []report.Record) int {
	seen := make(map[string]struct{}, len(records))
	n := 0
	for _, r := range records {
		if _, ok := seen[r.SeqID]; ok {
			sink.Add(report.Diagnostic{
				Category: report.CategoryDefline,
				Rule:     RuleDuplicate,
				SeqID:    r.SeqID,
				Line:     r.Line,
				Message:  fmt.Sprintf("Found duplicated sequence id: '%s'", r.SeqID),
			})
			n++
			continue
		}
		seen[r.SeqID] = struct{}{}
	}
	return n
}
