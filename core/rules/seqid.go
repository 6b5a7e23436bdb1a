package rules

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"fastacheck-core/report"
	"fastacheck-core/seqid"
)

// idPunct lists the non-alphanumeric characters allowed in a seqid.
const idPunct = "_*#.-:"

// Identifier checks an extracted identifier (marker included). A missing
// identifier yields a single diagnostic and no further checks.
func (l Limits) Identifier(sink report.Sink, id string, line int) bool {
	bare := seqid.Bare(id)
	if len(id) < 2 {
		sink.Add(report.Diagnostic{
			Category: report.CategoryDefline,
			Rule:     RuleSeqIDMissing,
			SeqID:    bare,
			Line:     line,
			Message:  fmt.Sprintf("Found invalid seqid '%s'. seqid must have at least one character.", bare),
		})
		return false
	}

	ok := true
	if first, _ := utf8.DecodeRuneInString(bare); !unicode.IsLetter(first) {
		sink.Add(report.Diagnostic{
			Category: report.CategoryDefline,
			Rule:     RuleSeqIDFirstChar,
			SeqID:    bare,
			Line:     line,
			Message:  fmt.Sprintf("Found invalid character '%c' in seqid '%s'. Seqid must start with a letter.", first, bare),
		})
		ok = false
	}
	for _, c := range bare {
		if unicode.IsLetter(c) || unicode.IsNumber(c) || strings.ContainsRune(idPunct, c) {
			continue
		}
		sink.Add(report.Diagnostic{
			Category: report.CategoryDefline,
			Rule:     RuleSeqIDChar,
			SeqID:    bare,
			Line:     line,
			Message: fmt.Sprintf("Found invalid character: '%c' in seqid: '%s'. "+
				"Only letters, numbers, '_', '-', '*', '#', '.', ':' are permitted.", c, bare),
		})
		ok = false
	}
	if len(bare) > l.MaxIDLength {
		sink.Add(report.Diagnostic{
			Category: report.CategoryDefline,
			Rule:     RuleSeqIDLength,
			SeqID:    bare,
			Line:     line,
			Message:  fmt.Sprintf("Seqid max length is %d, found length of %d for seqid: %s.", l.MaxIDLength, len(bare), bare),
		})
		ok = false
	}
	return ok
}
