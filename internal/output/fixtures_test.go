package output

import "fastacheck-core/report"

func sampleReport() report.Report {
	org := report.DefaultOrganism()
	return report.Report{
		Records: []report.Record{
			{SeqID: "seq1", Organism: org, Length: 4, Line: 1},
			{SeqID: "seq2", Organism: org, Length: 50, Ambiguous: 4, Line: 3},
		},
		Diagnostics: []report.Diagnostic{
			{
				Category: report.CategorySequence, Rule: "seq-length", SeqID: "seq1", Line: 1,
				Message: "Sequence length must be between 50 and 30000. SeqLength of 'seq1' is 4",
			},
			{
				Category: report.CategoryNucleotide, Rule: "leading-n", SeqID: "seq2", Line: 4, Column: 1,
				Message: "Found invalid 'N' at start of sequence 'seq2'. It should not start with 'N' or 'n'",
			},
		},
	}
}
