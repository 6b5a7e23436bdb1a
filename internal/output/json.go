// internal/output/json.go
package output

import (
	"io"

	"fastacheck-core/report"
	"fastacheck/internal/jsonlutil"
	"fastacheck/internal/jsonutil"
	"fastacheck/internal/summary"
	"fastacheck/pkg/api"
)

// ToAPIRecord converts a domain Record to the stable wire schema (v1).
func ToAPIRecord(r report.Record) api.RecordV1 {
	return api.RecordV1{
		SeqID:       r.SeqID,
		Organism:    r.Organism.Name,
		GeneticCode: r.Organism.GeneticCode,
		MolType:     r.Organism.MolType,
		Topology:    r.Organism.Topology,
		Strand:      r.Organism.Strand,
		Length:      r.Length,
		Ambiguous:   r.Ambiguous,
		Line:        r.Line,
	}
}

func ToAPIDiagnostic(d report.Diagnostic) api.DiagnosticV1 {
	return api.DiagnosticV1{
		Category: string(d.Category),
		Rule:     d.Rule,
		Message:  d.Message,
		SeqID:    d.SeqID,
		Line:     d.Line,
		Column:   d.Column,
	}
}

func ToAPISummary(s summary.Stats) *api.SummaryV1 {
	return &api.SummaryV1{
		Records:      s.Records,
		TotalBases:   s.TotalBases,
		MinLength:    s.MinLength,
		MaxLength:    s.MaxLength,
		MeanLength:   s.Mean,
		StdDevLength: s.StdDev,
		N50:          s.N50,
		Ambiguous:    s.Ambiguous,
	}
}

// ToAPIReport converts a finished report. Slices are never nil so the JSON
// carries [] rather than null.
func ToAPIReport(rep report.Report, source string) api.ReportV1 {
	v := api.ReportV1{
		Source:      source,
		Valid:       !rep.HasDiagnostics(),
		Records:     make([]api.RecordV1, 0, len(rep.Records)),
		Diagnostics: make([]api.DiagnosticV1, 0, len(rep.Diagnostics)),
	}
	for _, r := range rep.Records {
		v.Records = append(v.Records, ToAPIRecord(r))
	}
	for _, d := range rep.Diagnostics {
		v.Diagnostics = append(v.Diagnostics, ToAPIDiagnostic(d))
	}
	return v
}

// WriteJSONL writes one v1 record per line. Diagnostics are not part of
// the stream.
func WriteJSONL(w io.Writer, records []report.Record, isBroken func(error) bool) error {
	return jsonlutil.Write(w, records, ToAPIRecord, isBroken)
}

// WriteJSON writes a single v1 report (pretty-indented).
func WriteJSON(w io.Writer, v api.ReportV1) error {
	return jsonutil.EncodePretty(w, v)
}
