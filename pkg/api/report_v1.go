// pkg/api/report_v1.go
package api

// RecordV1 is one validated FASTA record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	SeqID       string `json:"seqid"`
	Organism    string `json:"organism"`
	GeneticCode string `json:"genetic_code"`
	MolType     string `json:"moltype"`
	Topology    string `json:"topology"`
	Strand      string `json:"strand"`
	Length      int    `json:"length"`
	Ambiguous   int    `json:"ambiguous"`
	Line        int    `json:"line"`
}

// DiagnosticV1 is one rule violation. Line and Column are 1-based; zero
// means the diagnostic is not tied to a position.
type DiagnosticV1 struct {
	Category string `json:"category"` // "Defline" | "Nucleotide" | "Sequence"
	Rule     string `json:"rule"`
	Message  string `json:"message"`
	SeqID    string `json:"seqid,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// SummaryV1 carries per-run length statistics.
type SummaryV1 struct {
	Records      int     `json:"records"`
	TotalBases   int     `json:"total_bases"`
	MinLength    int     `json:"min_length"`
	MaxLength    int     `json:"max_length"`
	MeanLength   float64 `json:"mean_length"`
	StdDevLength float64 `json:"stddev_length"`
	N50          int     `json:"n50"`
	Ambiguous    int     `json:"ambiguous"`
}

// ReportV1 is the stable schema for `--format json` and the HTTP API.
type ReportV1 struct {
	RunID       string         `json:"run_id,omitempty"`
	Source      string         `json:"source,omitempty"`
	Valid       bool           `json:"valid"`
	Records     []RecordV1     `json:"records"`
	Diagnostics []DiagnosticV1 `json:"diagnostics"`
	Summary     *SummaryV1     `json:"summary,omitempty"`
}
