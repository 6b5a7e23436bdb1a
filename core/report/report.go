// Package report holds the validation result model: one Record per FASTA
// entry and an ordered list of Diagnostics.
package report

// Category groups diagnostics the way submission portals present them.
type Category string

const (
	CategoryDefline    Category = "Defline"
	CategoryNucleotide Category = "Nucleotide"
	CategorySequence   Category = "Sequence"
)

// Diagnostic is one content violation. Line and Column are 1-based and zero
// when the rule has no single position.
type Diagnostic struct {
	Category Category
	Rule     string
	Message  string
	SeqID    string
	Line     int
	Column   int
}

// Organism is the fixed descriptive metadata stamped on every record.
type Organism struct {
	Name        string
	GeneticCode string
	MolType     string
	Topology    string
	Strand      string
}

// DefaultOrganism is the SARS-CoV-2 submission profile.
func DefaultOrganism() Organism {
	return Organism{
		Name:        "Severe acute respiratory syndrome coronavirus 2",
		GeneticCode: "1",
		MolType:     "genomic RNA",
		Topology:    "linear",
		Strand:      "single",
	}
}

// Record is one finished sequence entry.
type Record struct {
	SeqID     string
	Organism  Organism
	Length    int
	Ambiguous int
	Line      int // line of the defline
}

// Report is the immutable outcome of one validation run.
type Report struct {
	Records     []Record
	Diagnostics []Diagnostic
}

// HasDiagnostics reports whether any violation was recorded.
func (r Report) HasDiagnostics() bool { return len(r.Diagnostics) > 0 }

// CountByCategory tallies diagnostics per category.
func (r Report) CountByCategory() map[Category]int {
	out := make(map[Category]int, 3)
	for _, d := range r.Diagnostics {
		out[d.Category]++
	}
	return out
}
