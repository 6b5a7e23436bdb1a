// internal/output/tsv.go
package output

import (
	"io"
	"strings"

	"github.com/grailbio/base/tsv"

	"fastacheck-core/report"
)

// WriteTSV prints one row per record, preceded by TSVHeader when header is set.
func WriteTSV(w io.Writer, records []report.Record, header bool) error {
	tw := tsv.NewWriter(w)
	if header {
		for _, col := range strings.Split(TSVHeader, "\t") {
			tw.WriteString(col)
		}
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	for _, r := range records {
		tw.WriteString(r.SeqID)
		tw.WriteString(r.Organism.Name)
		tw.WriteString(r.Organism.GeneticCode)
		tw.WriteString(r.Organism.MolType)
		tw.WriteString(r.Organism.Topology)
		tw.WriteString(r.Organism.Strand)
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}
