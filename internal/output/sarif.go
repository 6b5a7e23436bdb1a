// internal/output/sarif.go
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"fastacheck-core/report"
	"fastacheck-core/rules"
	"fastacheck/internal/version"
)

const sarifToolName = "fastacheck"

// BuildSARIF converts diagnostics into a SARIF 2.1.0 log with one run.
// Rules are declared in order of first use.
func BuildSARIF(source string, rep report.Report) (*sarif.Report, error) {
	reportSarif, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	ver := version.Version
	run := sarif.NewRun(sarif.Tool{
		Driver: &sarif.ToolComponent{
			Name:    sarifToolName,
			Version: &ver,
			Rules:   []*sarif.ReportingDescriptor{},
		},
	})

	uri := source
	if uri == "" || uri == "-" {
		uri = "stdin"
	}

	declared := make(map[string]bool)
	for _, d := range rep.Diagnostics {
		if !declared[d.Rule] {
			declared[d.Rule] = true
			run.AddRule(d.Rule).
				WithDescription(rules.Descriptions[d.Rule]).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: "error"}).
				WithProperties(sarif.Properties{"category": string(d.Category)})
		}

		phys := sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewArtifactLocation().WithUri(uri))
		if d.Line > 0 {
			region := sarif.NewRegion().WithStartLine(d.Line)
			if d.Column > 0 {
				region = region.WithStartColumn(d.Column)
			}
			phys = phys.WithRegion(region)
		}

		result := sarif.NewRuleResult(d.Rule).
			WithMessage(sarif.NewTextMessage(d.Message)).
			WithLevel("error").
			WithLocations([]*sarif.Location{sarif.NewLocation().WithPhysicalLocation(phys)})
		run.AddResult(result)
	}
	reportSarif.AddRun(run)
	return reportSarif, nil
}

// WriteSARIF writes the pretty-printed log to w.
func WriteSARIF(w io.Writer, source string, rep report.Report) error {
	log, err := BuildSARIF(source, rep)
	if err != nil {
		return err
	}
	return log.PrettyWrite(w)
}

// WriteSARIFFile creates (or truncates) path and writes the log there.
func WriteSARIFFile(path, source string, rep report.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error writing SARIF report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WriteSARIF(f, source, rep)
}
