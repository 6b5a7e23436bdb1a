// internal/output/json_test.go
package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastacheck-core/report"
	"fastacheck/internal/summary"
	"fastacheck/pkg/api"
)

func TestWriteJSON(t *testing.T) {
	rep := sampleReport()
	v := ToAPIReport(rep, "in.fa")
	v.Summary = ToAPISummary(summary.Compute(rep.Records))

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, v))

	var got api.ReportV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.False(t, got.Valid)
	assert.Equal(t, "in.fa", got.Source)
	require.Len(t, got.Records, 2)
	assert.Equal(t, "genomic RNA", got.Records[0].MolType)
	require.Len(t, got.Diagnostics, 2)
	assert.Equal(t, "Nucleotide", got.Diagnostics[1].Category)
	assert.Equal(t, 1, got.Diagnostics[1].Column)
	require.NotNil(t, got.Summary)
	assert.Equal(t, 54, got.Summary.TotalBases)
}

func TestToAPIReportEmpty(t *testing.T) {
	v := ToAPIReport(report.Report{}, "")
	assert.True(t, v.Valid)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"valid":true,"records":[],"diagnostics":[]}`, string(b))
}
