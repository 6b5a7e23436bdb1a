package seqid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		defline string
		want    string
	}{
		{"newline terminated", ">seq1\n", ">seq1"},
		{"description", ">seq1 Severe acute respiratory syndrome\n", ">seq1"},
		{"tab", ">seq1\tx\n", ">seq1"},
		{"no terminator", ">seq1", ">seq1"},
		{"marker only", ">\n", ">"},
		{"pipes kept", ">gi|123|ref\n", ">gi|123|ref"},
		{"leading space", "> seq1\n", ">"},
		{"empty", "", ""},
		{"no marker", "seq1\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.defline))
		})
	}
}

func TestBare(t *testing.T) {
	assert.Equal(t, "seq1", Bare(">seq1"))
	assert.Equal(t, "", Bare(">"))
	assert.Equal(t, "", Bare(""))
}
