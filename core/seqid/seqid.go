// Package seqid extracts sequence identifiers from FASTA deflines.
package seqid

import (
	"regexp"
	"strings"
)

// Marker opens every defline.
const Marker = '>'

// idPattern captures the marker plus the shortest run of characters that is
// followed by whitespace or the end of the defline.
var idPattern = regexp.MustCompile(`^(>.*?)(?:\s|\z)`)

// Extract returns the identifier token of defline, marker included.
// An empty or malformed defline yields "".
func Extract(defline string) string {
	m := idPattern.FindStringSubmatch(defline)
	if m == nil {
		return ""
	}
	return m[1]
}

// Bare strips the leading marker from an extracted identifier.
func Bare(id string) string {
	return strings.TrimPrefix(id, string(Marker))
}
