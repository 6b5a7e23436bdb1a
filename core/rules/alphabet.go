package rules

// nucleotides holds A,C,G,T and the IUPAC ambiguity codes in both cases.
var nucleotides = func() (t [256]bool) {
	for _, c := range []byte("ACGTRYMKSWHBVDN") {
		t[c] = true
		t[c+'a'-'A'] = true
	}
	return t
}()

// IsNucleotide reports whether c is an accepted body character.
func IsNucleotide(c byte) bool { return nucleotides[c] }

// IsAmbiguous reports whether c is an unresolved base (N or n).
func IsAmbiguous(c byte) bool { return c == 'N' || c == 'n' }
