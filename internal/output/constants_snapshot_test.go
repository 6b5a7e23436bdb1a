package output

import "testing"

func TestTSVHeader_Stable(t *testing.T) {
	const want = "seqid\torganism\tgenetic_code\tmoltype\ttopology\tstrand"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}
