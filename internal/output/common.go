package output

// TSVHeader is the canonical header row for the record table.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "seqid\torganism\tgenetic_code\tmoltype\ttopology\tstrand"

// Output formats accepted by --format.
const (
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)
