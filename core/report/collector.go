package report

// Sink receives diagnostics. Rules depend on this instead of Collector.
type Sink interface {
	Add(d Diagnostic)
}

// Collector accumulates records and diagnostics in emission order.
// It never filters, merges, or reorders.
type Collector struct {
	organism    Organism
	records     []Record
	diagnostics []Diagnostic
}

// NewCollector returns a Collector that stamps org on every record.
func NewCollector(org Organism) *Collector {
	return &Collector{organism: org}
}

// Add appends d.
func (c *Collector) Add(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

// AddRecord appends a record for seqid with the collector's organism.
func (c *Collector) AddRecord(seqid string, length, ambiguous, line int) {
	c.records = append(c.records, Record{
		SeqID:     seqid,
		Organism:  c.organism,
		Length:    length,
		Ambiguous: ambiguous,
		Line:      line,
	})
}

// Records returns the records collected so far.
func (c *Collector) Records() []Record { return c.records }

// Diagnostics returns the diagnostics collected so far.
func (c *Collector) Diagnostics() []Diagnostic { return c.diagnostics }

// Report snapshots the collector. Later additions do not affect it.
func (c *Collector) Report() Report {
	return Report{
		Records:     append([]Record(nil), c.records...),
		Diagnostics: append([]Diagnostic(nil), c.diagnostics...),
	}
}
