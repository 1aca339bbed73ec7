package bench

// Record is the small fixed-shape element used by the record cases.
type Record struct {
	ID   int
	Name string
}

const (
	SampleInt    = 42
	SampleString = "test"
)

// SampleRecord is the value enqueued by the record cases.
var SampleRecord = Record{ID: 1, Name: "Sample"}
