package benchmark

// Run is a single timed command inside a result file. Durations are in seconds.
type Run struct {
	Command string    `json:"command"`
	Mean    *float64  `json:"mean"`
	Stddev  float64   `json:"stddev,omitempty"`
	Median  float64   `json:"median,omitempty"`
	User    float64   `json:"user,omitempty"`
	System  float64   `json:"system,omitempty"`
	Min     float64   `json:"min,omitempty"`
	Max     float64   `json:"max,omitempty"`
	Times   []float64 `json:"times,omitempty"`
}

// ResultFile is the on-disk document produced by one benchmark invocation.
type ResultFile struct {
	Path    string `json:"-"`
	Results []Run  `json:"results"`
}

// MeanMillis returns the mean of the first run in milliseconds.
// Load guarantees the first run and its mean are present.
func (f *ResultFile) MeanMillis() float64 {
	return *f.Results[0].Mean * 1000
}

// Pair names the two result files recorded for one fixture.
type Pair struct {
	Fixture string
	V1Path  string
	V2Path  string
}

// Status classifies a percentage change.
type Status int

const (
	NoChange Status = iota
	Improved
	Regressed
)

// SignificanceThreshold is the percentage change below which a difference is noise.
const SignificanceThreshold = 5.0

func (s Status) String() string {
	switch s {
	case Improved:
		return "improved"
	case Regressed:
		return "regressed"
	default:
		return "no change"
	}
}

// Symbol returns the marker printed next to the status word.
func (s Status) Symbol() string {
	switch s {
	case Improved:
		return "🚀"
	case Regressed:
		return "⚠️"
	default:
		return "✓"
	}
}

// Label is the symbol and word together, e.g. "🚀 improved".
func (s Status) Label() string {
	return s.Symbol() + " " + s.String()
}

// Comparison is one row of the v1/v2 report.
type Comparison struct {
	Name     string
	V1Millis float64
	V2Millis float64
	Change   float64 // Percentage change, negative is faster
	Status   Status
}

// Summary counts rows per status.
type Summary struct {
	Improved  int
	Regressed int
	Unchanged int
}
