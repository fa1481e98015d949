package types

// RiskSource indicates whether a risk cause originates inside or outside the
// organization. nil means undetermined.
type RiskSource string

const (
	SourceInternal  RiskSource = "Internal"
	SourceEksternal RiskSource = "Eksternal"
)

// AllRiskSources returns all valid risk sources
func AllRiskSources() []RiskSource {
	return []RiskSource{SourceInternal, SourceEksternal}
}

// IsValid checks if the source is a member of the enumeration
func (s RiskSource) IsValid() bool {
	return s == SourceInternal || s == SourceEksternal
}

// String returns the string representation of the source
func (s RiskSource) String() string {
	return string(s)
}
