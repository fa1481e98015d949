package interfaces

// Repository defines the interface for data persistence. Every read reflects
// the latest committed writes at call time; there is no caching layer inside
// the core.
type Repository interface {
	Goal() GoalRepository
	PotentialRisk() PotentialRiskRepository
	RiskCause() RiskCauseRepository
	ControlMeasure() ControlMeasureRepository

	Close() error
}
