package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrGoalNotFound    = errors.New("goal not found")
	ErrRiskNotFound    = errors.New("potential risk not found")
	ErrCauseNotFound   = errors.New("risk cause not found")
	ErrControlNotFound = errors.New("control measure not found")

	// Identifier errors
	ErrCodeConflict = errors.New("goal code conflict")

	// Configuration errors
	ErrSuggestionUnavailable = errors.New("suggestion service is not configured")
)

// Context keys for error values
const (
	TenantKey    = "tenant"
	GoalIDKey    = "goal_id"
	RiskIDKey    = "potential_risk_id"
	CauseIDKey   = "risk_cause_id"
	ControlIDKey = "control_measure_id"
)
