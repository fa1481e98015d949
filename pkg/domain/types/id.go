package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// GoalID represents a unique identifier for a goal
type GoalID string

// NewGoalID generates a new time-ordered GoalID
func NewGoalID() GoalID {
	return GoalID(uuid.Must(uuid.NewV7()).String())
}

// Validate checks if the GoalID is valid
func (id GoalID) Validate() error {
	if id == "" {
		return goerr.New("goal ID cannot be empty")
	}
	return nil
}

// String returns the string representation of GoalID
func (id GoalID) String() string {
	return string(id)
}

// PotentialRiskID represents a unique identifier for a potential risk
type PotentialRiskID string

// NewPotentialRiskID generates a new time-ordered PotentialRiskID
func NewPotentialRiskID() PotentialRiskID {
	return PotentialRiskID(uuid.Must(uuid.NewV7()).String())
}

// Validate checks if the PotentialRiskID is valid
func (id PotentialRiskID) Validate() error {
	if id == "" {
		return goerr.New("potential risk ID cannot be empty")
	}
	return nil
}

// String returns the string representation of PotentialRiskID
func (id PotentialRiskID) String() string {
	return string(id)
}

// RiskCauseID represents a unique identifier for a risk cause
type RiskCauseID string

// NewRiskCauseID generates a new time-ordered RiskCauseID
func NewRiskCauseID() RiskCauseID {
	return RiskCauseID(uuid.Must(uuid.NewV7()).String())
}

// Validate checks if the RiskCauseID is valid
func (id RiskCauseID) Validate() error {
	if id == "" {
		return goerr.New("risk cause ID cannot be empty")
	}
	return nil
}

// String returns the string representation of RiskCauseID
func (id RiskCauseID) String() string {
	return string(id)
}

// ControlMeasureID represents a unique identifier for a control measure
type ControlMeasureID string

// NewControlMeasureID generates a new time-ordered ControlMeasureID
func NewControlMeasureID() ControlMeasureID {
	return ControlMeasureID(uuid.Must(uuid.NewV7()).String())
}

// Validate checks if the ControlMeasureID is valid
func (id ControlMeasureID) Validate() error {
	if id == "" {
		return goerr.New("control measure ID cannot be empty")
	}
	return nil
}

// String returns the string representation of ControlMeasureID
func (id ControlMeasureID) String() string {
	return string(id)
}
