package memory

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/manrisk/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = goerr.New("record not found")

// Memory is an in-memory Repository for development and tests
type Memory struct {
	goal    *goalRepository
	risk    *potentialRiskRepository
	cause   *riskCauseRepository
	control *controlMeasureRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		goal:    newGoalRepository(),
		risk:    newPotentialRiskRepository(),
		cause:   newRiskCauseRepository(),
		control: newControlMeasureRepository(),
	}
}

func (m *Memory) Goal() interfaces.GoalRepository {
	return m.goal
}

func (m *Memory) PotentialRisk() interfaces.PotentialRiskRepository {
	return m.risk
}

func (m *Memory) RiskCause() interfaces.RiskCauseRepository {
	return m.cause
}

func (m *Memory) ControlMeasure() interfaces.ControlMeasureRepository {
	return m.control
}

func (m *Memory) Close() error {
	return nil
}
