package model

import (
	"time"

	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

// Goal is a top-level organizational objective that risks threaten. Code is
// assigned once at creation and never changes, even if the goal is renamed.
type Goal struct {
	ID          types.GoalID
	Tenant      Tenant
	Code        string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
