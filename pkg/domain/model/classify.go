package model

import (
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

// Classification is the derived score and band of a likelihood/impact pair.
// Score is nil when the analysis is incomplete.
type Classification struct {
	Score *int
	Level types.RiskLevel
}

// Classify derives the risk classification from an optional likelihood and
// impact. A nil input means the analysis is incomplete: the result is
// {nil, N/A} and no error. A non-nil value outside its scale is a
// data-integrity error; it can only happen when a record bypassed the
// suggestion sanitizers or persisted-record validation.
//
// The function is pure and safe to call repeatedly at render time.
func Classify(likelihood *types.Likelihood, impact *types.Impact) (Classification, error) {
	if likelihood == nil || impact == nil {
		return Classification{Level: types.RiskLevelNA}, nil
	}

	lw, err := likelihood.Weight()
	if err != nil {
		return Classification{Level: types.RiskLevelNA}, err
	}
	iw, err := impact.Weight()
	if err != nil {
		return Classification{Level: types.RiskLevelNA}, err
	}

	score := lw * iw
	return Classification{
		Score: &score,
		Level: types.RiskLevelFromScore(score),
	}, nil
}
