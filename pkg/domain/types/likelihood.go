package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Likelihood is one level of the closed 5-level likelihood scale.
// The zero value is not a member; optional fields use *Likelihood.
type Likelihood string

const (
	LikelihoodSangatJarang Likelihood = "Sangat Jarang"
	LikelihoodJarang       Likelihood = "Jarang"
	LikelihoodKadang       Likelihood = "Kadang-Kadang"
	LikelihoodSering       Likelihood = "Sering"
	LikelihoodSangatSering Likelihood = "Sangat Sering"
)

var likelihoodWeights = map[Likelihood]int{
	LikelihoodSangatJarang: 1,
	LikelihoodJarang:       2,
	LikelihoodKadang:       3,
	LikelihoodSering:       4,
	LikelihoodSangatSering: 5,
}

// AllLikelihoods returns the scale in ascending order of weight
func AllLikelihoods() []Likelihood {
	return []Likelihood{
		LikelihoodSangatJarang,
		LikelihoodJarang,
		LikelihoodKadang,
		LikelihoodSering,
		LikelihoodSangatSering,
	}
}

// Weight returns the integer weight (1-5) of the level. A value outside the
// declared scale returns ErrUnknownLevel.
func (l Likelihood) Weight() (int, error) {
	w, ok := likelihoodWeights[l]
	if !ok {
		return 0, goerr.Wrap(ErrUnknownLevel, "likelihood level is not in the scale", goerr.V("level", string(l)))
	}
	return w, nil
}

// IsValid checks if the value is a member of the scale
func (l Likelihood) IsValid() bool {
	_, ok := likelihoodWeights[l]
	return ok
}

// LikelihoodFromWeight returns the level for a weight 1-5
func LikelihoodFromWeight(w int) (Likelihood, error) {
	for _, l := range AllLikelihoods() {
		if likelihoodWeights[l] == w {
			return l, nil
		}
	}
	return "", goerr.Wrap(ErrUnknownLevel, "no likelihood level for weight", goerr.V("weight", w))
}

// String returns the string representation of the level
func (l Likelihood) String() string {
	return string(l)
}
