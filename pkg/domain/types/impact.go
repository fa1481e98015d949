package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Impact is one level of the closed 5-level impact scale.
// The zero value is not a member; optional fields use *Impact.
type Impact string

const (
	ImpactTidakSignifikan Impact = "Tidak Signifikan"
	ImpactMinor           Impact = "Minor"
	ImpactModerat         Impact = "Moderat"
	ImpactMayor           Impact = "Mayor"
	ImpactKatastropik     Impact = "Katastropik"
)

var impactWeights = map[Impact]int{
	ImpactTidakSignifikan: 1,
	ImpactMinor:           2,
	ImpactModerat:         3,
	ImpactMayor:           4,
	ImpactKatastropik:     5,
}

// AllImpacts returns the scale in ascending order of weight
func AllImpacts() []Impact {
	return []Impact{
		ImpactTidakSignifikan,
		ImpactMinor,
		ImpactModerat,
		ImpactMayor,
		ImpactKatastropik,
	}
}

// Weight returns the integer weight (1-5) of the level. A value outside the
// declared scale returns ErrUnknownLevel.
func (i Impact) Weight() (int, error) {
	w, ok := impactWeights[i]
	if !ok {
		return 0, goerr.Wrap(ErrUnknownLevel, "impact level is not in the scale", goerr.V("level", string(i)))
	}
	return w, nil
}

// IsValid checks if the value is a member of the scale
func (i Impact) IsValid() bool {
	_, ok := impactWeights[i]
	return ok
}

// ImpactFromWeight returns the level for a weight 1-5
func ImpactFromWeight(w int) (Impact, error) {
	for _, i := range AllImpacts() {
		if impactWeights[i] == w {
			return i, nil
		}
	}
	return "", goerr.Wrap(ErrUnknownLevel, "no impact level for weight", goerr.V("weight", w))
}

// String returns the string representation of the level
func (i Impact) String() string {
	return string(i)
}
