package model

import (
	"strconv"
	"strings"

	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

// goalCodeFallbackPrefix is used when a goal name does not start with an
// ASCII letter.
const goalCodeFallbackPrefix = "X"

// GoalCodePrefix derives the one-letter code prefix from a goal name: the
// uppercased first character if it is A-Z, otherwise "X".
func GoalCodePrefix(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return goalCodeFallbackPrefix
	}
	c := trimmed[0]
	switch {
	case c >= 'A' && c <= 'Z':
		return string(c)
	case c >= 'a' && c <= 'z':
		return string(c - 'a' + 'A')
	default:
		return goalCodeFallbackPrefix
	}
}

// NextGoalCode derives the code for a new goal from its name and the current
// full set of goals in the same tenant: prefix + (max numeric suffix among
// codes sharing the prefix) + 1. It is recomputed from the live sibling set
// on every call rather than from a persisted counter, so freed numbers are
// never reused after a deletion and retained external references stay
// unambiguous.
//
// Correctness depends on the sibling snapshot being current; two concurrent
// creations can derive the same code. Preventing that is the caller's
// concurrency-control obligation.
func NextGoalCode(name string, existing []*Goal) string {
	prefix := GoalCodePrefix(name)

	maxSuffix := 0
	for _, g := range existing {
		rest, ok := strings.CutPrefix(g.Code, prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n <= 0 {
			continue
		}
		if n > maxSuffix {
			maxSuffix = n
		}
	}

	return prefix + strconv.Itoa(maxSuffix+1)
}

// NextRiskSequence returns the sequence number for a new potential risk under
// a goal, derived from the live sibling set: max live sequence + 1. Sequence
// numbers are assigned once and never compacted or reused when a sibling is
// deleted.
func NextRiskSequence(siblings []*PotentialRisk) int {
	maxSeq := 0
	for _, s := range siblings {
		if s.Sequence > maxSeq {
			maxSeq = s.Sequence
		}
	}
	return maxSeq + 1
}

// NextCauseSequence returns the sequence number for a new risk cause under a
// potential risk.
func NextCauseSequence(siblings []*RiskCause) int {
	maxSeq := 0
	for _, s := range siblings {
		if s.Sequence > maxSeq {
			maxSeq = s.Sequence
		}
	}
	return maxSeq + 1
}

// NextControlSequence returns the sequence number for a new control measure
// under a risk cause. Numbering is independent per control type: siblings of
// other types do not count.
func NextControlSequence(siblings []*ControlMeasure, controlType types.ControlMeasureType) int {
	maxSeq := 0
	for _, c := range siblings {
		if c.ControlType == controlType && c.Sequence > maxSeq {
			maxSeq = c.Sequence
		}
	}
	return maxSeq + 1
}
