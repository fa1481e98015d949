package model_test

import (
	"testing"

	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

func goalWithCode(code string) *model.Goal {
	return &model.Goal{ID: types.NewGoalID(), Code: code}
}

func TestGoalCodePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"alpha", "A"},
		{"Apple", "A"},
		{"zeta", "Z"},
		{"7-Eleven", "X"},
		{"  spaced", "S"},
		{"", "X"},
		{"Ökonomi", "X"},
	}

	for _, tt := range tests {
		if got := model.GoalCodePrefix(tt.name); got != tt.want {
			t.Errorf("GoalCodePrefix(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestNextGoalCode(t *testing.T) {
	t.Parallel()

	t.Run("first goal in tenant", func(t *testing.T) {
		if got := model.NextGoalCode("alpha", nil); got != "A1" {
			t.Errorf("code = %s, want A1", got)
		}
	})

	t.Run("second goal with same prefix", func(t *testing.T) {
		existing := []*model.Goal{goalWithCode("A1")}
		if got := model.NextGoalCode("Apple", existing); got != "A2" {
			t.Errorf("code = %s, want A2", got)
		}
	})

	t.Run("non-letter name falls back to X", func(t *testing.T) {
		existing := []*model.Goal{goalWithCode("A1"), goalWithCode("A2")}
		if got := model.NextGoalCode("7-Eleven", existing); got != "X1" {
			t.Errorf("code = %s, want X1", got)
		}
	})

	t.Run("gaps from deletions are not reused", func(t *testing.T) {
		// A2 was deleted; max suffix is still derived from what remains.
		existing := []*model.Goal{goalWithCode("A1"), goalWithCode("A5")}
		if got := model.NextGoalCode("audit", existing); got != "A6" {
			t.Errorf("code = %s, want A6", got)
		}
	})

	t.Run("malformed codes are ignored", func(t *testing.T) {
		existing := []*model.Goal{goalWithCode("A1"), goalWithCode("AX"), goalWithCode("A-3"), goalWithCode("")}
		if got := model.NextGoalCode("audit", existing); got != "A2" {
			t.Errorf("code = %s, want A2", got)
		}
	})

	t.Run("re-derivation is idempotent", func(t *testing.T) {
		existing := []*model.Goal{goalWithCode("B1"), goalWithCode("B2")}
		first := model.NextGoalCode("budget", existing)
		second := model.NextGoalCode("budget", existing)
		if first != second {
			t.Errorf("re-derivation diverged: %s vs %s", first, second)
		}
		if first != "B3" {
			t.Errorf("code = %s, want B3", first)
		}
	})
}

func TestNextRiskSequence(t *testing.T) {
	t.Parallel()

	if got := model.NextRiskSequence(nil); got != 1 {
		t.Errorf("first sequence = %d, want 1", got)
	}

	siblings := []*model.PotentialRisk{{Sequence: 1}, {Sequence: 2}}
	if got := model.NextRiskSequence(siblings); got != 3 {
		t.Errorf("sequence = %d, want 3", got)
	}

	// Sibling 1 was deleted; 3 is retained by a live record, so the next
	// number must be 4, not a reuse of an existing sequence.
	afterDelete := []*model.PotentialRisk{{Sequence: 2}, {Sequence: 3}}
	if got := model.NextRiskSequence(afterDelete); got != 4 {
		t.Errorf("sequence after deletion = %d, want 4", got)
	}
}

func TestNextCauseSequence(t *testing.T) {
	t.Parallel()

	if got := model.NextCauseSequence(nil); got != 1 {
		t.Errorf("first sequence = %d, want 1", got)
	}
	siblings := []*model.RiskCause{{Sequence: 4}}
	if got := model.NextCauseSequence(siblings); got != 5 {
		t.Errorf("sequence = %d, want 5", got)
	}
}

func TestNextControlSequence_PerType(t *testing.T) {
	t.Parallel()

	var siblings []*model.ControlMeasure

	seq := model.NextControlSequence(siblings, types.ControlTypePreventif)
	if seq != 1 {
		t.Errorf("first Prv sequence = %d, want 1", seq)
	}
	siblings = append(siblings, &model.ControlMeasure{ControlType: types.ControlTypePreventif, Sequence: seq})

	// A different type starts its own numbering at 1.
	seq = model.NextControlSequence(siblings, types.ControlTypeMitigasi)
	if seq != 1 {
		t.Errorf("first RM sequence = %d, want 1", seq)
	}
	siblings = append(siblings, &model.ControlMeasure{ControlType: types.ControlTypeMitigasi, Sequence: seq})

	seq = model.NextControlSequence(siblings, types.ControlTypePreventif)
	if seq != 2 {
		t.Errorf("second Prv sequence = %d, want 2", seq)
	}

	seq = model.NextControlSequence(siblings, types.ControlTypeKorektif)
	if seq != 1 {
		t.Errorf("first Crr sequence = %d, want 1", seq)
	}
}
