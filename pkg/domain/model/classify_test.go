package model_test

import (
	"errors"
	"testing"

	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

func TestClassify_FullGrid(t *testing.T) {
	t.Parallel()

	// The mapping is total: every one of the 25 level pairs must land in
	// exactly one band and score must equal the weight product.
	for _, l := range types.AllLikelihoods() {
		for _, i := range types.AllImpacts() {
			c, err := model.Classify(&l, &i)
			if err != nil {
				t.Fatalf("Classify(%s, %s): %v", l, i, err)
			}
			if c.Score == nil {
				t.Fatalf("Classify(%s, %s): nil score", l, i)
			}

			lw, _ := l.Weight()
			iw, _ := i.Weight()
			if *c.Score != lw*iw {
				t.Errorf("Classify(%s, %s) score = %d, want %d", l, i, *c.Score, lw*iw)
			}
			if want := types.RiskLevelFromScore(lw * iw); c.Level != want {
				t.Errorf("Classify(%s, %s) level = %s, want %s", l, i, c.Level, want)
			}
			if c.Level == types.RiskLevelNA {
				t.Errorf("Classify(%s, %s) must not be N/A for a complete pair", l, i)
			}
		}
	}
}

func TestClassify_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		likelihoodWeight int
		impactWeight     int
		score            int
		level            types.RiskLevel
	}{
		{5, 5, 25, types.RiskLevelSangatTinggi},
		{4, 5, 20, types.RiskLevelSangatTinggi},
		{4, 4, 16, types.RiskLevelTinggi},
		{3, 5, 15, types.RiskLevelSedang},
		{3, 4, 12, types.RiskLevelSedang},
		{2, 5, 10, types.RiskLevelRendah},
		{2, 3, 6, types.RiskLevelRendah},
		{1, 5, 5, types.RiskLevelSangatRendah},
		{1, 1, 1, types.RiskLevelSangatRendah},
	}

	for _, tt := range tests {
		l, err := types.LikelihoodFromWeight(tt.likelihoodWeight)
		if err != nil {
			t.Fatal(err)
		}
		i, err := types.ImpactFromWeight(tt.impactWeight)
		if err != nil {
			t.Fatal(err)
		}

		c, err := model.Classify(&l, &i)
		if err != nil {
			t.Fatalf("Classify(%s, %s): %v", l, i, err)
		}
		if *c.Score != tt.score {
			t.Errorf("score(%d, %d) = %d, want %d", tt.likelihoodWeight, tt.impactWeight, *c.Score, tt.score)
		}
		if c.Level != tt.level {
			t.Errorf("level for score %d = %s, want %s", tt.score, c.Level, tt.level)
		}
	}
}

func TestClassify_SeringMayor(t *testing.T) {
	t.Parallel()

	l := types.LikelihoodSering
	i := types.ImpactMayor
	c, err := model.Classify(&l, &i)
	if err != nil {
		t.Fatal(err)
	}
	if *c.Score != 16 {
		t.Errorf("score = %d, want 16", *c.Score)
	}
	if c.Level != types.RiskLevelTinggi {
		t.Errorf("level = %s, want Tinggi", c.Level)
	}
}

func TestClassify_IncompleteAnalysis(t *testing.T) {
	t.Parallel()

	l := types.LikelihoodSering
	i := types.ImpactMayor

	for name, pair := range map[string]struct {
		l *types.Likelihood
		i *types.Impact
	}{
		"nil likelihood": {nil, &i},
		"nil impact":     {&l, nil},
		"both nil":       {nil, nil},
	} {
		c, err := model.Classify(pair.l, pair.i)
		if err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
		if c.Score != nil {
			t.Errorf("%s: score must be nil, got %d", name, *c.Score)
		}
		if c.Level != types.RiskLevelNA {
			t.Errorf("%s: level = %s, want N/A", name, c.Level)
		}
	}
}

func TestClassify_UnknownLevelIsIntegrityError(t *testing.T) {
	t.Parallel()

	bad := types.Likelihood("Selalu")
	i := types.ImpactMayor
	if _, err := model.Classify(&bad, &i); !errors.Is(err, types.ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}

	l := types.LikelihoodSering
	badImpact := types.Impact("Fatal")
	if _, err := model.Classify(&l, &badImpact); !errors.Is(err, types.ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
}
