package interfaces

import (
	"context"

	"github.com/riskops-lab/manrisk/pkg/domain/model"
)

// SuggestionService produces AI-generated suggestions for the four entity
// kinds. Implementations own the provider call and must sanitize the raw
// response before returning: results are always structurally complete and
// contain only values allowed by the closed enumerations. A provider failure
// surfaces as the documented fallback values, never as an error the caller
// has to special-case.
type SuggestionService interface {
	// SuggestCauses proposes causes for a potential risk
	SuggestCauses(ctx context.Context, goal *model.Goal, risk *model.PotentialRisk) ([]model.CauseSuggestion, error)

	// SuggestCauseAnalysis proposes likelihood/impact levels for a cause
	SuggestCauseAnalysis(ctx context.Context, risk *model.PotentialRisk, cause *model.RiskCause) (model.AnalysisSuggestion, error)

	// SuggestControls proposes control measures for a cause
	SuggestControls(ctx context.Context, risk *model.PotentialRisk, cause *model.RiskCause) ([]model.ControlSuggestion, error)

	// SuggestKRI proposes a key risk indicator and tolerance for a cause
	SuggestKRI(ctx context.Context, risk *model.PotentialRisk, cause *model.RiskCause) (model.KRISuggestion, error)
}
