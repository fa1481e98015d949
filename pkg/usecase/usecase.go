package usecase

import (
	"github.com/riskops-lab/manrisk/pkg/domain/interfaces"
)

type UseCases struct {
	repo       interfaces.Repository
	suggestion interfaces.SuggestionService

	Goal    *GoalUseCase
	Risk    *RiskUseCase
	Cause   *CauseUseCase
	Control *ControlUseCase
	Suggest *SuggestUseCase
}

type Option func(*UseCases)

// WithSuggestion attaches a generative suggestion provider. Without it the
// suggestion use case reports ErrSuggestionUnavailable and everything else
// works unchanged.
func WithSuggestion(svc interfaces.SuggestionService) Option {
	return func(uc *UseCases) {
		uc.suggestion = svc
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Goal = NewGoalUseCase(repo)
	uc.Risk = NewRiskUseCase(repo)
	uc.Cause = NewCauseUseCase(repo)
	uc.Control = NewControlUseCase(repo)
	uc.Suggest = NewSuggestUseCase(repo, uc.suggestion)

	return uc
}
