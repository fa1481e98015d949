package suggest

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/riskops-lab/manrisk/pkg/domain/interfaces"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/utils/logging"
)

// client implements interfaces.SuggestionService on a gollem LLM client.
//
// Every method follows the same recovery contract: a provider failure or a
// malformed response is logged and converted into the sanitized fallback
// result, never an error. The generative backend is inherently unreliable
// and callers must not have to special-case it.
type client struct {
	llmClient gollem.LLMClient
}

var _ interfaces.SuggestionService = &client{}

// New creates a new suggestion service with the provided LLM client
func New(llmClient gollem.LLMClient) (interfaces.SuggestionService, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}
	return &client{llmClient: llmClient}, nil
}

// generate runs one JSON-schema session and unmarshals the first text part
// into out. It returns false when no usable response was obtained; the
// caller then substitutes its sanitized fallback.
func (c *client) generate(ctx context.Context, systemPrompt, userPrompt string, schema *gollem.Parameter, out any) bool {
	logger := logging.From(ctx)

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(schema),
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		logger.Warn("failed to create LLM session", "error", err.Error())
		return false
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(userPrompt))
	if err != nil {
		logger.Warn("failed to generate suggestion", "error", err.Error())
		return false
	}
	if len(resp.Texts) == 0 {
		logger.Warn("LLM returned no text parts")
		return false
	}

	if err := json.Unmarshal([]byte(resp.Texts[0]), out); err != nil {
		logger.Warn("failed to parse suggestion response",
			"error", err.Error(), "response", resp.Texts[0])
		return false
	}
	return true
}

func (c *client) SuggestCauses(ctx context.Context, goal *model.Goal, risk *model.PotentialRisk) ([]model.CauseSuggestion, error) {
	var resp struct {
		Causes []model.RawCauseSuggestion `json:"causes"`
	}
	if !c.generate(ctx, causeSystemPrompt, buildCausePrompt(goal, risk), causeSchema(), &resp) {
		return model.SanitizeCauseSuggestions(nil), nil
	}
	return model.SanitizeCauseSuggestions(resp.Causes), nil
}

func (c *client) SuggestCauseAnalysis(ctx context.Context, risk *model.PotentialRisk, cause *model.RiskCause) (model.AnalysisSuggestion, error) {
	var raw model.RawAnalysisSuggestion
	if !c.generate(ctx, analysisSystemPrompt, buildAnalysisPrompt(risk, cause), analysisSchema(), &raw) {
		return model.SanitizeAnalysisSuggestion(nil), nil
	}
	return model.SanitizeAnalysisSuggestion(&raw), nil
}

func (c *client) SuggestControls(ctx context.Context, risk *model.PotentialRisk, cause *model.RiskCause) ([]model.ControlSuggestion, error) {
	var resp struct {
		Controls []model.RawControlSuggestion `json:"controls"`
	}
	if !c.generate(ctx, controlSystemPrompt, buildControlPrompt(risk, cause), controlSchema(), &resp) {
		return model.SanitizeControlSuggestions(nil), nil
	}
	return model.SanitizeControlSuggestions(resp.Controls), nil
}

func (c *client) SuggestKRI(ctx context.Context, risk *model.PotentialRisk, cause *model.RiskCause) (model.KRISuggestion, error) {
	var raw model.RawKRISuggestion
	if !c.generate(ctx, kriSystemPrompt, buildKRIPrompt(risk, cause), kriSchema(), &raw) {
		return model.SanitizeKRISuggestion(nil), nil
	}
	return model.SanitizeKRISuggestion(&raw), nil
}
