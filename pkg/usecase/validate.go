package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

// IssueKind classifies an integrity finding
type IssueKind string

const (
	IssueDuplicateCode     IssueKind = "duplicate_code"
	IssueDuplicateSequence IssueKind = "duplicate_sequence"
	IssueOrphanedChild     IssueKind = "orphaned_child"
	IssueInvalidEnum       IssueKind = "invalid_enum"
)

// ValidationIssue is one integrity finding in a tenant's records
type ValidationIssue struct {
	Kind    IssueKind
	Entity  string
	ID      string
	Message string
}

// ValidationResult collects the findings of an integrity scan
type ValidationResult struct {
	Issues []ValidationIssue
}

func (r *ValidationResult) HasIssues() bool {
	return len(r.Issues) > 0
}

func (r *ValidationResult) add(kind IssueKind, entity, id, format string, args ...any) {
	r.Issues = append(r.Issues, ValidationIssue{
		Kind:    kind,
		Entity:  entity,
		ID:      id,
		Message: fmt.Sprintf(format, args...),
	})
}

// ValidateTenant scans all records of a tenant for integrity violations:
// duplicate goal codes, duplicate sibling sequences, orphaned children and
// persisted values outside their enumerations. The four collections are
// loaded concurrently; the checks themselves run on the snapshot.
func (uc *UseCases) ValidateTenant(ctx context.Context, tenant model.Tenant) (*ValidationResult, error) {
	if err := tenant.Validate(); err != nil {
		return nil, err
	}

	var goals []*model.Goal
	var risks []*model.PotentialRisk
	var causes []*model.RiskCause
	var controls []*model.ControlMeasure

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		goals, err = uc.repo.Goal().List(egCtx, tenant)
		return err
	})
	eg.Go(func() error {
		var err error
		risks, err = uc.repo.PotentialRisk().List(egCtx, tenant)
		return err
	})
	eg.Go(func() error {
		var err error
		causes, err = uc.repo.RiskCause().List(egCtx, tenant)
		return err
	})
	eg.Go(func() error {
		var err error
		controls, err = uc.repo.ControlMeasure().List(egCtx, tenant)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to load tenant records", goerr.V(TenantKey, tenant.Key()))
	}

	result := &ValidationResult{}
	checkGoals(result, goals)
	checkRisks(result, goals, risks)
	checkCauses(result, risks, causes)
	checkControls(result, causes, controls)
	return result, nil
}

func checkGoals(result *ValidationResult, goals []*model.Goal) {
	byCode := make(map[string]types.GoalID, len(goals))
	for _, g := range goals {
		if prev, ok := byCode[g.Code]; ok {
			result.add(IssueDuplicateCode, "goal", g.ID.String(),
				"code %q already held by goal %s", g.Code, prev)
			continue
		}
		byCode[g.Code] = g.ID
	}
}

func checkRisks(result *ValidationResult, goals []*model.Goal, risks []*model.PotentialRisk) {
	goalIDs := make(map[types.GoalID]bool, len(goals))
	for _, g := range goals {
		goalIDs[g.ID] = true
	}

	seen := make(map[string]bool, len(risks))
	for _, r := range risks {
		if !goalIDs[r.GoalID] {
			result.add(IssueOrphanedChild, "potential_risk", r.ID.String(),
				"references missing goal %s", r.GoalID)
		}
		seqKey := fmt.Sprintf("%s/%d", r.GoalID, r.Sequence)
		if seen[seqKey] {
			result.add(IssueDuplicateSequence, "potential_risk", r.ID.String(),
				"sequence %d duplicated under goal %s", r.Sequence, r.GoalID)
		}
		seen[seqKey] = true

		if r.Category != nil && !r.Category.IsValid() {
			result.add(IssueInvalidEnum, "potential_risk", r.ID.String(),
				"unknown category %q", *r.Category)
		}
		checkAnalysis(result, "potential_risk", r.ID.String(), r.Likelihood, r.Impact)
	}
}

func checkCauses(result *ValidationResult, risks []*model.PotentialRisk, causes []*model.RiskCause) {
	riskIDs := make(map[types.PotentialRiskID]bool, len(risks))
	for _, r := range risks {
		riskIDs[r.ID] = true
	}

	seen := make(map[string]bool, len(causes))
	for _, c := range causes {
		if !riskIDs[c.PotentialRiskID] {
			result.add(IssueOrphanedChild, "risk_cause", c.ID.String(),
				"references missing potential risk %s", c.PotentialRiskID)
		}
		seqKey := fmt.Sprintf("%s/%d", c.PotentialRiskID, c.Sequence)
		if seen[seqKey] {
			result.add(IssueDuplicateSequence, "risk_cause", c.ID.String(),
				"sequence %d duplicated under potential risk %s", c.Sequence, c.PotentialRiskID)
		}
		seen[seqKey] = true

		if c.Source != nil && !c.Source.IsValid() {
			result.add(IssueInvalidEnum, "risk_cause", c.ID.String(),
				"unknown source %q", *c.Source)
		}
		checkAnalysis(result, "risk_cause", c.ID.String(), c.Likelihood, c.Impact)
	}
}

func checkControls(result *ValidationResult, causes []*model.RiskCause, controls []*model.ControlMeasure) {
	causeIDs := make(map[types.RiskCauseID]bool, len(causes))
	for _, c := range causes {
		causeIDs[c.ID] = true
	}

	seen := make(map[string]bool, len(controls))
	for _, c := range controls {
		if !causeIDs[c.RiskCauseID] {
			result.add(IssueOrphanedChild, "control_measure", c.ID.String(),
				"references missing risk cause %s", c.RiskCauseID)
		}
		if !c.ControlType.IsValid() {
			result.add(IssueInvalidEnum, "control_measure", c.ID.String(),
				"unknown control type %q", c.ControlType)
		}
		// Numbering is per (cause, type).
		seqKey := fmt.Sprintf("%s/%s/%d", c.RiskCauseID, c.ControlType, c.Sequence)
		if seen[seqKey] {
			result.add(IssueDuplicateSequence, "control_measure", c.ID.String(),
				"sequence %d duplicated under cause %s type %s", c.Sequence, c.RiskCauseID, c.ControlType)
		}
		seen[seqKey] = true
	}
}

func checkAnalysis(result *ValidationResult, entity, id string, likelihood *types.Likelihood, impact *types.Impact) {
	if likelihood != nil && !likelihood.IsValid() {
		result.add(IssueInvalidEnum, entity, id, "unknown likelihood %q", *likelihood)
	}
	if impact != nil && !impact.IsValid() {
		result.add(IssueInvalidEnum, entity, id, "unknown impact %q", *impact)
	}
}
