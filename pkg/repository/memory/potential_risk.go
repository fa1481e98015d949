package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

type riskKey struct {
	tenant string
	id     types.PotentialRiskID
}

type potentialRiskRepository struct {
	mu    sync.RWMutex
	risks map[riskKey]*model.PotentialRisk
}

func newPotentialRiskRepository() *potentialRiskRepository {
	return &potentialRiskRepository{
		risks: make(map[riskKey]*model.PotentialRisk),
	}
}

func copyRisk(risk *model.PotentialRisk) *model.PotentialRisk {
	c := *risk
	if risk.Category != nil {
		v := *risk.Category
		c.Category = &v
	}
	if risk.Likelihood != nil {
		v := *risk.Likelihood
		c.Likelihood = &v
	}
	if risk.Impact != nil {
		v := *risk.Impact
		c.Impact = &v
	}
	return &c
}

func (r *potentialRiskRepository) Create(ctx context.Context, risk *model.PotentialRisk) (*model.PotentialRisk, error) {
	if err := risk.ID.Validate(); err != nil {
		return nil, err
	}
	if err := risk.GoalID.Validate(); err != nil {
		return nil, err
	}
	if err := risk.Tenant.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := riskKey{tenant: risk.Tenant.Key(), id: risk.ID}
	if _, exists := r.risks[key]; exists {
		return nil, goerr.New("potential risk already exists", goerr.V("id", risk.ID))
	}

	now := time.Now().UTC()
	created := copyRisk(risk)
	created.CreatedAt = now
	created.UpdatedAt = now

	r.risks[key] = created
	return copyRisk(created), nil
}

func (r *potentialRiskRepository) Get(ctx context.Context, tenant model.Tenant, id types.PotentialRiskID) (*model.PotentialRisk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risk, exists := r.risks[riskKey{tenant: tenant.Key(), id: id}]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "potential risk not found", goerr.V("id", id))
	}
	return copyRisk(risk), nil
}

func (r *potentialRiskRepository) ListByGoal(ctx context.Context, tenant model.Tenant, goalID types.GoalID) ([]*model.PotentialRisk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risks := make([]*model.PotentialRisk, 0)
	for key, risk := range r.risks {
		if key.tenant == tenant.Key() && risk.GoalID == goalID {
			risks = append(risks, copyRisk(risk))
		}
	}
	sort.Slice(risks, func(i, j int) bool {
		return risks[i].Sequence < risks[j].Sequence
	})
	return risks, nil
}

func (r *potentialRiskRepository) List(ctx context.Context, tenant model.Tenant) ([]*model.PotentialRisk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risks := make([]*model.PotentialRisk, 0)
	for key, risk := range r.risks {
		if key.tenant == tenant.Key() {
			risks = append(risks, copyRisk(risk))
		}
	}
	return risks, nil
}

func (r *potentialRiskRepository) Update(ctx context.Context, risk *model.PotentialRisk) (*model.PotentialRisk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := riskKey{tenant: risk.Tenant.Key(), id: risk.ID}
	existing, exists := r.risks[key]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "potential risk not found", goerr.V("id", risk.ID))
	}

	updated := copyRisk(risk)
	updated.GoalID = existing.GoalID
	updated.Sequence = existing.Sequence
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.risks[key] = updated
	return copyRisk(updated), nil
}

func (r *potentialRiskRepository) Delete(ctx context.Context, tenant model.Tenant, id types.PotentialRiskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := riskKey{tenant: tenant.Key(), id: id}
	if _, exists := r.risks[key]; !exists {
		return goerr.Wrap(ErrNotFound, "potential risk not found", goerr.V("id", id))
	}
	delete(r.risks, key)
	return nil
}
