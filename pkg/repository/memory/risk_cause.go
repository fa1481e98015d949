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

type causeKey struct {
	tenant string
	id     types.RiskCauseID
}

type riskCauseRepository struct {
	mu     sync.RWMutex
	causes map[causeKey]*model.RiskCause
}

func newRiskCauseRepository() *riskCauseRepository {
	return &riskCauseRepository{
		causes: make(map[causeKey]*model.RiskCause),
	}
}

func copyCause(cause *model.RiskCause) *model.RiskCause {
	c := *cause
	if cause.Source != nil {
		v := *cause.Source
		c.Source = &v
	}
	if cause.Likelihood != nil {
		v := *cause.Likelihood
		c.Likelihood = &v
	}
	if cause.Impact != nil {
		v := *cause.Impact
		c.Impact = &v
	}
	return &c
}

func (r *riskCauseRepository) Create(ctx context.Context, cause *model.RiskCause) (*model.RiskCause, error) {
	if err := cause.ID.Validate(); err != nil {
		return nil, err
	}
	if err := cause.PotentialRiskID.Validate(); err != nil {
		return nil, err
	}
	if err := cause.Tenant.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := causeKey{tenant: cause.Tenant.Key(), id: cause.ID}
	if _, exists := r.causes[key]; exists {
		return nil, goerr.New("risk cause already exists", goerr.V("id", cause.ID))
	}

	now := time.Now().UTC()
	created := copyCause(cause)
	created.CreatedAt = now
	created.UpdatedAt = now

	r.causes[key] = created
	return copyCause(created), nil
}

func (r *riskCauseRepository) Get(ctx context.Context, tenant model.Tenant, id types.RiskCauseID) (*model.RiskCause, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cause, exists := r.causes[causeKey{tenant: tenant.Key(), id: id}]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk cause not found", goerr.V("id", id))
	}
	return copyCause(cause), nil
}

func (r *riskCauseRepository) ListByRisk(ctx context.Context, tenant model.Tenant, riskID types.PotentialRiskID) ([]*model.RiskCause, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	causes := make([]*model.RiskCause, 0)
	for key, cause := range r.causes {
		if key.tenant == tenant.Key() && cause.PotentialRiskID == riskID {
			causes = append(causes, copyCause(cause))
		}
	}
	sort.Slice(causes, func(i, j int) bool {
		return causes[i].Sequence < causes[j].Sequence
	})
	return causes, nil
}

func (r *riskCauseRepository) List(ctx context.Context, tenant model.Tenant) ([]*model.RiskCause, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	causes := make([]*model.RiskCause, 0)
	for key, cause := range r.causes {
		if key.tenant == tenant.Key() {
			causes = append(causes, copyCause(cause))
		}
	}
	return causes, nil
}

func (r *riskCauseRepository) Update(ctx context.Context, cause *model.RiskCause) (*model.RiskCause, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := causeKey{tenant: cause.Tenant.Key(), id: cause.ID}
	existing, exists := r.causes[key]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk cause not found", goerr.V("id", cause.ID))
	}

	updated := copyCause(cause)
	updated.PotentialRiskID = existing.PotentialRiskID
	updated.GoalID = existing.GoalID
	updated.Sequence = existing.Sequence
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.causes[key] = updated
	return copyCause(updated), nil
}

func (r *riskCauseRepository) Delete(ctx context.Context, tenant model.Tenant, id types.RiskCauseID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := causeKey{tenant: tenant.Key(), id: id}
	if _, exists := r.causes[key]; !exists {
		return goerr.Wrap(ErrNotFound, "risk cause not found", goerr.V("id", id))
	}
	delete(r.causes, key)
	return nil
}
