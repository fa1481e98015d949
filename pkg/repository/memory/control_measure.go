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

type controlKey struct {
	tenant string
	id     types.ControlMeasureID
}

type controlMeasureRepository struct {
	mu       sync.RWMutex
	controls map[controlKey]*model.ControlMeasure
}

func newControlMeasureRepository() *controlMeasureRepository {
	return &controlMeasureRepository{
		controls: make(map[controlKey]*model.ControlMeasure),
	}
}

func copyControl(control *model.ControlMeasure) *model.ControlMeasure {
	c := *control
	return &c
}

func (r *controlMeasureRepository) Create(ctx context.Context, control *model.ControlMeasure) (*model.ControlMeasure, error) {
	if err := control.ID.Validate(); err != nil {
		return nil, err
	}
	if err := control.RiskCauseID.Validate(); err != nil {
		return nil, err
	}
	if err := control.Tenant.Validate(); err != nil {
		return nil, err
	}
	if !control.ControlType.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidEnum, "invalid control type", goerr.V("controlType", control.ControlType))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := controlKey{tenant: control.Tenant.Key(), id: control.ID}
	if _, exists := r.controls[key]; exists {
		return nil, goerr.New("control measure already exists", goerr.V("id", control.ID))
	}

	now := time.Now().UTC()
	created := copyControl(control)
	created.CreatedAt = now
	created.UpdatedAt = now

	r.controls[key] = created
	return copyControl(created), nil
}

func (r *controlMeasureRepository) Get(ctx context.Context, tenant model.Tenant, id types.ControlMeasureID) (*model.ControlMeasure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	control, exists := r.controls[controlKey{tenant: tenant.Key(), id: id}]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "control measure not found", goerr.V("id", id))
	}
	return copyControl(control), nil
}

func (r *controlMeasureRepository) ListByCause(ctx context.Context, tenant model.Tenant, causeID types.RiskCauseID) ([]*model.ControlMeasure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	controls := make([]*model.ControlMeasure, 0)
	for key, control := range r.controls {
		if key.tenant == tenant.Key() && control.RiskCauseID == causeID {
			controls = append(controls, copyControl(control))
		}
	}
	sort.Slice(controls, func(i, j int) bool {
		if controls[i].ControlType != controls[j].ControlType {
			return controls[i].ControlType < controls[j].ControlType
		}
		return controls[i].Sequence < controls[j].Sequence
	})
	return controls, nil
}

func (r *controlMeasureRepository) List(ctx context.Context, tenant model.Tenant) ([]*model.ControlMeasure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	controls := make([]*model.ControlMeasure, 0)
	for key, control := range r.controls {
		if key.tenant == tenant.Key() {
			controls = append(controls, copyControl(control))
		}
	}
	return controls, nil
}

func (r *controlMeasureRepository) Update(ctx context.Context, control *model.ControlMeasure) (*model.ControlMeasure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := controlKey{tenant: control.Tenant.Key(), id: control.ID}
	existing, exists := r.controls[key]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "control measure not found", goerr.V("id", control.ID))
	}

	updated := copyControl(control)
	updated.RiskCauseID = existing.RiskCauseID
	updated.PotentialRiskID = existing.PotentialRiskID
	updated.GoalID = existing.GoalID
	updated.ControlType = existing.ControlType
	updated.Sequence = existing.Sequence
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.controls[key] = updated
	return copyControl(updated), nil
}

func (r *controlMeasureRepository) Delete(ctx context.Context, tenant model.Tenant, id types.ControlMeasureID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := controlKey{tenant: tenant.Key(), id: id}
	if _, exists := r.controls[key]; !exists {
		return goerr.Wrap(ErrNotFound, "control measure not found", goerr.V("id", id))
	}
	delete(r.controls, key)
	return nil
}
