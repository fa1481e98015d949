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

type goalKey struct {
	tenant string
	id     types.GoalID
}

type goalRepository struct {
	mu    sync.RWMutex
	goals map[goalKey]*model.Goal
}

func newGoalRepository() *goalRepository {
	return &goalRepository{
		goals: make(map[goalKey]*model.Goal),
	}
}

func copyGoal(g *model.Goal) *model.Goal {
	c := *g
	return &c
}

func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	if err := goal.ID.Validate(); err != nil {
		return nil, err
	}
	if err := goal.Tenant.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := goalKey{tenant: goal.Tenant.Key(), id: goal.ID}
	if _, exists := r.goals[key]; exists {
		return nil, goerr.New("goal already exists", goerr.V("id", goal.ID))
	}

	now := time.Now().UTC()
	created := copyGoal(goal)
	created.CreatedAt = now
	created.UpdatedAt = now

	r.goals[key] = created
	return copyGoal(created), nil
}

func (r *goalRepository) Get(ctx context.Context, tenant model.Tenant, id types.GoalID) (*model.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goal, exists := r.goals[goalKey{tenant: tenant.Key(), id: id}]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "goal not found", goerr.V("id", id))
	}
	return copyGoal(goal), nil
}

func (r *goalRepository) List(ctx context.Context, tenant model.Tenant) ([]*model.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := make([]*model.Goal, 0)
	for key, goal := range r.goals {
		if key.tenant == tenant.Key() {
			goals = append(goals, copyGoal(goal))
		}
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].Code < goals[j].Code
	})
	return goals, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := goalKey{tenant: goal.Tenant.Key(), id: goal.ID}
	existing, exists := r.goals[key]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "goal not found", goerr.V("id", goal.ID))
	}

	updated := copyGoal(goal)
	updated.Code = existing.Code
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.goals[key] = updated
	return copyGoal(updated), nil
}

func (r *goalRepository) Delete(ctx context.Context, tenant model.Tenant, id types.GoalID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := goalKey{tenant: tenant.Key(), id: id}
	if _, exists := r.goals[key]; !exists {
		return goerr.Wrap(ErrNotFound, "goal not found", goerr.V("id", id))
	}
	delete(r.goals, key)
	return nil
}
