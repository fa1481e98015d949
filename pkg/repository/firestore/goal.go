package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type goalDoc struct {
	ID          string    `firestore:"id"`
	UPRID       string    `firestore:"upr_id"`
	Period      string    `firestore:"period"`
	Code        string    `firestore:"code"`
	Name        string    `firestore:"name"`
	Description string    `firestore:"description"`
	CreatedAt   time.Time `firestore:"created_at"`
	UpdatedAt   time.Time `firestore:"updated_at"`
}

func toGoalDoc(g *model.Goal) *goalDoc {
	return &goalDoc{
		ID:          string(g.ID),
		UPRID:       g.Tenant.UPRID,
		Period:      g.Tenant.Period,
		Code:        g.Code,
		Name:        g.Name,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func fromGoalDoc(d *goalDoc) *model.Goal {
	return &model.Goal{
		ID:          types.GoalID(d.ID),
		Tenant:      model.Tenant{UPRID: d.UPRID, Period: d.Period},
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type goalRepository struct {
	client *firestore.Client
}

func newGoalRepository(client *firestore.Client) *goalRepository {
	return &goalRepository{client: client}
}

func (r *goalRepository) collection(tenant model.Tenant) *firestore.CollectionRef {
	return r.client.Collection(collectionTenants).Doc(tenant.Key()).Collection(collectionGoals)
}

func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	if err := goal.ID.Validate(); err != nil {
		return nil, err
	}
	if err := goal.Tenant.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *goal
	created.CreatedAt = now
	created.UpdatedAt = now

	docRef := r.collection(goal.Tenant).Doc(string(goal.ID))
	if _, err := docRef.Create(ctx, toGoalDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create goal", goerr.V("id", goal.ID))
	}

	return &created, nil
}

func (r *goalRepository) Get(ctx context.Context, tenant model.Tenant, id types.GoalID) (*model.Goal, error) {
	doc, err := r.collection(tenant).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "goal not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get goal", goerr.V("id", id))
	}

	var d goalDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal goal", goerr.V("id", id))
	}
	return fromGoalDoc(&d), nil
}

func (r *goalRepository) List(ctx context.Context, tenant model.Tenant) ([]*model.Goal, error) {
	iter := r.collection(tenant).OrderBy("code", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var goals []*model.Goal
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list goals")
		}

		var d goalDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal goal")
		}
		goals = append(goals, fromGoalDoc(&d))
	}
	return goals, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	existing, err := r.Get(ctx, goal.Tenant, goal.ID)
	if err != nil {
		return nil, err
	}

	updated := *goal
	updated.Code = existing.Code
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	docRef := r.collection(goal.Tenant).Doc(string(goal.ID))
	if _, err := docRef.Set(ctx, toGoalDoc(&updated)); err != nil {
		return nil, goerr.Wrap(err, "failed to update goal", goerr.V("id", goal.ID))
	}
	return &updated, nil
}

func (r *goalRepository) Delete(ctx context.Context, tenant model.Tenant, id types.GoalID) error {
	docRef := r.collection(tenant).Doc(string(id))
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "goal not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get goal", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete goal", goerr.V("id", id))
	}
	return nil
}
