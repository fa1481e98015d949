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

type potentialRiskDoc struct {
	ID          string    `firestore:"id"`
	GoalID      string    `firestore:"goal_id"`
	UPRID       string    `firestore:"upr_id"`
	Period      string    `firestore:"period"`
	Sequence    int       `firestore:"sequence"`
	Description string    `firestore:"description"`
	Category    string    `firestore:"category"`
	Owner       string    `firestore:"owner"`
	Likelihood  string    `firestore:"likelihood"`
	Impact      string    `firestore:"impact"`
	CreatedAt   time.Time `firestore:"created_at"`
	UpdatedAt   time.Time `firestore:"updated_at"`
}

func toPotentialRiskDoc(risk *model.PotentialRisk) *potentialRiskDoc {
	d := &potentialRiskDoc{
		ID:          string(risk.ID),
		GoalID:      string(risk.GoalID),
		UPRID:       risk.Tenant.UPRID,
		Period:      risk.Tenant.Period,
		Sequence:    risk.Sequence,
		Description: risk.Description,
		Owner:       risk.Owner,
		CreatedAt:   risk.CreatedAt,
		UpdatedAt:   risk.UpdatedAt,
	}
	if risk.Category != nil {
		d.Category = string(*risk.Category)
	}
	if risk.Likelihood != nil {
		d.Likelihood = string(*risk.Likelihood)
	}
	if risk.Impact != nil {
		d.Impact = string(*risk.Impact)
	}
	return d
}

func fromPotentialRiskDoc(d *potentialRiskDoc) *model.PotentialRisk {
	risk := &model.PotentialRisk{
		ID:          types.PotentialRiskID(d.ID),
		GoalID:      types.GoalID(d.GoalID),
		Tenant:      model.Tenant{UPRID: d.UPRID, Period: d.Period},
		Sequence:    d.Sequence,
		Description: d.Description,
		Owner:       d.Owner,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.Category != "" {
		v := types.RiskCategory(d.Category)
		risk.Category = &v
	}
	if d.Likelihood != "" {
		v := types.Likelihood(d.Likelihood)
		risk.Likelihood = &v
	}
	if d.Impact != "" {
		v := types.Impact(d.Impact)
		risk.Impact = &v
	}
	return risk
}

type potentialRiskRepository struct {
	client *firestore.Client
}

func newPotentialRiskRepository(client *firestore.Client) *potentialRiskRepository {
	return &potentialRiskRepository{client: client}
}

func (r *potentialRiskRepository) collection(tenant model.Tenant) *firestore.CollectionRef {
	return r.client.Collection(collectionTenants).Doc(tenant.Key()).Collection(collectionPotentialRisks)
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

	now := time.Now().UTC()
	created := *risk
	created.CreatedAt = now
	created.UpdatedAt = now

	docRef := r.collection(risk.Tenant).Doc(string(risk.ID))
	if _, err := docRef.Create(ctx, toPotentialRiskDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create potential risk", goerr.V("id", risk.ID))
	}
	return &created, nil
}

func (r *potentialRiskRepository) Get(ctx context.Context, tenant model.Tenant, id types.PotentialRiskID) (*model.PotentialRisk, error) {
	doc, err := r.collection(tenant).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "potential risk not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get potential risk", goerr.V("id", id))
	}

	var d potentialRiskDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal potential risk", goerr.V("id", id))
	}
	return fromPotentialRiskDoc(&d), nil
}

func (r *potentialRiskRepository) listQuery(ctx context.Context, q firestore.Query) ([]*model.PotentialRisk, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var risks []*model.PotentialRisk
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list potential risks")
		}

		var d potentialRiskDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal potential risk")
		}
		risks = append(risks, fromPotentialRiskDoc(&d))
	}
	return risks, nil
}

func (r *potentialRiskRepository) ListByGoal(ctx context.Context, tenant model.Tenant, goalID types.GoalID) ([]*model.PotentialRisk, error) {
	return r.listQuery(ctx, r.collection(tenant).
		Where("goal_id", "==", string(goalID)).
		OrderBy("sequence", firestore.Asc))
}

func (r *potentialRiskRepository) List(ctx context.Context, tenant model.Tenant) ([]*model.PotentialRisk, error) {
	return r.listQuery(ctx, r.collection(tenant).Query)
}

func (r *potentialRiskRepository) Update(ctx context.Context, risk *model.PotentialRisk) (*model.PotentialRisk, error) {
	existing, err := r.Get(ctx, risk.Tenant, risk.ID)
	if err != nil {
		return nil, err
	}

	updated := *risk
	updated.GoalID = existing.GoalID
	updated.Sequence = existing.Sequence
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	docRef := r.collection(risk.Tenant).Doc(string(risk.ID))
	if _, err := docRef.Set(ctx, toPotentialRiskDoc(&updated)); err != nil {
		return nil, goerr.Wrap(err, "failed to update potential risk", goerr.V("id", risk.ID))
	}
	return &updated, nil
}

func (r *potentialRiskRepository) Delete(ctx context.Context, tenant model.Tenant, id types.PotentialRiskID) error {
	docRef := r.collection(tenant).Doc(string(id))
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "potential risk not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get potential risk", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete potential risk", goerr.V("id", id))
	}
	return nil
}
