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

type riskCauseDoc struct {
	ID               string    `firestore:"id"`
	PotentialRiskID  string    `firestore:"potential_risk_id"`
	GoalID           string    `firestore:"goal_id"`
	UPRID            string    `firestore:"upr_id"`
	Period           string    `firestore:"period"`
	Sequence         int       `firestore:"sequence"`
	Description      string    `firestore:"description"`
	Source           string    `firestore:"source"`
	KeyRiskIndicator string    `firestore:"key_risk_indicator"`
	RiskTolerance    string    `firestore:"risk_tolerance"`
	Likelihood       string    `firestore:"likelihood"`
	Impact           string    `firestore:"impact"`
	CreatedAt        time.Time `firestore:"created_at"`
	UpdatedAt        time.Time `firestore:"updated_at"`
}

func toRiskCauseDoc(cause *model.RiskCause) *riskCauseDoc {
	d := &riskCauseDoc{
		ID:               string(cause.ID),
		PotentialRiskID:  string(cause.PotentialRiskID),
		GoalID:           string(cause.GoalID),
		UPRID:            cause.Tenant.UPRID,
		Period:           cause.Tenant.Period,
		Sequence:         cause.Sequence,
		Description:      cause.Description,
		KeyRiskIndicator: cause.KeyRiskIndicator,
		RiskTolerance:    cause.RiskTolerance,
		CreatedAt:        cause.CreatedAt,
		UpdatedAt:        cause.UpdatedAt,
	}
	if cause.Source != nil {
		d.Source = string(*cause.Source)
	}
	if cause.Likelihood != nil {
		d.Likelihood = string(*cause.Likelihood)
	}
	if cause.Impact != nil {
		d.Impact = string(*cause.Impact)
	}
	return d
}

func fromRiskCauseDoc(d *riskCauseDoc) *model.RiskCause {
	cause := &model.RiskCause{
		ID:               types.RiskCauseID(d.ID),
		PotentialRiskID:  types.PotentialRiskID(d.PotentialRiskID),
		GoalID:           types.GoalID(d.GoalID),
		Tenant:           model.Tenant{UPRID: d.UPRID, Period: d.Period},
		Sequence:         d.Sequence,
		Description:      d.Description,
		KeyRiskIndicator: d.KeyRiskIndicator,
		RiskTolerance:    d.RiskTolerance,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
	if d.Source != "" {
		v := types.RiskSource(d.Source)
		cause.Source = &v
	}
	if d.Likelihood != "" {
		v := types.Likelihood(d.Likelihood)
		cause.Likelihood = &v
	}
	if d.Impact != "" {
		v := types.Impact(d.Impact)
		cause.Impact = &v
	}
	return cause
}

type riskCauseRepository struct {
	client *firestore.Client
}

func newRiskCauseRepository(client *firestore.Client) *riskCauseRepository {
	return &riskCauseRepository{client: client}
}

func (r *riskCauseRepository) collection(tenant model.Tenant) *firestore.CollectionRef {
	return r.client.Collection(collectionTenants).Doc(tenant.Key()).Collection(collectionRiskCauses)
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

	now := time.Now().UTC()
	created := *cause
	created.CreatedAt = now
	created.UpdatedAt = now

	docRef := r.collection(cause.Tenant).Doc(string(cause.ID))
	if _, err := docRef.Create(ctx, toRiskCauseDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create risk cause", goerr.V("id", cause.ID))
	}
	return &created, nil
}

func (r *riskCauseRepository) Get(ctx context.Context, tenant model.Tenant, id types.RiskCauseID) (*model.RiskCause, error) {
	doc, err := r.collection(tenant).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "risk cause not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get risk cause", goerr.V("id", id))
	}

	var d riskCauseDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal risk cause", goerr.V("id", id))
	}
	return fromRiskCauseDoc(&d), nil
}

func (r *riskCauseRepository) listQuery(ctx context.Context, q firestore.Query) ([]*model.RiskCause, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var causes []*model.RiskCause
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list risk causes")
		}

		var d riskCauseDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal risk cause")
		}
		causes = append(causes, fromRiskCauseDoc(&d))
	}
	return causes, nil
}

func (r *riskCauseRepository) ListByRisk(ctx context.Context, tenant model.Tenant, riskID types.PotentialRiskID) ([]*model.RiskCause, error) {
	return r.listQuery(ctx, r.collection(tenant).
		Where("potential_risk_id", "==", string(riskID)).
		OrderBy("sequence", firestore.Asc))
}

func (r *riskCauseRepository) List(ctx context.Context, tenant model.Tenant) ([]*model.RiskCause, error) {
	return r.listQuery(ctx, r.collection(tenant).Query)
}

func (r *riskCauseRepository) Update(ctx context.Context, cause *model.RiskCause) (*model.RiskCause, error) {
	existing, err := r.Get(ctx, cause.Tenant, cause.ID)
	if err != nil {
		return nil, err
	}

	updated := *cause
	updated.PotentialRiskID = existing.PotentialRiskID
	updated.GoalID = existing.GoalID
	updated.Sequence = existing.Sequence
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	docRef := r.collection(cause.Tenant).Doc(string(cause.ID))
	if _, err := docRef.Set(ctx, toRiskCauseDoc(&updated)); err != nil {
		return nil, goerr.Wrap(err, "failed to update risk cause", goerr.V("id", cause.ID))
	}
	return &updated, nil
}

func (r *riskCauseRepository) Delete(ctx context.Context, tenant model.Tenant, id types.RiskCauseID) error {
	docRef := r.collection(tenant).Doc(string(id))
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "risk cause not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get risk cause", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete risk cause", goerr.V("id", id))
	}
	return nil
}
