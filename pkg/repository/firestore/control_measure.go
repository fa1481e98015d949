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

type controlMeasureDoc struct {
	ID                  string    `firestore:"id"`
	RiskCauseID         string    `firestore:"risk_cause_id"`
	PotentialRiskID     string    `firestore:"potential_risk_id"`
	GoalID              string    `firestore:"goal_id"`
	UPRID               string    `firestore:"upr_id"`
	Period              string    `firestore:"period"`
	ControlType         string    `firestore:"control_type"`
	Sequence            int       `firestore:"sequence"`
	Description         string    `firestore:"description"`
	KeyControlIndicator string    `firestore:"key_control_indicator"`
	Target              string    `firestore:"target"`
	ResponsiblePerson   string    `firestore:"responsible_person"`
	Deadline            string    `firestore:"deadline"`
	Budget              string    `firestore:"budget"`
	CreatedAt           time.Time `firestore:"created_at"`
	UpdatedAt           time.Time `firestore:"updated_at"`
}

func toControlMeasureDoc(c *model.ControlMeasure) *controlMeasureDoc {
	return &controlMeasureDoc{
		ID:                  string(c.ID),
		RiskCauseID:         string(c.RiskCauseID),
		PotentialRiskID:     string(c.PotentialRiskID),
		GoalID:              string(c.GoalID),
		UPRID:               c.Tenant.UPRID,
		Period:              c.Tenant.Period,
		ControlType:         string(c.ControlType),
		Sequence:            c.Sequence,
		Description:         c.Description,
		KeyControlIndicator: c.KeyControlIndicator,
		Target:              c.Target,
		ResponsiblePerson:   c.ResponsiblePerson,
		Deadline:            c.Deadline,
		Budget:              c.Budget,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func fromControlMeasureDoc(d *controlMeasureDoc) *model.ControlMeasure {
	return &model.ControlMeasure{
		ID:                  types.ControlMeasureID(d.ID),
		RiskCauseID:         types.RiskCauseID(d.RiskCauseID),
		PotentialRiskID:     types.PotentialRiskID(d.PotentialRiskID),
		GoalID:              types.GoalID(d.GoalID),
		Tenant:              model.Tenant{UPRID: d.UPRID, Period: d.Period},
		ControlType:         types.ControlMeasureType(d.ControlType),
		Sequence:            d.Sequence,
		Description:         d.Description,
		KeyControlIndicator: d.KeyControlIndicator,
		Target:              d.Target,
		ResponsiblePerson:   d.ResponsiblePerson,
		Deadline:            d.Deadline,
		Budget:              d.Budget,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

type controlMeasureRepository struct {
	client *firestore.Client
}

func newControlMeasureRepository(client *firestore.Client) *controlMeasureRepository {
	return &controlMeasureRepository{client: client}
}

func (r *controlMeasureRepository) collection(tenant model.Tenant) *firestore.CollectionRef {
	return r.client.Collection(collectionTenants).Doc(tenant.Key()).Collection(collectionControlMeasures)
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

	now := time.Now().UTC()
	created := *control
	created.CreatedAt = now
	created.UpdatedAt = now

	docRef := r.collection(control.Tenant).Doc(string(control.ID))
	if _, err := docRef.Create(ctx, toControlMeasureDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create control measure", goerr.V("id", control.ID))
	}
	return &created, nil
}

func (r *controlMeasureRepository) Get(ctx context.Context, tenant model.Tenant, id types.ControlMeasureID) (*model.ControlMeasure, error) {
	doc, err := r.collection(tenant).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "control measure not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get control measure", goerr.V("id", id))
	}

	var d controlMeasureDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal control measure", goerr.V("id", id))
	}
	return fromControlMeasureDoc(&d), nil
}

func (r *controlMeasureRepository) listQuery(ctx context.Context, q firestore.Query) ([]*model.ControlMeasure, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var controls []*model.ControlMeasure
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list control measures")
		}

		var d controlMeasureDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal control measure")
		}
		controls = append(controls, fromControlMeasureDoc(&d))
	}
	return controls, nil
}

func (r *controlMeasureRepository) ListByCause(ctx context.Context, tenant model.Tenant, causeID types.RiskCauseID) ([]*model.ControlMeasure, error) {
	return r.listQuery(ctx, r.collection(tenant).
		Where("risk_cause_id", "==", string(causeID)).
		OrderBy("control_type", firestore.Asc).
		OrderBy("sequence", firestore.Asc))
}

func (r *controlMeasureRepository) List(ctx context.Context, tenant model.Tenant) ([]*model.ControlMeasure, error) {
	return r.listQuery(ctx, r.collection(tenant).Query)
}

func (r *controlMeasureRepository) Update(ctx context.Context, control *model.ControlMeasure) (*model.ControlMeasure, error) {
	existing, err := r.Get(ctx, control.Tenant, control.ID)
	if err != nil {
		return nil, err
	}

	updated := *control
	updated.RiskCauseID = existing.RiskCauseID
	updated.PotentialRiskID = existing.PotentialRiskID
	updated.GoalID = existing.GoalID
	updated.ControlType = existing.ControlType
	updated.Sequence = existing.Sequence
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	docRef := r.collection(control.Tenant).Doc(string(control.ID))
	if _, err := docRef.Set(ctx, toControlMeasureDoc(&updated)); err != nil {
		return nil, goerr.Wrap(err, "failed to update control measure", goerr.V("id", control.ID))
	}
	return &updated, nil
}

func (r *controlMeasureRepository) Delete(ctx context.Context, tenant model.Tenant, id types.ControlMeasureID) error {
	docRef := r.collection(tenant).Doc(string(id))
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "control measure not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get control measure", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete control measure", goerr.V("id", id))
	}
	return nil
}
