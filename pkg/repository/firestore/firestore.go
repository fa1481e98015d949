package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/manrisk/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = goerr.New("record not found")

// Collection names under tenants/{tenantKey}
const (
	collectionTenants         = "tenants"
	collectionGoals           = "goals"
	collectionPotentialRisks  = "potential_risks"
	collectionRiskCauses      = "risk_causes"
	collectionControlMeasures = "control_measures"
)

type Firestore struct {
	client  *firestore.Client
	goal    *goalRepository
	risk    *potentialRiskRepository
	cause   *riskCauseRepository
	control *controlMeasureRepository
}

var _ interfaces.Repository = &Firestore{}

func New(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	return &Firestore{
		client:  client,
		goal:    newGoalRepository(client),
		risk:    newPotentialRiskRepository(client),
		cause:   newRiskCauseRepository(client),
		control: newControlMeasureRepository(client),
	}, nil
}

func (f *Firestore) Goal() interfaces.GoalRepository {
	return f.goal
}

func (f *Firestore) PotentialRisk() interfaces.PotentialRiskRepository {
	return f.risk
}

func (f *Firestore) RiskCause() interfaces.RiskCauseRepository {
	return f.cause
}

func (f *Firestore) ControlMeasure() interfaces.ControlMeasureRepository {
	return f.control
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
