package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// Tenant scopes every record to a risk-owning unit (UPR) and a reporting
// period. It is an explicit parameter of every core operation, never ambient
// state.
type Tenant struct {
	UPRID  string
	Period string
}

// Validate checks if the Tenant is complete
func (t Tenant) Validate() error {
	if t.UPRID == "" {
		return goerr.New("UPR ID is required")
	}
	if t.Period == "" {
		return goerr.New("period is required")
	}
	return nil
}

// Key returns the storage scope key for the tenant
func (t Tenant) Key() string {
	return t.UPRID + "_" + t.Period
}
