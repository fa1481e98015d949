package config

// UPR represents a risk-owning unit known to the application
type UPR struct {
	ID   string
	Name string
}

// AppConfig is the domain representation of the application configuration:
// the registry of UPR units and the default reporting period.
type AppConfig struct {
	UPRs          []UPR
	DefaultPeriod string
}

// FindUPR returns the UPR with the given ID, or nil
func (c *AppConfig) FindUPR(id string) *UPR {
	for i := range c.UPRs {
		if c.UPRs[i].ID == id {
			return &c.UPRs[i]
		}
	}
	return nil
}
