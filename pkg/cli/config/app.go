package config

import (
	"os"
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/riskops-lab/manrisk/pkg/domain/model/config"
	"github.com/urfave/cli/v3"
)

// uprIDPattern restricts UPR IDs to lowercase slug form so they can be used
// directly as URL path segments and Firestore document IDs.
var uprIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// App holds the CLI flag for the application configuration file
type App struct {
	path string
}

// Flags returns CLI flags for application configuration
func (a *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to the TOML configuration file with the UPR registry",
			Sources:     cli.EnvVars("MANRISK_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Path returns the configured file path
func (a *App) Path() string {
	return a.path
}

// Configure loads and validates the TOML configuration. Returns nil without
// error when no path is configured; the UPR registry endpoints are then
// disabled and tenants are accepted as-is.
func (a *App) Configure() (*domainConfig.AppConfig, error) {
	if a.path == "" {
		return nil, nil
	}
	return LoadAppConfiguration(a.path)
}

// AppConfig represents the application configuration file
type AppConfig struct {
	UPRs          []UPR  `toml:"upr"`
	DefaultPeriod string `toml:"default_period"`
}

// UPR represents one risk-owning unit entry in the configuration file
type UPR struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// Validate checks if the UPR entry is valid
func (u *UPR) Validate() error {
	if !uprIDPattern.MatchString(u.ID) {
		return goerr.Wrap(ErrInvalidConfig, "invalid UPR ID", goerr.V(UPRIDKey, u.ID))
	}
	if u.Name == "" {
		return goerr.Wrap(ErrMissingName, "UPR name is required", goerr.V(UPRIDKey, u.ID))
	}
	return nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	uprIDs := make(map[string]bool)
	for i, upr := range a.UPRs {
		if err := upr.Validate(); err != nil {
			return goerr.Wrap(err, "invalid UPR", goerr.V(UPRIndexKey, i))
		}
		if uprIDs[upr.ID] {
			return goerr.Wrap(ErrDuplicateUPRID, "duplicate UPR ID", goerr.V(UPRIDKey, upr.ID))
		}
		uprIDs[upr.ID] = true
	}
	return nil
}

// LoadAppConfiguration loads the application configuration from a TOML file
func LoadAppConfiguration(path string) (*domainConfig.AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "failed to read config file", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V(ConfigPathKey, path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return config.ToDomain(), nil
}

// ToDomain converts AppConfig to the domain representation
func (a *AppConfig) ToDomain() *domainConfig.AppConfig {
	uprs := make([]domainConfig.UPR, len(a.UPRs))
	for i, upr := range a.UPRs {
		uprs[i] = domainConfig.UPR{
			ID:   upr.ID,
			Name: upr.Name,
		}
	}

	return &domainConfig.AppConfig{
		UPRs:          uprs,
		DefaultPeriod: a.DefaultPeriod,
	}
}
