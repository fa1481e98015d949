package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/manrisk/pkg/cli/config"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	domainConfig "github.com/riskops-lab/manrisk/pkg/domain/model/config"
	"github.com/riskops-lab/manrisk/pkg/usecase"
	"github.com/riskops-lab/manrisk/pkg/utils/logging"
	"github.com/riskops-lab/manrisk/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var uprID string
	var period string
	var appCfg config.App
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "upr-id",
			Usage:       "UPR ID to scan (defaults to every UPR in the configuration file)",
			Sources:     cli.EnvVars("MANRISK_UPR_ID"),
			Destination: &uprID,
		},
		&cli.StringFlag{
			Name:        "period",
			Usage:       "Reporting period to scan (defaults to the configured default period)",
			Sources:     cli.EnvVars("MANRISK_PERIOD"),
			Destination: &period,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the configuration file and scan tenants for integrity violations",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			// Step 1: Load and validate the configuration file
			appConfig, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}
			if appConfig != nil {
				logger.Info("Configuration validation passed",
					"upr_count", len(appConfig.UPRs),
					"default_period", appConfig.DefaultPeriod,
				)
			}

			// Step 2: Decide which tenants to scan
			tenants, err := tenantsToScan(appConfig, uprID, period)
			if err != nil {
				return err
			}

			// Step 3: Scan each tenant for integrity violations
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(repo)

			var total int
			for _, tenant := range tenants {
				result, err := uc.ValidateTenant(ctx, tenant)
				if err != nil {
					return goerr.Wrap(err, "integrity scan failed", goerr.V("tenant", tenant.Key()))
				}

				if !result.HasIssues() {
					color.Green("✓ %s: no issues", tenant.Key())
					continue
				}

				color.Red("✗ %s: %d issue(s)", tenant.Key(), len(result.Issues))
				for _, issue := range result.Issues {
					color.Yellow("  [%s] %s %s: %s", issue.Kind, issue.Entity, issue.ID, issue.Message)
				}
				total += len(result.Issues)
			}

			if total > 0 {
				return fmt.Errorf("integrity scan found %d issue(s)", total)
			}
			return nil
		},
	}
}

// tenantsToScan resolves the --upr-id/--period flags against the configured
// UPR registry. With no registry both flags are required.
func tenantsToScan(appConfig *domainConfig.AppConfig, uprID, period string) ([]model.Tenant, error) {
	if appConfig == nil {
		if uprID == "" || period == "" {
			return nil, goerr.New("--upr-id and --period are required when no configuration file is given")
		}
		return []model.Tenant{{UPRID: uprID, Period: period}}, nil
	}

	if period == "" {
		period = appConfig.DefaultPeriod
	}
	if period == "" {
		return nil, goerr.New("--period is required when the configuration has no default period")
	}

	if uprID != "" {
		if appConfig.FindUPR(uprID) == nil {
			return nil, goerr.New("unknown UPR ID", goerr.V("upr_id", uprID))
		}
		return []model.Tenant{{UPRID: uprID, Period: period}}, nil
	}

	tenants := make([]model.Tenant, 0, len(appConfig.UPRs))
	for _, upr := range appConfig.UPRs {
		tenants = append(tenants, model.Tenant{UPRID: upr.ID, Period: period})
	}
	return tenants, nil
}
