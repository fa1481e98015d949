package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/riskops-lab/manrisk/pkg/cli/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manrisk.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadAppConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "valid configuration",
			content: `
default_period = "2026"

[[upr]]
id = "dinas-kesehatan"
name = "Dinas Kesehatan"

[[upr]]
id = "dinas-pendidikan"
name = "Dinas Pendidikan"
`,
		},
		{
			name: "duplicate UPR ID",
			content: `
[[upr]]
id = "dinas-kesehatan"
name = "Dinas Kesehatan"

[[upr]]
id = "dinas-kesehatan"
name = "Dinas Kesehatan Kota"
`,
			wantErr: config.ErrDuplicateUPRID,
		},
		{
			name: "missing name",
			content: `
[[upr]]
id = "dinas-kesehatan"
`,
			wantErr: config.ErrMissingName,
		},
		{
			name: "invalid ID format",
			content: `
[[upr]]
id = "Dinas Kesehatan"
name = "Dinas Kesehatan"
`,
			wantErr: config.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			cfg, err := config.LoadAppConfiguration(path)

			if tt.wantErr != nil {
				gt.Error(t, err)
				gt.Bool(t, errors.Is(err, tt.wantErr)).True()
				return
			}

			gt.NoError(t, err).Required()
			gt.Array(t, cfg.UPRs).Length(2)
			gt.Value(t, cfg.DefaultPeriod).Equal("2026")
			gt.Value(t, cfg.FindUPR("dinas-kesehatan")).NotNil()
			gt.Value(t, cfg.FindUPR("dinas-sosial")).Nil()
		})
	}
}

func TestLoadAppConfiguration_MissingFile(t *testing.T) {
	_, err := config.LoadAppConfiguration(filepath.Join(t.TempDir(), "nope.toml"))
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, config.ErrConfigNotFound)).True()
}

func TestLoadAppConfiguration_BrokenTOML(t *testing.T) {
	path := writeConfig(t, "[[upr")
	_, err := config.LoadAppConfiguration(path)
	gt.Error(t, err)
}
