package config_test

import (
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/riskops-lab/manrisk/pkg/cli/config"
	"github.com/riskops-lab/manrisk/pkg/utils/logging"
)

func TestLoggerConfigure(t *testing.T) {
	restore := logging.Default()
	defer logging.SetDefault(restore)

	t.Run("defaults", func(t *testing.T) {
		var cfg config.Logger
		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "manrisk.log")
		cfg := config.NewLoggerForTest("debug", "json", path)

		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()

		logging.Default().Debug("hello")
		closer()
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		cfg := config.NewLoggerForTest("verbose", "console", "stdout")
		_, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		cfg := config.NewLoggerForTest("info", "xml", "stdout")
		_, err := cfg.Configure()
		gt.Error(t, err)
	})
}
