package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diillson/aws-org-audit-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile_Formats(t *testing.T) {
	files := map[string]string{
		"audit.toml": `
billing_account_id = "123456789012"
billing_bucket = "billing"
report_type = ["csv", "pdf"]
cache_units = true
max_attempts = 8
`,
		"audit.yaml": `
billing_account_id: "123456789012"
billing_bucket: billing
report_type: [csv, pdf]
cache_units: true
max_attempts: 8
`,
		"audit.json": `{
  "billing_account_id": "123456789012",
  "billing_bucket": "billing",
  "report_type": ["csv", "pdf"],
  "cache_units": true,
  "max_attempts": 8
}`,
	}

	repo := NewConfigRepository()
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := repo.LoadConfigFile(writeFile(t, name, content))
			require.NoError(t, err)
			assert.Equal(t, "123456789012", cfg.BillingAccountID)
			assert.Equal(t, "billing", cfg.BillingBucket)
			assert.Equal(t, []string{"csv", "pdf"}, cfg.ReportType)
			assert.True(t, cfg.CacheUnits)
			assert.Equal(t, 8, cfg.MaxAttempts)
		})
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, types.ErrConfiguration)

	_, err = repo.LoadConfigFile(writeFile(t, "audit.ini", "a=b"))
	assert.ErrorIs(t, err, types.ErrConfiguration)
	assert.Contains(t, err.Error(), "unsupported")

	_, err = repo.LoadConfigFile(writeFile(t, "audit.json", "{"))
	assert.ErrorIs(t, err, types.ErrConfiguration)

	_, err = repo.LoadConfigFile(t.TempDir())
	assert.ErrorIs(t, err, types.ErrConfiguration)
}
