package cli

import (
	"testing"

	"github.com/diillson/aws-org-audit-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	app := NewCLIApp("1.0.0")
	require.NoError(t, app.rootCmd.ParseFlags([]string{
		"-i", "123456789012",
		"-b", "billing-bucket",
		"-m", "2022-03",
		"-o", "out/audit.csv",
		"-y", "csv,json",
		"--root-id", "r-43a5",
		"--profile", "payer",
		"--region", "us-east-1",
		"--max-attempts", "8",
		"--locale", "pt-BR",
		"--cache-units",
		"-p",
		"-q",
	}))

	args, err := app.parseArgs()
	require.NoError(t, err)
	assert.Equal(t, &types.CLIArgs{
		BillingAccountID: "123456789012",
		BillingBucket:    "billing-bucket",
		BillingMonth:     "2022-03",
		Out:              "out/audit.csv",
		ReportType:       []string{"csv", "json"},
		RootID:           "r-43a5",
		Profile:          "payer",
		Region:           "us-east-1",
		MaxAttempts:      8,
		Locale:           "pt-BR",
		CacheUnits:       true,
		Projects:         true,
		Quiet:            true,
	}, args)
}

func TestParseArgs_ReportTypeUnsetLeavesNil(t *testing.T) {
	app := NewCLIApp("1.0.0")
	require.NoError(t, app.rootCmd.ParseFlags([]string{"-L", "bill.csv", "-C", "audit.toml"}))

	args, err := app.parseArgs()
	require.NoError(t, err)
	assert.Nil(t, args.ReportType)
	assert.Equal(t, "bill.csv", args.LocalBillingFile)
	assert.Equal(t, "audit.toml", args.ConfigFile)
}

func TestParseArgs_NegativeAttempts(t *testing.T) {
	app := NewCLIApp("1.0.0")
	require.NoError(t, app.rootCmd.ParseFlags([]string{"--max-attempts=-1"}))

	_, err := app.parseArgs()
	assert.ErrorIs(t, err, types.ErrConfiguration)
}

func TestExecute_WithoutUseCase(t *testing.T) {
	app := NewCLIApp("1.0.0-dev")
	app.SetArgs([]string{"-q", "-L", "bill.csv"})

	err := app.Execute()
	assert.EqualError(t, err, "audit use case not configured")
}
