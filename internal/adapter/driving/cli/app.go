package cli

import (
	"context"
	"fmt"

	"github.com/diillson/aws-org-audit-go/internal/application/report"
	"github.com/diillson/aws-org-audit-go/internal/application/usecase"
	"github.com/diillson/aws-org-audit-go/internal/shared/types"
	"github.com/diillson/aws-org-audit-go/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd      *cobra.Command
	auditUseCase *usecase.AuditUseCase
	version      string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:   "aws-org-audit",
		Short: "Audit every account of an AWS Organization against the consolidated bill",
		Long: `aws-org-audit lists every account of the organization, resolves its
organizational unit and parent unit, and joins it with the AccountTotal
rows of the consolidated billing CSV. Active accounts become rows of the
report; suspended accounts are only reported on the console.`,
		Version:       version.FormatVersion(),
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "aws-org-audit version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("id", "i", "", "Payer account id that owns the consolidated billing CSV")
	flags.StringP("bucket", "b", "", "S3 bucket holding the consolidated billing CSV")
	flags.StringP("local", "L", "", "Read the billing CSV from a local file instead of S3")
	flags.StringP("month", "m", "", "Billing month as YYYY-MM (default: current month)")
	flags.StringP("out", "o", "", "CSV report file (default: "+usecase.DefaultOut+")")
	flags.StringSliceP("report-type", "y", nil, "Report types to write: csv, json, pdf (csv is always written)")
	flags.String("root-id", "", "Organization root id (default: discovered with ListRoots)")
	flags.String("profile", "", "AWS profile used to call Organizations and S3")
	flags.String("region", "", "AWS region for the S3 client")
	flags.Int("max-attempts", 0, "Maximum attempts of the AWS SDK retryer (0 uses the SDK default)")
	flags.String("locale", "", "Locale used to format spend (default: "+report.DefaultLocale+")")
	flags.Bool("cache-units", false, "Cache organizational unit names for the whole run")
	flags.BoolP("projects", "p", false, "Also write "+usecase.ProjectsFile+" with the OUs directly under the root")
	flags.BoolP("quiet", "q", false, "Do not print the report table")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetArgs substitui os argumentos da linha de comando (usado nos testes).
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	id, _ := flags.GetString("id")
	bucket, _ := flags.GetString("bucket")
	local, _ := flags.GetString("local")
	month, _ := flags.GetString("month")
	out, _ := flags.GetString("out")
	rootID, _ := flags.GetString("root-id")
	profile, _ := flags.GetString("profile")
	region, _ := flags.GetString("region")
	maxAttempts, _ := flags.GetInt("max-attempts")
	locale, _ := flags.GetString("locale")
	cacheUnits, _ := flags.GetBool("cache-units")
	projects, _ := flags.GetBool("projects")
	quiet, _ := flags.GetBool("quiet")

	// Sem --report-type o valor do arquivo de configuração prevalece.
	var reportType []string
	if flags.Changed("report-type") {
		reportType, _ = flags.GetStringSlice("report-type")
	}

	if maxAttempts < 0 {
		return nil, fmt.Errorf("%w: --max-attempts must not be negative", types.ErrConfiguration)
	}

	return &types.CLIArgs{
		ConfigFile:       configFile,
		BillingAccountID: id,
		BillingBucket:    bucket,
		LocalBillingFile: local,
		BillingMonth:     month,
		Out:              out,
		ReportType:       reportType,
		RootID:           rootID,
		Profile:          profile,
		Region:           region,
		MaxAttempts:      maxAttempts,
		Locale:           locale,
		CacheUnits:       cacheUnits,
		Projects:         projects,
		Quiet:            quiet,
	}, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	if !cliArgs.Quiet {
		displayWelcomeBanner(app.version)
		go checkLatestVersion(app.version)
	}

	if app.auditUseCase == nil {
		return fmt.Errorf("audit use case not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return app.auditUseCase.RunAudit(ctx, cliArgs)
}

// SetAuditUseCase sets the audit use case for the CLI app.
func (app *CLIApp) SetAuditUseCase(useCase *usecase.AuditUseCase) {
	app.auditUseCase = useCase
}
