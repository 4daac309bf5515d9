package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/aws-org-audit-go/internal/application/billing"
	"github.com/diillson/aws-org-audit-go/internal/application/hierarchy"
	"github.com/diillson/aws-org-audit-go/internal/application/report"
	"github.com/diillson/aws-org-audit-go/internal/domain/entity"
	"github.com/diillson/aws-org-audit-go/internal/domain/repository"
	"github.com/diillson/aws-org-audit-go/internal/shared/types"
	"github.com/google/uuid"
)

const (
	// DefaultOut é o nome do CSV quando --out não é informado.
	DefaultOut = "account-audit.csv"
	// ProjectsFile recebe a lista de OUs de primeiro nível.
	ProjectsFile = "projects.csv"

	billingMonthLayout = "2006-01"
)

var supportedReportTypes = map[string]bool{"csv": true, "json": true, "pdf": true}

// AuditUseCase é o pipeline do relatório: fatura -> índice de gasto -> join com a hierarquia.
type AuditUseCase struct {
	orgRepo     repository.OrganizationRepository
	billingRepo repository.BillingRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface

	now        func() time.Time
	newRunID   func() string
	onResolved func(args *types.CLIArgs)
}

// NewAuditUseCase creates a new audit use case.
func NewAuditUseCase(
	orgRepo repository.OrganizationRepository,
	billingRepo repository.BillingRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *AuditUseCase {
	return &AuditUseCase{
		orgRepo:     orgRepo,
		billingRepo: billingRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
		now:         time.Now,
		newRunID:    func() string { return uuid.NewString() },
	}
}

// OnArgsResolved registers fn to receive the merged arguments before any
// collaborator is called. main uses it to configure the AWS session.
func (uc *AuditUseCase) OnArgsResolved(fn func(args *types.CLIArgs)) {
	uc.onResolved = fn
}

// ResolveArgs merges the config file (if any) into args and validates the
// result. Flags always win over the file.
func (uc *AuditUseCase) ResolveArgs(args *types.CLIArgs) (*types.CLIArgs, error) {
	resolved := *args
	resolved.ReportType = append([]string(nil), args.ReportType...)

	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		mergeConfig(&resolved, cfg)
	}

	if resolved.Out == "" {
		resolved.Out = DefaultOut
	}
	if len(resolved.ReportType) == 0 {
		resolved.ReportType = []string{"csv"}
	}

	if err := validateArgs(&resolved); err != nil {
		return nil, err
	}
	return &resolved, nil
}

func mergeConfig(args *types.CLIArgs, cfg *types.Config) {
	setString := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	setString(&args.BillingAccountID, cfg.BillingAccountID)
	setString(&args.BillingBucket, cfg.BillingBucket)
	setString(&args.LocalBillingFile, cfg.LocalBillingFile)
	setString(&args.BillingMonth, cfg.BillingMonth)
	setString(&args.Out, cfg.Out)
	setString(&args.RootID, cfg.RootID)
	setString(&args.Profile, cfg.Profile)
	setString(&args.Region, cfg.Region)
	setString(&args.Locale, cfg.Locale)

	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.MaxAttempts == 0 {
		args.MaxAttempts = cfg.MaxAttempts
	}
	args.CacheUnits = args.CacheUnits || cfg.CacheUnits
	args.Projects = args.Projects || cfg.Projects
}

func validateArgs(args *types.CLIArgs) error {
	if !args.UsesLocalBilling() {
		var missing []string
		if args.BillingAccountID == "" {
			missing = append(missing, "--id")
		}
		if args.BillingBucket == "" {
			missing = append(missing, "--bucket")
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: missing %s: %w", types.ErrConfiguration, strings.Join(missing, " and "), types.ErrNoBillingSource)
		}
	}

	if args.BillingMonth != "" {
		if _, err := time.Parse(billingMonthLayout, args.BillingMonth); err != nil {
			return fmt.Errorf("%w: billing month %q is not in YYYY-MM form", types.ErrConfiguration, args.BillingMonth)
		}
	}

	for i, t := range args.ReportType {
		t = strings.ToLower(strings.TrimSpace(t))
		if !supportedReportTypes[t] {
			return fmt.Errorf("%w: unsupported report type %q (use csv, json or pdf)", types.ErrConfiguration, t)
		}
		args.ReportType[i] = t
	}

	if args.MaxAttempts < 0 {
		return fmt.Errorf("%w: max attempts must not be negative", types.ErrConfiguration)
	}

	if _, err := report.NewSpendFormatter(args.Locale); err != nil {
		return fmt.Errorf("%w: %v", types.ErrConfiguration, err)
	}
	return nil
}

// BillingSource builds the billing source for args. The S3 object of the
// current month is used unless a billing month is given.
func (uc *AuditUseCase) BillingSource(args *types.CLIArgs) repository.BillingSource {
	if args.UsesLocalBilling() {
		return repository.BillingSource{LocalPath: args.LocalBillingFile}
	}

	month := uc.now()
	if args.BillingMonth != "" {
		// Já validado em validateArgs.
		month, _ = time.Parse(billingMonthLayout, args.BillingMonth)
	}
	return repository.BillingSource{
		AccountID: args.BillingAccountID,
		Bucket:    args.BillingBucket,
		Year:      month.Format("2006"),
		Month:     month.Format("01"),
	}
}

// LoadSpendIndex fetches and parses the consolidated bill.
func (uc *AuditUseCase) LoadSpendIndex(ctx context.Context, source repository.BillingSource) (*entity.SpendIndex, error) {
	data, err := uc.billingRepo.FetchBilling(ctx, source)
	if err != nil {
		return nil, err
	}

	idx, err := billing.ParseReader(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("parsing billing data from %s: %w", source, err)
	}
	return idx, nil
}

// ListProjects returns every OU directly under rootID, across all pages.
func (uc *AuditUseCase) ListProjects(ctx context.Context, rootID string) ([]entity.OrganizationalUnit, error) {
	var projects []entity.OrganizationalUnit
	token := ""
	for {
		page, err := uc.orgRepo.ListOrganizationalUnitsForParent(ctx, rootID, token)
		if err != nil {
			return nil, err
		}
		projects = append(projects, page.Units...)
		if page.NextToken == "" {
			return projects, nil
		}
		token = page.NextToken
	}
}

// RunAudit executa o pipeline completo. O relatório só é gravado depois que
// todas as contas foram resolvidas; qualquer erro fatal impede a escrita.
func (uc *AuditUseCase) RunAudit(ctx context.Context, cliArgs *types.CLIArgs) error {
	args, err := uc.ResolveArgs(cliArgs)
	if err != nil {
		return err
	}
	if uc.onResolved != nil {
		uc.onResolved(args)
	}

	formatter, err := report.NewSpendFormatter(args.Locale)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrConfiguration, err)
	}

	source := uc.BillingSource(args)
	uc.console.LogInfo("Reading billing data from %s", source)
	spend, err := uc.LoadSpendIndex(ctx, source)
	if err != nil {
		return err
	}
	if spend.Len() == 0 {
		uc.console.LogWarning("No AccountTotal rows found in %s; every account will report 0.00", source)
	} else {
		uc.console.LogInfo("Loaded spend for %d accounts (%s, %s)", spend.Len(), spend.Period(), spend.Currency())
	}

	rootID := args.RootID
	if rootID == "" {
		rootID, err = uc.orgRepo.GetRootID(ctx)
		if err != nil {
			return fmt.Errorf("discovering organization root: %w", err)
		}
	}

	if args.Projects {
		if err := uc.exportProjects(ctx, rootID, args); err != nil {
			return err
		}
	}

	var dir repository.UnitDirectory = uc.orgRepo
	if args.CacheUnits {
		dir = hierarchy.NewCachingDirectory(uc.orgRepo)
	}
	resolver := hierarchy.NewResolver(dir, rootID)

	notifier := report.NotifierFunc(func(n entity.AccountNotice) {
		uc.console.LogWarning("suspended/other: %s %s", n.Email, n.AccountID)
	})
	assembler := report.NewAssembler(uc.orgRepo, resolver, notifier, formatter)

	status := uc.console.Status("Resolving organization accounts...")
	result, err := assembler.Assemble(ctx, spend)
	status.Stop()
	if err != nil {
		return err
	}

	auditReport := entity.AuditReport{
		RunID:       uc.newRunID(),
		GeneratedAt: uc.now().UTC(),
		Period:      spend.Period(),
		Currency:    spend.Currency(),
		Rows:        result.Rows,
		Excluded:    result.Excluded,
	}

	if !args.Quiet {
		uc.console.Print(uc.renderTable(auditReport))
	}

	return uc.exportReport(auditReport, args)
}

func (uc *AuditUseCase) exportProjects(ctx context.Context, rootID string, args *types.CLIArgs) error {
	projects, err := uc.ListProjects(ctx, rootID)
	if err != nil {
		return fmt.Errorf("listing projects under %s: %w", rootID, err)
	}
	path := filepath.Join(filepath.Dir(args.Out), ProjectsFile)
	out, err := uc.exportRepo.ExportProjectsToCSV(projects, path)
	if err != nil {
		return fmt.Errorf("failed to export projects: %w", err)
	}
	uc.console.LogSuccess("Saved %d projects to %s", len(projects), out)
	return nil
}

// exportReport grava o CSV, que é sempre gerado, e os formatos extras pedidos.
// Falhas nos formatos extras são apenas registradas.
func (uc *AuditUseCase) exportReport(auditReport entity.AuditReport, args *types.CLIArgs) error {
	csvPath, err := uc.exportRepo.ExportReportToCSV(auditReport, args.Out)
	if err != nil {
		return fmt.Errorf("failed to export report to CSV: %w", err)
	}
	uc.console.LogSuccess("Successfully exported report to CSV: %s", csvPath)

	for _, reportType := range args.ReportType {
		switch reportType {
		case "json":
			jsonPath, err := uc.exportRepo.ExportReportToJSON(auditReport, args.Out)
			if err != nil {
				uc.console.LogError("Failed to export report to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported report to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportReportToPDF(auditReport, args.Out)
			if err != nil {
				uc.console.LogError("Failed to export report to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported report to PDF: %s", pdfPath)
			}
		}
	}
	return nil
}

func (uc *AuditUseCase) renderTable(auditReport entity.AuditReport) string {
	table := uc.console.CreateTable()
	for _, h := range entity.ReportHeader {
		table.AddColumn(h)
	}
	for _, row := range auditReport.Rows {
		table.AddRow(row.Email, row.AccountID, row.AccountName, row.Project, row.Parent, row.DateJoined, row.Spend)
	}
	return table.Render()
}
