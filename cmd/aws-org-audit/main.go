package main

import (
	"fmt"
	"os"

	"github.com/diillson/aws-org-audit-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-org-audit-go/internal/adapter/driven/config"
	"github.com/diillson/aws-org-audit-go/internal/adapter/driven/export"
	"github.com/diillson/aws-org-audit-go/internal/adapter/driving/cli"
	"github.com/diillson/aws-org-audit-go/internal/application/usecase"
	"github.com/diillson/aws-org-audit-go/internal/shared/types"
	"github.com/diillson/aws-org-audit-go/pkg/console"
	"github.com/diillson/aws-org-audit-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// A sessão só carrega a configuração da AWS na primeira chamada,
	// depois que flags e arquivo de configuração foram mesclados.
	session := aws.NewSession(aws.SessionOptions{})

	// Inicializa os repositórios
	orgRepo := aws.NewOrganizationsRepository(session)
	billingRepo := aws.NewBillingRepository(session)
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	auditUseCase := usecase.NewAuditUseCase(
		orgRepo,
		billingRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)
	auditUseCase.OnArgsResolved(func(args *types.CLIArgs) {
		session.Configure(aws.SessionOptions{
			Profile:     args.Profile,
			Region:      args.Region,
			MaxAttempts: args.MaxAttempts,
		})
	})

	app.SetAuditUseCase(auditUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
