package cli

import (
	"fmt"

	"github.com/diillson/aws-org-audit-go/pkg/console"
	"github.com/diillson/aws-org-audit-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
     ___        ______     ___               _             _ _ _
    / \ \      / / ___|   / _ \ _ __ __ _   / \  _   _  __| (_) |_
   / _ \ \ /\ / /\___ \  | | | | '__/ _' | / _ \| | | |/ _' | | __|
  / ___ \ V  V /  ___) | | |_| | | | (_| |/ ___ \ |_| | (_| | | |_
 /_/   \_\_/\_/  |____/   \___/|_|  \__, /_/   \_\__,_|\__,_|_|\__|
                                    |___/
`
	fmt.Println(console.BoldRed(banner))

	// Obtem a string formatada da versão através do pacote version
	fmt.Println(console.BrightBlue(fmt.Sprintf("AWS Organization Audit CLI (v%s)", version.FormatVersion())))
}

// checkLatestVersion verifica se uma versão mais recente está disponível.
func checkLatestVersion(currentVersion string) {
	version.CheckLatestVersion(currentVersion)
}
