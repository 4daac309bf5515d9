package entity

import "time"

// ReportHeader is the header row of the account audit CSV.
var ReportHeader = []string{"AWS email", "account id", "name", "project", "parent", "date joined", "spend"}

// ReportRow é o resultado do join de uma conta ativa com a hierarquia e o gasto.
type ReportRow struct {
	Email       string `json:"email"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"name"`
	Project     string `json:"project"`
	Parent      string `json:"parent"`
	DateJoined  string `json:"date_joined"`
	Spend       string `json:"spend"`
}

// Record returns the row in report column order.
func (r ReportRow) Record() []string {
	return []string{r.Email, r.AccountID, r.AccountName, r.Project, r.Parent, r.DateJoined, r.Spend}
}

// AccountNotice is the diagnostic emitted for an account left out of the report.
type AccountNotice struct {
	Email     string `json:"email"`
	AccountID string `json:"account_id"`
	Status    string `json:"status"`
}

// AuditReport agrega o resultado de uma execução.
type AuditReport struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Period      StatementPeriod `json:"period"`
	Currency    string          `json:"currency"`
	Rows        []ReportRow     `json:"rows"`
	Excluded    []AccountNotice `json:"excluded,omitempty"`
}
