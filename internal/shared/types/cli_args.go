package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile       string
	BillingAccountID string
	BillingBucket    string
	LocalBillingFile string
	BillingMonth     string
	Out              string
	ReportType       []string
	RootID           string
	Profile          string
	Region           string
	MaxAttempts      int
	Locale           string
	CacheUnits       bool
	Projects         bool
	Quiet            bool
}

// UsesLocalBilling indica se a fatura vem do filesystem em vez do S3.
func (a *CLIArgs) UsesLocalBilling() bool {
	return a.LocalBillingFile != ""
}
