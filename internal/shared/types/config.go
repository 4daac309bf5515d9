package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	BillingAccountID string   `json:"billing_account_id" yaml:"billing_account_id" toml:"billing_account_id"`
	BillingBucket    string   `json:"billing_bucket" yaml:"billing_bucket" toml:"billing_bucket"`
	LocalBillingFile string   `json:"local_billing_file" yaml:"local_billing_file" toml:"local_billing_file"`
	BillingMonth     string   `json:"billing_month" yaml:"billing_month" toml:"billing_month"`
	Out              string   `json:"out" yaml:"out" toml:"out"`
	ReportType       []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	RootID           string   `json:"root_id" yaml:"root_id" toml:"root_id"`
	Profile          string   `json:"profile" yaml:"profile" toml:"profile"`
	Region           string   `json:"region" yaml:"region" toml:"region"`
	MaxAttempts      int      `json:"max_attempts" yaml:"max_attempts" toml:"max_attempts"`
	Locale           string   `json:"locale" yaml:"locale" toml:"locale"`
	CacheUnits       bool     `json:"cache_units" yaml:"cache_units" toml:"cache_units"`
	Projects         bool     `json:"projects" yaml:"projects" toml:"projects"`
}
