package repository

import (
	"context"
	"fmt"
)

// BillingSource identifica de onde a fatura consolidada é lida.
type BillingSource struct {
	AccountID string
	Bucket    string
	Year      string
	Month     string
	LocalPath string
}

// ObjectKey follows the consolidated billing naming convention.
func (s BillingSource) ObjectKey() string {
	return fmt.Sprintf("%s-aws-billing-csv-%s-%s.csv", s.AccountID, s.Year, s.Month)
}

func (s BillingSource) String() string {
	if s.LocalPath != "" {
		return fmt.Sprintf("local file %s", s.LocalPath)
	}
	return fmt.Sprintf("s3://%s/%s (account id %s)", s.Bucket, s.ObjectKey(), s.AccountID)
}

// BillingRepository fetches the raw CSV text of the consolidated billing export.
type BillingRepository interface {
	FetchBilling(ctx context.Context, source BillingSource) ([]byte, error)
}
