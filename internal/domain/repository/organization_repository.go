package repository

import (
	"context"

	"github.com/diillson/aws-org-audit-go/internal/domain/entity"
)

// AccountLister lists the organization accounts one page at a time.
// An empty nextToken requests the first page.
type AccountLister interface {
	ListAccounts(ctx context.Context, nextToken string) (entity.AccountPage, error)
}

// UnitDirectory resolves parents and names of hierarchy nodes.
type UnitDirectory interface {
	// ListParents retorna os ids dos pais imediatos de uma conta ou OU.
	ListParents(ctx context.Context, childID string) ([]string, error)
	DescribeOrganizationalUnit(ctx context.Context, unitID string) (entity.OrganizationalUnit, error)
}

// OrganizationRepository defines the interface for AWS Organizations interactions.
type OrganizationRepository interface {
	AccountLister
	UnitDirectory

	GetRootID(ctx context.Context) (string, error)
	ListOrganizationalUnitsForParent(ctx context.Context, parentID, nextToken string) (entity.UnitPage, error)
}
