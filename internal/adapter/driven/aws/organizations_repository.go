package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/diillson/aws-org-audit-go/internal/domain/entity"
	"github.com/diillson/aws-org-audit-go/internal/domain/repository"
)

// organizationsRegion: a API de Organizations só responde em us-east-1.
const organizationsRegion = "us-east-1"

// OrganizationsAPI is the subset of the Organizations client used here.
type OrganizationsAPI interface {
	ListAccounts(ctx context.Context, params *organizations.ListAccountsInput, optFns ...func(*organizations.Options)) (*organizations.ListAccountsOutput, error)
	ListParents(ctx context.Context, params *organizations.ListParentsInput, optFns ...func(*organizations.Options)) (*organizations.ListParentsOutput, error)
	DescribeOrganizationalUnit(ctx context.Context, params *organizations.DescribeOrganizationalUnitInput, optFns ...func(*organizations.Options)) (*organizations.DescribeOrganizationalUnitOutput, error)
	ListRoots(ctx context.Context, params *organizations.ListRootsInput, optFns ...func(*organizations.Options)) (*organizations.ListRootsOutput, error)
	ListOrganizationalUnitsForParent(ctx context.Context, params *organizations.ListOrganizationalUnitsForParentInput, optFns ...func(*organizations.Options)) (*organizations.ListOrganizationalUnitsForParentOutput, error)
}

// OrganizationsRepositoryImpl implementa o OrganizationRepository.
type OrganizationsRepositoryImpl struct {
	session *Session
	client  OrganizationsAPI
	mu      sync.Mutex
}

// NewOrganizationsRepository cria o repositório; o cliente é criado no primeiro uso.
func NewOrganizationsRepository(session *Session) repository.OrganizationRepository {
	return &OrganizationsRepositoryImpl{session: session}
}

// NewOrganizationsRepositoryWithClient usa um cliente já construído.
func NewOrganizationsRepositoryWithClient(client OrganizationsAPI) *OrganizationsRepositoryImpl {
	return &OrganizationsRepositoryImpl{client: client}
}

func (r *OrganizationsRepositoryImpl) getClient(ctx context.Context) (OrganizationsAPI, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil {
		return r.client, nil
	}

	cfg, err := r.session.Config(ctx)
	if err != nil {
		return nil, err
	}
	regionalCfg := cfg.Copy()
	regionalCfg.Region = organizationsRegion
	r.client = organizations.NewFromConfig(regionalCfg)
	return r.client, nil
}

// ListAccounts returns one page of the organization accounts.
func (r *OrganizationsRepositoryImpl) ListAccounts(ctx context.Context, nextToken string) (entity.AccountPage, error) {
	client, err := r.getClient(ctx)
	if err != nil {
		return entity.AccountPage{}, err
	}

	input := &organizations.ListAccountsInput{}
	if nextToken != "" {
		input.NextToken = aws.String(nextToken)
	}
	out, err := client.ListAccounts(ctx, input)
	if err != nil {
		return entity.AccountPage{}, fmt.Errorf("error listing organization accounts: %w", err)
	}

	page := entity.AccountPage{
		Accounts:  make([]entity.Account, 0, len(out.Accounts)),
		NextToken: aws.ToString(out.NextToken),
	}
	for _, acct := range out.Accounts {
		page.Accounts = append(page.Accounts, entity.Account{
			ID:              aws.ToString(acct.Id),
			Email:           aws.ToString(acct.Email),
			Name:            aws.ToString(acct.Name),
			Status:          string(acct.Status),
			JoinedTimestamp: aws.ToTime(acct.JoinedTimestamp),
		})
	}
	return page, nil
}

// ListParents returns the ids of the immediate parents of an account or OU.
func (r *OrganizationsRepositoryImpl) ListParents(ctx context.Context, childID string) ([]string, error) {
	client, err := r.getClient(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.ListParents(ctx, &organizations.ListParentsInput{ChildId: aws.String(childID)})
	if err != nil {
		return nil, fmt.Errorf("error listing parents of %s: %w", childID, err)
	}

	parents := make([]string, 0, len(out.Parents))
	for _, p := range out.Parents {
		parents = append(parents, aws.ToString(p.Id))
	}
	return parents, nil
}

// DescribeOrganizationalUnit returns the id and name of an OU.
func (r *OrganizationsRepositoryImpl) DescribeOrganizationalUnit(ctx context.Context, unitID string) (entity.OrganizationalUnit, error) {
	client, err := r.getClient(ctx)
	if err != nil {
		return entity.OrganizationalUnit{}, err
	}

	out, err := client.DescribeOrganizationalUnit(ctx, &organizations.DescribeOrganizationalUnitInput{
		OrganizationalUnitId: aws.String(unitID),
	})
	if err != nil {
		return entity.OrganizationalUnit{}, fmt.Errorf("error describing organizational unit %s: %w", unitID, err)
	}
	if out.OrganizationalUnit == nil {
		return entity.OrganizationalUnit{}, fmt.Errorf("organizational unit %s not returned by the API", unitID)
	}

	return entity.OrganizationalUnit{
		ID:   aws.ToString(out.OrganizationalUnit.Id),
		Name: aws.ToString(out.OrganizationalUnit.Name),
	}, nil
}

// GetRootID descobre o id do root da organização.
func (r *OrganizationsRepositoryImpl) GetRootID(ctx context.Context) (string, error) {
	client, err := r.getClient(ctx)
	if err != nil {
		return "", err
	}

	out, err := client.ListRoots(ctx, &organizations.ListRootsInput{})
	if err != nil {
		return "", fmt.Errorf("error listing organization roots: %w", err)
	}
	if len(out.Roots) == 0 {
		return "", fmt.Errorf("organization has no root")
	}
	return aws.ToString(out.Roots[0].Id), nil
}

// ListOrganizationalUnitsForParent returns one page of the OUs directly under parentID.
func (r *OrganizationsRepositoryImpl) ListOrganizationalUnitsForParent(ctx context.Context, parentID, nextToken string) (entity.UnitPage, error) {
	client, err := r.getClient(ctx)
	if err != nil {
		return entity.UnitPage{}, err
	}

	input := &organizations.ListOrganizationalUnitsForParentInput{ParentId: aws.String(parentID)}
	if nextToken != "" {
		input.NextToken = aws.String(nextToken)
	}
	out, err := client.ListOrganizationalUnitsForParent(ctx, input)
	if err != nil {
		return entity.UnitPage{}, fmt.Errorf("error listing organizational units for %s: %w", parentID, err)
	}

	page := entity.UnitPage{
		Units:     make([]entity.OrganizationalUnit, 0, len(out.OrganizationalUnits)),
		NextToken: aws.ToString(out.NextToken),
	}
	for _, ou := range out.OrganizationalUnits {
		page.Units = append(page.Units, entity.OrganizationalUnit{
			ID:   aws.ToString(ou.Id),
			Name: aws.ToString(ou.Name),
		})
	}
	return page, nil
}
