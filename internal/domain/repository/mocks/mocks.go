// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/diillson/aws-org-audit-go/internal/domain/entity"
	"github.com/diillson/aws-org-audit-go/internal/domain/repository"
	"github.com/stretchr/testify/mock"
)

var (
	_ repository.OrganizationRepository = (*OrganizationRepository)(nil)
	_ repository.BillingRepository      = (*BillingRepository)(nil)
)

// OrganizationRepository is a mock of repository.OrganizationRepository.
type OrganizationRepository struct {
	mock.Mock
}

func (m *OrganizationRepository) ListAccounts(ctx context.Context, nextToken string) (entity.AccountPage, error) {
	args := m.Called(ctx, nextToken)
	return args.Get(0).(entity.AccountPage), args.Error(1)
}

func (m *OrganizationRepository) ListParents(ctx context.Context, childID string) ([]string, error) {
	args := m.Called(ctx, childID)
	parents, _ := args.Get(0).([]string)
	return parents, args.Error(1)
}

func (m *OrganizationRepository) DescribeOrganizationalUnit(ctx context.Context, unitID string) (entity.OrganizationalUnit, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).(entity.OrganizationalUnit), args.Error(1)
}

func (m *OrganizationRepository) GetRootID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *OrganizationRepository) ListOrganizationalUnitsForParent(ctx context.Context, parentID, nextToken string) (entity.UnitPage, error) {
	args := m.Called(ctx, parentID, nextToken)
	return args.Get(0).(entity.UnitPage), args.Error(1)
}

// OnParent registra um pai único para childID.
func (m *OrganizationRepository) OnParent(childID, parentID string) *mock.Call {
	return m.On("ListParents", mock.Anything, childID).Return([]string{parentID}, nil)
}

// OnUnit registra o nome de uma OU.
func (m *OrganizationRepository) OnUnit(unitID, name string) *mock.Call {
	return m.On("DescribeOrganizationalUnit", mock.Anything, unitID).
		Return(entity.OrganizationalUnit{ID: unitID, Name: name}, nil)
}

// BillingRepository is a mock of repository.BillingRepository.
type BillingRepository struct {
	mock.Mock
}

func (m *BillingRepository) FetchBilling(ctx context.Context, source repository.BillingSource) ([]byte, error) {
	args := m.Called(ctx, source)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}
