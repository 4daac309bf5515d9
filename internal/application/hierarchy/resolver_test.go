package hierarchy

import (
	"context"
	"errors"
	"testing"

	"github.com/diillson/aws-org-audit-go/internal/domain/entity"
	"github.com/diillson/aws-org-audit-go/internal/domain/repository/mocks"
	"github.com/diillson/aws-org-audit-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const rootID = "r-43a5"

func TestResolveUnitName_RootNeverDescribed(t *testing.T) {
	dir := &mocks.OrganizationRepository{}
	r := NewResolver(dir, rootID)

	name, err := r.ResolveUnitName(context.Background(), rootID)
	require.NoError(t, err)
	assert.Equal(t, "ROOT", name)
	dir.AssertNumberOfCalls(t, "DescribeOrganizationalUnit", 0)
	dir.AssertNotCalled(t, "DescribeOrganizationalUnit", mock.Anything, mock.Anything)
}

func TestResolveUnitName_DescribesUnit(t *testing.T) {
	dir := &mocks.OrganizationRepository{}
	dir.OnUnit("ou-1", "Team A").Once()
	r := NewResolver(dir, rootID)

	name, err := r.ResolveUnitName(context.Background(), "ou-1")
	require.NoError(t, err)
	assert.Equal(t, "Team A", name)
	dir.AssertExpectations(t)
}

func TestResolveChain_TwoLevels(t *testing.T) {
	dir := &mocks.OrganizationRepository{}
	dir.OnParent("111", "ou-team").Once()
	dir.OnUnit("ou-team", "Team A").Once()
	dir.OnParent("ou-team", "ou-div").Once()
	dir.OnUnit("ou-div", "Division 1").Once()
	r := NewResolver(dir, rootID)

	unit, parent, err := r.ResolveChain(context.Background(), "111")
	require.NoError(t, err)
	assert.Equal(t, "Team A", unit)
	assert.Equal(t, "Division 1", parent)
	dir.AssertExpectations(t)
	// Não sobe além do pai da OU.
	dir.AssertNotCalled(t, "ListParents", mock.Anything, "ou-div")
}

func TestResolveChain_ParentIsRoot(t *testing.T) {
	dir := &mocks.OrganizationRepository{}
	dir.OnParent("111", "ou-team")
	dir.OnUnit("ou-team", "Team A")
	dir.OnParent("ou-team", rootID)
	r := NewResolver(dir, rootID)

	unit, parent, err := r.ResolveChain(context.Background(), "111")
	require.NoError(t, err)
	assert.Equal(t, "Team A", unit)
	assert.Equal(t, "ROOT", parent)
	dir.AssertNotCalled(t, "DescribeOrganizationalUnit", mock.Anything, rootID)
}

func TestResolveChain_AccountUnderRoot(t *testing.T) {
	dir := &mocks.OrganizationRepository{}
	dir.OnParent("111", rootID)
	r := NewResolver(dir, rootID)

	unit, parent, err := r.ResolveChain(context.Background(), "111")
	require.NoError(t, err)
	assert.Equal(t, "ROOT", unit)
	assert.Equal(t, "ROOT", parent)
	dir.AssertNotCalled(t, "ListParents", mock.Anything, rootID)
	dir.AssertNumberOfCalls(t, "DescribeOrganizationalUnit", 0)
}

func TestResolveChain_OrphanAccount(t *testing.T) {
	dir := &mocks.OrganizationRepository{}
	dir.On("ListParents", mock.Anything, "111").Return([]string{}, nil)
	r := NewResolver(dir, rootID)

	_, _, err := r.ResolveChain(context.Background(), "111")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrHierarchyIntegrity)
	assert.Contains(t, err.Error(), "111")
}

func TestResolveChain_OrphanUnit(t *testing.T) {
	dir := &mocks.OrganizationRepository{}
	dir.OnParent("111", "ou-team")
	dir.OnUnit("ou-team", "Team A")
	dir.On("ListParents", mock.Anything, "ou-team").Return(nil, nil)
	r := NewResolver(dir, rootID)

	_, _, err := r.ResolveChain(context.Background(), "111")
	assert.ErrorIs(t, err, types.ErrHierarchyIntegrity)
	assert.Contains(t, err.Error(), "ou-team")
}

func TestResolveChain_DirectoryError(t *testing.T) {
	boom := errors.New("throttled")
	dir := &mocks.OrganizationRepository{}
	dir.On("ListParents", mock.Anything, "111").Return(nil, boom)
	r := NewResolver(dir, rootID)

	_, _, err := r.ResolveChain(context.Background(), "111")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, types.ErrHierarchyIntegrity)
}

func TestResolveAncestry_Deeper(t *testing.T) {
	dir := &mocks.OrganizationRepository{}
	dir.OnParent("111", "ou-a")
	dir.OnUnit("ou-a", "A")
	dir.OnParent("ou-a", "ou-b")
	dir.OnUnit("ou-b", "B")
	dir.OnParent("ou-b", rootID)
	r := NewResolver(dir, rootID)

	names, err := r.ResolveAncestry(context.Background(), "111", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "ROOT", "ROOT"}, names)
}

func TestCachingDirectory_DescribesOnce(t *testing.T) {
	dir := &mocks.OrganizationRepository{}
	dir.OnParent("111", "ou-team")
	dir.OnParent("222", "ou-team")
	dir.OnParent("ou-team", "ou-div")
	dir.OnUnit("ou-team", "Team A").Once()
	dir.OnUnit("ou-div", "Division 1").Once()
	r := NewResolver(NewCachingDirectory(dir), rootID)

	for _, id := range []string{"111", "222"} {
		unit, parent, err := r.ResolveChain(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Team A", unit)
		assert.Equal(t, "Division 1", parent)
	}

	dir.AssertNumberOfCalls(t, "DescribeOrganizationalUnit", 2)
	dir.AssertNumberOfCalls(t, "ListParents", 4)
}

func TestCachingDirectory_ErrorsNotCached(t *testing.T) {
	dir := &mocks.OrganizationRepository{}
	dir.On("DescribeOrganizationalUnit", mock.Anything, "ou-1").
		Return(entityOU("", ""), errors.New("throttled")).Once()
	dir.OnUnit("ou-1", "Team A").Once()
	c := NewCachingDirectory(dir)

	_, err := c.DescribeOrganizationalUnit(context.Background(), "ou-1")
	require.Error(t, err)
	ou, err := c.DescribeOrganizationalUnit(context.Background(), "ou-1")
	require.NoError(t, err)
	assert.Equal(t, "Team A", ou.Name)
}

func entityOU(id, name string) entity.OrganizationalUnit {
	return entity.OrganizationalUnit{ID: id, Name: name}
}
