// Package hierarchy walks the organization tree from an account up to its
// owning units.
package hierarchy

import (
	"context"
	"fmt"

	"github.com/diillson/aws-org-audit-go/internal/domain/entity"
	"github.com/diillson/aws-org-audit-go/internal/domain/repository"
	"github.com/diillson/aws-org-audit-go/internal/shared/types"
)

// ReportDepth é a profundidade usada no relatório: OU da conta e OU pai.
const ReportDepth = 2

// Resolver resolve nomes de OUs tratando o root como sentinela.
type Resolver struct {
	dir    repository.UnitDirectory
	rootID string
}

// NewResolver creates a Resolver. rootID is the organization root, which is
// never described through the directory.
func NewResolver(dir repository.UnitDirectory, rootID string) *Resolver {
	return &Resolver{dir: dir, rootID: rootID}
}

// RootID returns the identifier treated as the hierarchy root.
func (r *Resolver) RootID() string {
	return r.rootID
}

// ResolveUnitName returns the unit name, or "ROOT" for the root id.
func (r *Resolver) ResolveUnitName(ctx context.Context, unitID string) (string, error) {
	if unitID == r.rootID {
		return entity.RootSentinelName, nil
	}
	ou, err := r.dir.DescribeOrganizationalUnit(ctx, unitID)
	if err != nil {
		return "", fmt.Errorf("describing organizational unit %s: %w", unitID, err)
	}
	return ou.Name, nil
}

// ResolveChain returns the name of the unit owning the account and the name
// of that unit's parent.
func (r *Resolver) ResolveChain(ctx context.Context, accountID string) (string, string, error) {
	names, err := r.ResolveAncestry(ctx, accountID, ReportDepth)
	if err != nil {
		return "", "", err
	}
	return names[0], names[1], nil
}

// ResolveAncestry walks up to levels ancestors of childID and returns their
// names, nearest first. Above the root every level resolves to "ROOT"
// without further directory calls.
func (r *Resolver) ResolveAncestry(ctx context.Context, childID string, levels int) ([]string, error) {
	names := make([]string, 0, levels)
	current := childID
	for len(names) < levels {
		if current == r.rootID {
			names = append(names, entity.RootSentinelName)
			continue
		}

		parentID, err := r.parentOf(ctx, current)
		if err != nil {
			return nil, err
		}
		name, err := r.ResolveUnitName(ctx, parentID)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		current = parentID
	}
	return names, nil
}

func (r *Resolver) parentOf(ctx context.Context, childID string) (string, error) {
	parents, err := r.dir.ListParents(ctx, childID)
	if err != nil {
		return "", fmt.Errorf("listing parents of %s: %w", childID, err)
	}
	if len(parents) == 0 {
		return "", fmt.Errorf("%w: %s has no parent", types.ErrHierarchyIntegrity, childID)
	}
	// Árvore de pai único: só o primeiro importa.
	return parents[0], nil
}
