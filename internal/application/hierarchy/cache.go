package hierarchy

import (
	"context"
	"sync"

	"github.com/diillson/aws-org-audit-go/internal/domain/entity"
	"github.com/diillson/aws-org-audit-go/internal/domain/repository"
)

// CachingDirectory decora um UnitDirectory guardando as OUs já descritas.
// A árvore não muda durante uma execução, então o cache vive até o processo sair.
type CachingDirectory struct {
	next  repository.UnitDirectory
	units map[string]entity.OrganizationalUnit
	mu    sync.Mutex
}

// NewCachingDirectory wraps next with a per-run unit cache.
func NewCachingDirectory(next repository.UnitDirectory) *CachingDirectory {
	return &CachingDirectory{
		next:  next,
		units: make(map[string]entity.OrganizationalUnit),
	}
}

// ListParents is passed straight through; accounts are never cached.
func (c *CachingDirectory) ListParents(ctx context.Context, childID string) ([]string, error) {
	return c.next.ListParents(ctx, childID)
}

func (c *CachingDirectory) DescribeOrganizationalUnit(ctx context.Context, unitID string) (entity.OrganizationalUnit, error) {
	c.mu.Lock()
	if ou, ok := c.units[unitID]; ok {
		c.mu.Unlock()
		return ou, nil
	}
	c.mu.Unlock()

	ou, err := c.next.DescribeOrganizationalUnit(ctx, unitID)
	if err != nil {
		return entity.OrganizationalUnit{}, err
	}

	c.mu.Lock()
	c.units[unitID] = ou
	c.mu.Unlock()
	return ou, nil
}
