// Package report joins the account listing with the organization hierarchy
// and the spend index into the audit rows.
package report

import (
	"context"
	"fmt"

	"github.com/diillson/aws-org-audit-go/internal/domain/entity"
	"github.com/diillson/aws-org-audit-go/internal/domain/repository"
)

// ChainResolver returns the unit and parent unit names of an account.
type ChainResolver interface {
	ResolveChain(ctx context.Context, accountID string) (string, string, error)
}

// Notifier recebe as contas deixadas fora do relatório assim que aparecem.
type Notifier interface {
	AccountExcluded(notice entity.AccountNotice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(notice entity.AccountNotice)

func (f NotifierFunc) AccountExcluded(notice entity.AccountNotice) {
	f(notice)
}

// Assembler builds report rows in the order the account listing yields them.
type Assembler struct {
	accounts  repository.AccountLister
	resolver  ChainResolver
	notifier  Notifier
	formatter *SpendFormatter
}

// NewAssembler cria um Assembler. notifier pode ser nil.
func NewAssembler(
	accounts repository.AccountLister,
	resolver ChainResolver,
	notifier Notifier,
	formatter *SpendFormatter,
) *Assembler {
	if notifier == nil {
		notifier = NotifierFunc(func(entity.AccountNotice) {})
	}
	return &Assembler{
		accounts:  accounts,
		resolver:  resolver,
		notifier:  notifier,
		formatter: formatter,
	}
}

// Result is the outcome of one assembly pass.
type Result struct {
	Rows     []entity.ReportRow
	Excluded []entity.AccountNotice
}

// Assemble walks every page of the account listing. Active accounts become
// rows; every other status becomes a notice. Any error aborts the pass and
// no rows are returned.
func (a *Assembler) Assemble(ctx context.Context, spend *entity.SpendIndex) (Result, error) {
	var result Result
	token := ""
	for {
		page, err := a.accounts.ListAccounts(ctx, token)
		if err != nil {
			return Result{}, fmt.Errorf("listing accounts: %w", err)
		}

		for _, acct := range page.Accounts {
			// Cancelamento só entre contas.
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}

			if !acct.IsActive() {
				notice := entity.AccountNotice{Email: acct.Email, AccountID: acct.ID, Status: acct.Status}
				result.Excluded = append(result.Excluded, notice)
				a.notifier.AccountExcluded(notice)
				continue
			}

			row, err := a.buildRow(ctx, acct, spend)
			if err != nil {
				return Result{}, err
			}
			result.Rows = append(result.Rows, row)
		}

		if page.NextToken == "" {
			break
		}
		token = page.NextToken
	}
	return result, nil
}

func (a *Assembler) buildRow(ctx context.Context, acct entity.Account, spend *entity.SpendIndex) (entity.ReportRow, error) {
	unit, parent, err := a.resolver.ResolveChain(ctx, acct.ID)
	if err != nil {
		return entity.ReportRow{}, fmt.Errorf("resolving hierarchy of account %s (%s): %w", acct.ID, acct.Email, err)
	}

	return entity.ReportRow{
		Email:       acct.Email,
		AccountID:   acct.ID,
		AccountName: acct.Name,
		Project:     unit,
		Parent:      parent,
		DateJoined:  FormatJoinDate(acct.JoinedTimestamp),
		Spend:       a.formatter.Format(spend.SpendFor(acct.ID)),
	}, nil
}
