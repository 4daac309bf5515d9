// Package billing turns the consolidated billing export into a SpendIndex.
package billing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/diillson/aws-org-audit-go/internal/domain/entity"
	"github.com/diillson/aws-org-audit-go/internal/shared/types"
	"github.com/shopspring/decimal"
)

// Posições das colunas lidas da fatura consolidada.
const (
	colAccountID     = 2
	colRecordType    = 3
	colStatementDate = 6
	colAccountName   = 9
	colCurrencyCode  = 23
	colTotalCost     = 24

	// minFields abaixo disso a linha é considerada lixo e ignorada.
	minFields = colRecordType + 1
	// accountTotalFields is the width an AccountTotal row must have.
	accountTotalFields = colTotalCost + 1
)

// ParseRow maps a raw CSV record to a BillingRow. The boolean is false for
// rows that are not aggregation targets (short rows, line items, headers);
// those are skipped without error.
func ParseRow(fields []string) (entity.BillingRow, bool, error) {
	if len(fields) < minFields {
		return entity.BillingRow{}, false, nil
	}
	if fields[colRecordType] != entity.RecordTypeAccountTotal {
		return entity.BillingRow{}, false, nil
	}
	if len(fields) < accountTotalFields {
		return entity.BillingRow{}, false, fmt.Errorf("%w: %s row for account %q has %d fields, expected at least %d",
			types.ErrMalformedData, entity.RecordTypeAccountTotal, fields[colAccountID], len(fields), accountTotalFields)
	}

	total, err := decimal.NewFromString(fields[colTotalCost])
	if err != nil {
		return entity.BillingRow{}, false, fmt.Errorf("%w: total %q for account %q is not a number: %v",
			types.ErrMalformedData, fields[colTotalCost], fields[colAccountID], err)
	}

	return entity.BillingRow{
		AccountID:     fields[colAccountID],
		RecordType:    fields[colRecordType],
		StatementDate: fields[colStatementDate],
		AccountName:   fields[colAccountName],
		CurrencyCode:  fields[colCurrencyCode],
		TotalCost:     total,
	}, true, nil
}

// statementPeriod extrai ano e mês de uma data no formato YYYY-MM-...
func statementPeriod(date string) (entity.StatementPeriod, error) {
	if len(date) < 7 {
		return entity.StatementPeriod{}, fmt.Errorf("%w: statement date %q is not in YYYY-MM form", types.ErrMalformedData, date)
	}
	return entity.StatementPeriod{Year: date[0:4], Month: date[5:7]}, nil
}

// Parse builds a SpendIndex from already-split CSV rows. When an account has
// more than one AccountTotal row the last one wins.
func Parse(rows [][]string) (*entity.SpendIndex, error) {
	b := newIndexBuilder()
	for i, fields := range rows {
		if err := b.add(fields); err != nil {
			return nil, fmt.Errorf("billing row %d: %w", i+1, err)
		}
	}
	return b.build(), nil
}

// ParseReader splits r as CSV and parses it. Rows may have any width.
func ParseReader(r io.Reader) (*entity.SpendIndex, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	b := newIndexBuilder()
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: reading billing CSV: %v", types.ErrMalformedData, err)
		}
		if err := b.add(record); err != nil {
			return nil, fmt.Errorf("billing row %d: %w", line, err)
		}
	}
	return b.build(), nil
}

type indexBuilder struct {
	entries  map[string]entity.SpendEntry
	currency string
	period   entity.StatementPeriod
}

func newIndexBuilder() *indexBuilder {
	return &indexBuilder{entries: make(map[string]entity.SpendEntry)}
}

func (b *indexBuilder) add(fields []string) error {
	row, ok, err := ParseRow(fields)
	if err != nil || !ok {
		return err
	}

	// Moeda e período vêm só da primeira linha de total.
	if b.currency == "" {
		b.currency = row.CurrencyCode
	}
	if b.period.IsZero() {
		period, err := statementPeriod(row.StatementDate)
		if err != nil {
			return err
		}
		b.period = period
	}

	b.entries[row.AccountID] = entity.SpendEntry{
		Name:     row.AccountName,
		Total:    row.TotalCost,
		Currency: row.CurrencyCode,
	}
	return nil
}

func (b *indexBuilder) build() *entity.SpendIndex {
	return entity.NewSpendIndex(b.entries, b.currency, b.period)
}
