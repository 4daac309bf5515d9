package entity

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RecordTypeAccountTotal marca as linhas de total por conta na fatura consolidada.
const RecordTypeAccountTotal = "AccountTotal"

// BillingRow is one named record of the consolidated billing export.
// Only the columns the audit reads are kept.
type BillingRow struct {
	AccountID     string
	RecordType    string
	StatementDate string
	AccountName   string
	CurrencyCode  string
	TotalCost     decimal.Decimal
}

// IsAccountTotal reports whether the row is a per-account summary.
func (r BillingRow) IsAccountTotal() bool {
	return r.RecordType == RecordTypeAccountTotal
}

// SpendEntry is the aggregated spend of one account for the statement period.
type SpendEntry struct {
	Name     string          `json:"name"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
}

// StatementPeriod é o ano/mês da fatura, extraído da primeira linha de total.
type StatementPeriod struct {
	Year  string `json:"year"`
	Month string `json:"month"`
}

// IsZero indica que nenhuma linha de total foi encontrada.
func (p StatementPeriod) IsZero() bool {
	return p.Year == "" && p.Month == ""
}

func (p StatementPeriod) String() string {
	if p.IsZero() {
		return ""
	}
	return p.Year + "-" + p.Month
}

// SpendIndex maps account ids to their spend. It is built once by the billing
// parser and never mutated afterwards.
type SpendIndex struct {
	entries  map[string]SpendEntry
	currency string
	period   StatementPeriod
}

// NewSpendIndex copies entries into a new read-only index.
func NewSpendIndex(entries map[string]SpendEntry, currency string, period StatementPeriod) *SpendIndex {
	copied := make(map[string]SpendEntry, len(entries))
	for id, e := range entries {
		copied[id] = e
	}
	return &SpendIndex{entries: copied, currency: currency, period: period}
}

// Get returns the entry for accountID and whether one exists.
func (s *SpendIndex) Get(accountID string) (SpendEntry, bool) {
	if s == nil {
		return SpendEntry{}, false
	}
	e, ok := s.entries[accountID]
	return e, ok
}

// SpendFor returns the account total, or zero when the account has no entry.
func (s *SpendIndex) SpendFor(accountID string) decimal.Decimal {
	e, ok := s.Get(accountID)
	if !ok {
		return decimal.Zero
	}
	return e.Total
}

// Len returns the number of accounts in the index.
func (s *SpendIndex) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Currency is the currency code of the first AccountTotal row.
func (s *SpendIndex) Currency() string {
	if s == nil {
		return ""
	}
	return s.currency
}

// Period is the statement period of the first AccountTotal row.
func (s *SpendIndex) Period() StatementPeriod {
	if s == nil {
		return StatementPeriod{}
	}
	return s.period
}

// AccountIDs retorna os ids ordenados, útil para logs e testes.
func (s *SpendIndex) AccountIDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Total soma todas as entradas do índice.
func (s *SpendIndex) Total() decimal.Decimal {
	total := decimal.Zero
	if s == nil {
		return total
	}
	for _, e := range s.entries {
		total = total.Add(e.Total)
	}
	return total
}
