package entity

import "time"

// AccountStatusActive é o único status que entra no relatório.
const AccountStatusActive = "ACTIVE"

// RootSentinelName is the name reported for the organization root, which
// has no describable record.
const RootSentinelName = "ROOT"

// Account represents a member account of the AWS organization.
type Account struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	JoinedTimestamp time.Time `json:"joined_timestamp"`
}

// IsActive reports whether the account takes part in the report.
func (a Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// AccountPage is one page of the account listing.
type AccountPage struct {
	Accounts  []Account
	NextToken string
}

// OrganizationalUnit (OU) é um nó de agrupamento da hierarquia.
type OrganizationalUnit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnitPage is one page of OUs listed under a parent.
type UnitPage struct {
	Units     []OrganizationalUnit
	NextToken string
}
