package models

import "time"

// Statement holds the transaction list of one account. StartDate and EndDate
// may be nil: investment statements often omit the list bounds.
//
// Exactly one of Transactions or InvestmentTransactions is populated,
// depending on the owning account's kind.
type Statement struct {
	Currency               string                  `json:"currency" yaml:"currency"`
	StartDate              *time.Time              `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate                *time.Time              `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Transactions           []Transaction           `json:"transactions,omitempty" yaml:"transactions,omitempty"`
	InvestmentTransactions []InvestmentTransaction `json:"investmentTransactions,omitempty" yaml:"investmentTransactions,omitempty"`
}
