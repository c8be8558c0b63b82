package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind discriminates the account variants carried by a Document.
type AccountKind string

const (
	AccountKindBank       AccountKind = "bank"
	AccountKindCreditCard AccountKind = "credit-card"
	AccountKindInvestment AccountKind = "investment"
)

// Account is one statement response mapped into the entity graph. Which
// fields are populated depends on Kind: RoutingNumber and AgencyNumber are
// bank-only, BrokerID is investment-only.
type Account struct {
	Kind           AccountKind     `json:"kind" yaml:"kind"`
	TransactionUID string          `json:"transactionUid" yaml:"transactionUid"`
	AccountNumber  string          `json:"accountNumber" yaml:"accountNumber"`
	RoutingNumber  string          `json:"routingNumber,omitempty" yaml:"routingNumber,omitempty"`
	AgencyNumber   string          `json:"agencyNumber,omitempty" yaml:"agencyNumber,omitempty"`
	BrokerID       string          `json:"brokerId,omitempty" yaml:"brokerId,omitempty"`
	AccountType    string          `json:"accountType,omitempty" yaml:"accountType,omitempty"`
	Balance        decimal.Decimal `json:"balance" yaml:"balance"`
	BalanceDate    *time.Time      `json:"balanceDate,omitempty" yaml:"balanceDate,omitempty"`
	Statement      Statement       `json:"statement" yaml:"statement"`
}
