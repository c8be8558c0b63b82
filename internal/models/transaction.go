package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// transactionTypes maps the OFX <TRNTYPE> codes to human-readable
// descriptions.
var transactionTypes = map[string]string{
	"CREDIT":      "Generic credit",
	"DEBIT":       "Generic debit",
	"INT":         "Interest earned or paid",
	"DIV":         "Dividend",
	"FEE":         "FI fee",
	"SRVCHG":      "Service charge",
	"DEP":         "Deposit",
	"ATM":         "ATM debit or credit",
	"POS":         "Point of sale debit or credit",
	"XFER":        "Transfer",
	"CHECK":       "Cheque",
	"PAYMENT":     "Electronic payment",
	"CASH":        "Cash withdrawal",
	"DIRECTDEP":   "Direct deposit",
	"DIRECTDEBIT": "Merchant initiated debit",
	"REPEATPMT":   "Repeating payment/standing order",
	"OTHER":       "Other",
}

// Transaction is one <STMTTRN> banking transaction. CheckNumber is only set
// for transactions whose Type is CHECK; UserDate is present only when the
// statement carries a <DTUSER> element.
type Transaction struct {
	Type        string          `json:"type" yaml:"type"`
	Date        *time.Time      `json:"date,omitempty" yaml:"date,omitempty"`
	UserDate    *time.Time      `json:"userDate,omitempty" yaml:"userDate,omitempty"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	UniqueID    string          `json:"uniqueId" yaml:"uniqueId"`
	Payee       string          `json:"payee" yaml:"payee"`
	Memo        string          `json:"memo" yaml:"memo"`
	SIC         string          `json:"sic,omitempty" yaml:"sic,omitempty"`
	CheckNumber string          `json:"checkNumber,omitempty" yaml:"checkNumber,omitempty"`
}

// TypeDescription returns the human-readable description of the transaction
// type code, or an empty string for unknown codes.
func (t Transaction) TypeDescription() string {
	return transactionTypes[t.Type]
}
