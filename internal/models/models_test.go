package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderGet(t *testing.T) {
	header := Header{
		{Key: "OFXHEADER", Value: "100"},
		{Key: "ENCODING", Value: "USASCII"},
		{Key: "ENCODING", Value: "UTF-8"},
	}

	assert.Equal(t, "100", header.Get("OFXHEADER"))
	assert.Equal(t, "UTF-8", header.Get("ENCODING"), "last occurrence wins")
	assert.Equal(t, "", header.Get("MISSING"))
	assert.True(t, header.Has("ENCODING"))
	assert.False(t, header.Has("MISSING"))
}

func TestDocumentAccount(t *testing.T) {
	doc := &Document{}
	assert.Nil(t, doc.Account())
	assert.Nil(t, doc.Transactions())

	doc.Accounts = append(doc.Accounts, Account{AccountNumber: "111"})
	require.NotNil(t, doc.Account())
	assert.Equal(t, "111", doc.Account().AccountNumber)

	doc.Accounts = append(doc.Accounts, Account{AccountNumber: "222"})
	assert.Nil(t, doc.Account(), "ambiguous with several accounts")
	assert.Nil(t, doc.Transactions())
}

func TestStatusCodeDescription(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{code: "0", expected: "Success"},
		{code: "2000", expected: "General error"},
		{code: "15500", expected: "Signon invalid"},
		{code: "42", expected: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Status{Code: tt.code}.CodeDescription())
	}
}

func TestTransactionTypeDescription(t *testing.T) {
	tests := []struct {
		trnType  string
		expected string
	}{
		{trnType: "CREDIT", expected: "Generic credit"},
		{trnType: "CHECK", expected: "Cheque"},
		{trnType: "REPEATPMT", expected: "Repeating payment/standing order"},
		{trnType: "OTHER", expected: "Other"},
		{trnType: "BOGUS", expected: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Transaction{Type: tt.trnType}.TypeDescription())
	}
}

func TestFlattenDocument(t *testing.T) {
	posted := time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC)
	units := decimal.RequireFromString("10")
	total := decimal.RequireFromString("-1879.90")

	doc := &Document{
		Accounts: []Account{
			{
				Kind:          AccountKindBank,
				AccountNumber: "0123",
				Statement: Statement{
					Currency: "GBP",
					Transactions: []Transaction{
						{
							Type:     "CHECK",
							Date:     &posted,
							Amount:   decimal.RequireFromString("-100.00"),
							UniqueID: "980310003",
							Payee:    "CHECK 1025",
							CheckNumber: "1025",
						},
					},
				},
			},
			{
				Kind:          AccountKindInvestment,
				AccountNumber: "9876",
				Statement: Statement{
					Currency: "USD",
					InvestmentTransactions: []InvestmentTransaction{
						{
							Action:  ActionBuyStock,
							InvTran: InvTran{UniqueID: "abc123", TradeDate: &posted},
							SecID:   SecID{SecurityID: "78462F103"},
							Pricing: Pricing{Units: &units, Total: &total},
						},
					},
				},
			},
		},
	}

	rows := FlattenDocument(doc)
	require.Len(t, rows, 2)

	assert.Equal(t, "0123", rows[0].AccountNumber)
	assert.Equal(t, "bank", rows[0].AccountKind)
	assert.Equal(t, "CHECK", rows[0].Type)
	assert.Equal(t, "Cheque", rows[0].Description)
	assert.Equal(t, "2020-03-15", rows[0].Date)
	assert.Equal(t, "-100", rows[0].Amount)
	assert.Equal(t, "1025", rows[0].CheckNumber)

	assert.Equal(t, "9876", rows[1].AccountNumber)
	assert.Equal(t, "BUYSTOCK", rows[1].Type)
	assert.Equal(t, "78462F103", rows[1].SecurityID)
	assert.Equal(t, "10", rows[1].Units)
	assert.Equal(t, "-1879.9", rows[1].Amount)
}

func TestFlattenDocumentBankingWrapper(t *testing.T) {
	posted := time.Date(2020, time.December, 10, 0, 0, 0, 0, time.UTC)
	doc := &Document{
		Accounts: []Account{
			{
				Kind:          AccountKindInvestment,
				AccountNumber: "9876",
				Statement: Statement{
					Currency: "USD",
					InvestmentTransactions: []InvestmentTransaction{
						{
							Action: ActionBankTransaction,
							Banking: &Transaction{
								Type:     "CREDIT",
								Date:     &posted,
								Amount:   decimal.RequireFromString("1000.00"),
								UniqueID: "xyz789",
								Payee:    "TRANSFER IN",
							},
						},
					},
				},
			},
		},
	}

	rows := FlattenDocument(doc)
	require.Len(t, rows, 1)
	assert.Equal(t, "INVBANKTRAN", rows[0].Type)
	assert.Equal(t, "Generic credit", rows[0].Description)
	assert.Equal(t, "TRANSFER IN", rows[0].Payee)
	assert.Equal(t, "1000", rows[0].Amount)
}
