package ofxparser

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/ofx-csv/internal/models"
)

const investmentStatement = `OFXHEADER:100
DATA:OFXSGML

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20201231
<LANGUAGE>ENG
<FI>
<ORG>Example Brokerage
<FID>2002
</FI>
</SONRS>
</SIGNONMSGSRSV1>
<INVSTMTMSGSRSV1>
<INVSTMTTRNRS>
<TRNUID>1001
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<INVSTMTRS>
<DTASOF>20201231
<CURDEF>USD
<INVACCTFROM>
<BROKERID>broker.example.com
<ACCTID>123456789
</INVACCTFROM>
<INVTRANLIST>
<DTSTART>20201201
<DTEND>20201231
<BUYSTOCK>
<INVBUY>
<INVTRAN>
<FITID>abc123
<DTTRADE>20201215
<DTSETTLE>20201217
<MEMO>buy shares
</INVTRAN>
<SECID>
<UNIQUEID>78462F103
<UNIQUEIDTYPE>CUSIP
</SECID>
<UNITS>10
<UNITPRICE>187.9894
<TOTAL>-1879.90
<SUBACCTSEC>CASH
<SUBACCTFUND>CASH
</INVBUY>
<BUYTYPE>BUY
</BUYSTOCK>
<SELLMF>
<INVSELL>
<INVTRAN>
<FITID>sell001
<DTTRADE>20201218
</INVTRAN>
<SECID>
<UNIQUEID>922908728
<UNIQUEIDTYPE>CUSIP
</SECID>
<UNITS>-5
<UNITPRICE>300.10
<TOTAL>1500.50
<SUBACCTSEC>CASH
<SUBACCTFUND>CASH
</INVSELL>
<SELLTYPE>SELL
<RELFITID>exch001
</SELLMF>
<INCOME>
<INVTRAN>
<FITID>def456
<DTTRADE>20201220
</INVTRAN>
<SECID>
<UNIQUEID>78462F103
<UNIQUEIDTYPE>CUSIP
</SECID>
<INCOMETYPE>DIV
<TOTAL>5.25
<SUBACCTSEC>CASH
<SUBACCTFUND>CASH
</INCOME>
<REINVEST>
<INVTRAN>
<FITID>ghi789
<DTTRADE>20201221
</INVTRAN>
<SECID>
<UNIQUEID>78462F103
<UNIQUEIDTYPE>CUSIP
</SECID>
<INCOMETYPE>DIV
<UNITS>0.25
<UNITPRICE>21.00
<TOTAL>-5.25
<SUBACCTSEC>CASH
</REINVEST>
<INVBANKTRAN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20201210
<TRNAMT>1000.00
<FITID>xyz789
<NAME>TRANSFER IN
</STMTTRN>
<SUBACCTFUND>CASH
</INVBANKTRAN>
<CLOSUREOPT>
<FITID>opt001
</CLOSUREOPT>
</INVTRANLIST>
<INVBAL>
<AVAILCASH>1234.56
<DTASOF>20201231
</INVBAL>
</INVSTMTRS>
</INVSTMTTRNRS>
</INVSTMTMSGSRSV1>
</OFX>
`

func TestParseInvestmentStatement(t *testing.T) {
	doc, err := Parse(strings.NewReader(investmentStatement))
	require.NoError(t, err)

	acct := doc.Account()
	require.NotNil(t, acct)
	assert.Equal(t, models.AccountKindInvestment, acct.Kind)
	assert.Equal(t, "1001", acct.TransactionUID)
	assert.Equal(t, "broker.example.com", acct.BrokerID)
	assert.Equal(t, "123456789", acct.AccountNumber)
	assert.True(t, acct.Balance.Equal(decimal.RequireFromString("1234.56")))
	require.NotNil(t, acct.BalanceDate)

	stmt := acct.Statement
	assert.Equal(t, "USD", stmt.Currency)
	require.NotNil(t, stmt.StartDate)
	require.NotNil(t, stmt.EndDate)
	assert.Empty(t, stmt.Transactions)

	// CLOSUREOPT is not a supported activity and must be skipped.
	require.Len(t, stmt.InvestmentTransactions, 5)

	buy := stmt.InvestmentTransactions[0]
	assert.Equal(t, models.ActionBuyStock, buy.Action)
	assert.Equal(t, "abc123", buy.InvTran.UniqueID)
	assert.Equal(t, "buy shares", buy.InvTran.Memo)
	require.NotNil(t, buy.TradeDate)
	assert.True(t, buy.TradeDate.Equal(time.Date(2020, time.December, 15, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, buy.SettlementDate)
	assert.Equal(t, "78462F103", buy.SecurityID)
	assert.Equal(t, "CUSIP", buy.SecurityIDType)
	assert.Equal(t, "BUY", buy.BuyType)
	assert.Equal(t, "CASH", buy.SubAccountSec)
	assert.Equal(t, "CASH", buy.SubAccountFund)
	require.NotNil(t, buy.Units)
	assert.True(t, buy.Units.Equal(decimal.RequireFromString("10")))
	require.NotNil(t, buy.UnitPrice)
	assert.True(t, buy.UnitPrice.Equal(decimal.RequireFromString("187.9894")),
		"unit prices keep their full precision")
	require.NotNil(t, buy.Total)
	assert.True(t, buy.Total.Equal(decimal.RequireFromString("-1879.90")))
	assert.Nil(t, buy.Banking)

	sell := stmt.InvestmentTransactions[1]
	assert.Equal(t, models.ActionSellMutualFund, sell.Action)
	assert.Equal(t, "sell001", sell.InvTran.UniqueID)
	assert.Equal(t, "SELL", sell.SellType)
	assert.Equal(t, "", sell.BuyType)
	assert.Equal(t, "exch001", sell.RelatedUniqueID, "exchange legs keep their RELFITID link")
	assert.Equal(t, "", buy.RelatedUniqueID)
	require.NotNil(t, sell.Units)
	assert.True(t, sell.Units.Equal(decimal.RequireFromString("-5")))

	income := stmt.InvestmentTransactions[2]
	assert.Equal(t, models.ActionIncome, income.Action)
	assert.Equal(t, "def456", income.InvTran.UniqueID)
	assert.Equal(t, "DIV", income.IncomeType)
	assert.Nil(t, income.Units, "income carries no units")
	require.NotNil(t, income.Total)
	assert.True(t, income.Total.Equal(decimal.RequireFromString("5.25")))

	reinvest := stmt.InvestmentTransactions[3]
	assert.Equal(t, models.ActionReinvest, reinvest.Action)
	assert.Equal(t, "DIV", reinvest.IncomeType)
	require.NotNil(t, reinvest.Units)
	assert.True(t, reinvest.Units.Equal(decimal.RequireFromString("0.25")))
	assert.Equal(t, "", reinvest.SubAccountFund)

	bankTran := stmt.InvestmentTransactions[4]
	assert.Equal(t, models.ActionBankTransaction, bankTran.Action)
	assert.Equal(t, "CASH", bankTran.SubAccountFund)
	require.NotNil(t, bankTran.Banking)
	assert.Equal(t, "CREDIT", bankTran.Banking.Type)
	assert.Equal(t, "xyz789", bankTran.Banking.UniqueID)
	assert.Equal(t, "TRANSFER IN", bankTran.Banking.Payee)
	assert.True(t, bankTran.Banking.Amount.Equal(decimal.RequireFromString("1000.00")))
}

func TestParseInvestmentBadBoundsAreDropped(t *testing.T) {
	statement := strings.Replace(investmentStatement, "<DTSTART>20201201", "<DTSTART>sometime", 1)

	doc, err := Parse(strings.NewReader(statement))
	require.NoError(t, err)

	acct := doc.Account()
	require.NotNil(t, acct)
	assert.Nil(t, acct.Statement.StartDate)
	require.NotNil(t, acct.Statement.EndDate)
	assert.Len(t, acct.Statement.InvestmentTransactions, 5)
}

func TestParseBuyWithoutWrapper(t *testing.T) {
	statement := strings.Replace(investmentStatement, "<INVBUY>\n", "", 1)
	statement = strings.Replace(statement, "</INVBUY>\n", "", 1)

	_, err := Parse(strings.NewReader(statement))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVBUY")
}
