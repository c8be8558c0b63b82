package models

import "time"

const csvDateLayout = "2006-01-02"

// CsvTransaction is the flat CSV projection of a transaction, shared by the
// banking and investment variants. Empty columns mean the source aggregate
// did not carry the field.
type CsvTransaction struct {
	AccountNumber string `csv:"AccountNumber"`
	AccountKind   string `csv:"AccountKind"`
	Currency      string `csv:"Currency"`
	Type          string `csv:"Type"`
	Description   string `csv:"Description"`
	Date          string `csv:"Date"`
	UserDate      string `csv:"UserDate"`
	Amount        string `csv:"Amount"`
	UniqueID      string `csv:"UniqueID"`
	Payee         string `csv:"Payee"`
	Memo          string `csv:"Memo"`
	CheckNumber   string `csv:"CheckNumber"`
	SecurityID    string `csv:"SecurityID"`
	Units         string `csv:"Units"`
	UnitPrice     string `csv:"UnitPrice"`
}

func csvDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(csvDateLayout)
}

// FlattenDocument projects every transaction of every account in the document
// into CSV rows, in document order.
func FlattenDocument(doc *Document) []CsvTransaction {
	var rows []CsvTransaction
	for i := range doc.Accounts {
		acct := &doc.Accounts[i]
		for _, txn := range acct.Statement.Transactions {
			rows = append(rows, flattenBanking(acct, txn))
		}
		for _, inv := range acct.Statement.InvestmentTransactions {
			rows = append(rows, flattenInvestment(acct, inv))
		}
	}
	return rows
}

func flattenBanking(acct *Account, txn Transaction) CsvTransaction {
	return CsvTransaction{
		AccountNumber: acct.AccountNumber,
		AccountKind:   string(acct.Kind),
		Currency:      acct.Statement.Currency,
		Type:          txn.Type,
		Description:   txn.TypeDescription(),
		Date:          csvDate(txn.Date),
		UserDate:      csvDate(txn.UserDate),
		Amount:        txn.Amount.String(),
		UniqueID:      txn.UniqueID,
		Payee:         txn.Payee,
		Memo:          txn.Memo,
		CheckNumber:   txn.CheckNumber,
	}
}

func flattenInvestment(acct *Account, inv InvestmentTransaction) CsvTransaction {
	if inv.Action == ActionBankTransaction && inv.Banking != nil {
		row := flattenBanking(acct, *inv.Banking)
		row.Type = string(inv.Action)
		row.Description = inv.Banking.TypeDescription()
		return row
	}
	row := CsvTransaction{
		AccountNumber: acct.AccountNumber,
		AccountKind:   string(acct.Kind),
		Currency:      acct.Statement.Currency,
		Type:          string(inv.Action),
		Date:          csvDate(inv.TradeDate),
		UniqueID:      inv.InvTran.UniqueID,
		Memo:          inv.InvTran.Memo,
		SecurityID:    inv.SecurityID,
	}
	if inv.Total != nil {
		row.Amount = inv.Total.String()
	}
	if inv.Units != nil {
		row.Units = inv.Units.String()
	}
	if inv.UnitPrice != nil {
		row.UnitPrice = inv.UnitPrice.String()
	}
	return row
}
