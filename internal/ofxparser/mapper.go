package ofxparser

import (
	"time"

	"fjacquet/ofx-csv/internal/currencyutils"
	"fjacquet/ofx-csv/internal/dateutils"
	"fjacquet/ofx-csv/internal/models"
	"fjacquet/ofx-csv/internal/xmlutils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// buildDocument maps the repaired XML tree onto the document model. The
// message-set wrappers are walked in the order banks emit them: sign-on,
// bank statements, credit-card statements, investment statements.
func (p *Parser) buildDocument(root *xmlutils.Node, header models.Header) (*models.Document, error) {
	doc := &models.Document{Header: header}

	doc.SignOn = p.buildSignOn(root.Path("SIGNONMSGSRSV1", "SONRS"))

	if bankSet := root.Child("BANKMSGSRSV1"); bankSet != nil {
		for _, trnrs := range bankSet.ChildrenNamed("STMTTRNRS") {
			acct, err := p.buildBankAccount(trnrs)
			if err != nil {
				return nil, err
			}
			doc.Accounts = append(doc.Accounts, acct)
		}
	}

	if cardSet := root.Child("CREDITCARDMSGSRSV1"); cardSet != nil {
		for _, trnrs := range cardSet.ChildrenNamed("CCSTMTTRNRS") {
			acct, err := p.buildCreditAccount(trnrs)
			if err != nil {
				return nil, err
			}
			doc.Accounts = append(doc.Accounts, acct)
		}
	}

	if invSet := root.Child("INVSTMTMSGSRSV1"); invSet != nil {
		for _, trnrs := range invSet.ChildrenNamed("INVSTMTTRNRS") {
			acct, err := p.buildInvestmentAccount(trnrs)
			if err != nil {
				return nil, err
			}
			doc.Accounts = append(doc.Accounts, acct)
		}
	}

	return doc, nil
}

// buildSignOn maps the <SONRS> sign-on response. A missing response yields
// an empty SignOn rather than an error: some exporters omit it entirely.
// The server timestamp is parsed tolerantly.
func (p *Parser) buildSignOn(sonrs *xmlutils.Node) models.SignOn {
	if sonrs == nil {
		return models.SignOn{}
	}

	signOn := models.SignOn{
		Status: models.Status{
			Code:     sonrs.PathText("STATUS", "CODE"),
			Severity: sonrs.PathText("STATUS", "SEVERITY"),
			Message:  sonrs.PathText("STATUS", "MESSAGE"),
		},
		Language: sonrs.ChildText("LANGUAGE"),
		Institute: models.Institute{
			Name: sonrs.PathText("FI", "ORG"),
			ID:   sonrs.PathText("FI", "FID"),
		},
	}

	signOn.Date = p.parseDateTolerant(sonrs.ChildText("DTSERVER"))

	return signOn
}

// buildBankAccount maps one <STMTTRNRS> bank statement response.
func (p *Parser) buildBankAccount(trnrs *xmlutils.Node) (models.Account, error) {
	stmtrs := trnrs.Child("STMTRS")

	acct := models.Account{
		Kind:           models.AccountKindBank,
		TransactionUID: trnrs.ChildText("TRNUID"),
	}
	if stmtrs == nil {
		return acct, nil
	}

	acct.AccountNumber = stmtrs.PathText("BANKACCTFROM", "ACCTID")
	acct.RoutingNumber = stmtrs.PathText("BANKACCTFROM", "BANKID")
	acct.AgencyNumber = stmtrs.PathText("BANKACCTFROM", "BRANCHID")
	acct.AccountType = stmtrs.PathText("BANKACCTFROM", "ACCTTYPE")

	p.fillBalance(&acct, stmtrs.Child("LEDGERBAL"))

	stmt, err := p.buildStatement(stmtrs)
	if err != nil {
		return acct, err
	}
	acct.Statement = stmt

	return acct, nil
}

// buildCreditAccount maps one <CCSTMTTRNRS> credit-card statement response.
// The account identity lives in <CCACCTFROM>, but some exporters reuse
// <BANKACCTFROM>, so both are probed.
func (p *Parser) buildCreditAccount(trnrs *xmlutils.Node) (models.Account, error) {
	stmtrs := trnrs.Child("CCSTMTRS")

	acct := models.Account{
		Kind:           models.AccountKindCreditCard,
		TransactionUID: trnrs.ChildText("TRNUID"),
	}
	if stmtrs == nil {
		return acct, nil
	}

	acctFrom := stmtrs.Child("CCACCTFROM")
	if acctFrom == nil {
		acctFrom = stmtrs.Child("BANKACCTFROM")
	}
	if acctFrom != nil {
		acct.AccountNumber = acctFrom.ChildText("ACCTID")
	}

	p.fillBalance(&acct, stmtrs.Child("LEDGERBAL"))

	stmt, err := p.buildStatement(stmtrs)
	if err != nil {
		return acct, err
	}
	acct.Statement = stmt

	return acct, nil
}

// fillBalance reads the <LEDGERBAL> amount and as-of date into the account.
// Both are optional and parsed leniently.
func (p *Parser) fillBalance(acct *models.Account, ledgerBal *xmlutils.Node) {
	if ledgerBal == nil {
		return
	}
	acct.Balance = p.parseAmountLenient("BALAMT", ledgerBal.ChildText("BALAMT"))
	acct.BalanceDate = p.parseDateTolerant(ledgerBal.ChildText("DTASOF"))
}

// buildStatement maps the <BANKTRANLIST> of a bank or credit-card statement
// response into the statement model.
func (p *Parser) buildStatement(stmtrs *xmlutils.Node) (models.Statement, error) {
	stmt := models.Statement{Currency: stmtrs.ChildText("CURDEF")}

	tranList := stmtrs.Child("BANKTRANLIST")
	if tranList == nil {
		return stmt, nil
	}

	stmt.StartDate = p.parseDateTolerant(tranList.ChildText("DTSTART"))
	stmt.EndDate = p.parseDateTolerant(tranList.ChildText("DTEND"))

	for _, node := range tranList.ChildrenNamed("STMTTRN") {
		txn, err := p.buildTransaction(node)
		if err != nil {
			return stmt, err
		}
		stmt.Transactions = append(stmt.Transactions, txn)
	}

	return stmt, nil
}

// buildTransaction maps one <STMTTRN>. The check number is only carried for
// cheque transactions; other types reuse <CHECKNUM> for unrelated reference
// numbers.
func (p *Parser) buildTransaction(node *xmlutils.Node) (models.Transaction, error) {
	txn := models.Transaction{
		Type:     node.ChildText("TRNTYPE"),
		UniqueID: node.ChildText("FITID"),
		Payee:    node.ChildText("NAME"),
		Memo:     node.ChildText("MEMO"),
		SIC:      node.ChildText("SIC"),
	}

	date, err := p.parseDate(node.ChildText("DTPOSTED"))
	if err != nil {
		return txn, err
	}
	txn.Date = date

	if userDate := node.ChildText("DTUSER"); userDate != "" {
		parsed, err := p.parseDate(userDate)
		if err != nil {
			return txn, err
		}
		txn.UserDate = parsed
	}

	txn.Amount = p.parseAmountLenient("TRNAMT", node.ChildText("TRNAMT"))

	if txn.Type == "CHECK" {
		txn.CheckNumber = node.ChildText("CHECKNUM")
	}

	return txn, nil
}

// parseDate parses a required OFX timestamp through the configured factory.
func (p *Parser) parseDate(value string) (*time.Time, error) {
	return dateutils.ParseDateWithFactory(value, p.factory)
}

// parseDateTolerant parses an optional timestamp, treating a malformed value
// as absent so that a broken server date does not abort the statement.
func (p *Parser) parseDateTolerant(value string) *time.Time {
	return dateutils.ParseDateTolerantWithFactory(value, p.factory)
}

// parseAmountLenient parses a monetary value, degrading to zero with a
// warning so that one broken amount does not abort the whole statement.
func (p *Parser) parseAmountLenient(field, value string) decimal.Decimal {
	amount, err := currencyutils.ParseAmount(value)
	if err != nil {
		log.WithFields(logrus.Fields{
			"field": field,
			"value": value,
		}).Warn("Failed to parse amount, using zero")
		return decimal.Zero
	}
	return amount
}
