package ofxparser

import (
	"fmt"

	"fjacquet/ofx-csv/internal/models"
	"fjacquet/ofx-csv/internal/parsererror"
	"fjacquet/ofx-csv/internal/xmlutils"

	"github.com/shopspring/decimal"
)

// buildInvestmentAccount maps one <INVSTMTTRNRS> investment statement
// response. The account balance is the available cash from <INVBAL>.
func (p *Parser) buildInvestmentAccount(trnrs *xmlutils.Node) (models.Account, error) {
	stmtrs := trnrs.Child("INVSTMTRS")

	acct := models.Account{
		Kind:           models.AccountKindInvestment,
		TransactionUID: trnrs.ChildText("TRNUID"),
	}
	if stmtrs == nil {
		return acct, nil
	}

	acct.BrokerID = stmtrs.PathText("INVACCTFROM", "BROKERID")
	acct.AccountNumber = stmtrs.PathText("INVACCTFROM", "ACCTID")
	acct.Balance = p.parseAmountLenient("AVAILCASH", stmtrs.PathText("INVBAL", "AVAILCASH"))
	acct.BalanceDate = p.parseDateTolerant(stmtrs.ChildText("DTASOF"))

	stmt := models.Statement{Currency: stmtrs.ChildText("CURDEF")}

	tranList := stmtrs.Child("INVTRANLIST")
	if tranList != nil {
		// Investment statements often omit or mangle their bounds.
		stmt.StartDate = p.parseDateTolerant(tranList.ChildText("DTSTART"))
		stmt.EndDate = p.parseDateTolerant(tranList.ChildText("DTEND"))

		for i := range tranList.Children {
			node := &tranList.Children[i]
			switch node.Name() {
			case "DTSTART", "DTEND":
				continue
			}
			inv, ok, err := p.buildInvestmentTransaction(node)
			if err != nil {
				return acct, err
			}
			if !ok {
				log.WithField("tag", node.Name()).Debug("Skipping unknown investment activity")
				continue
			}
			stmt.InvestmentTransactions = append(stmt.InvestmentTransactions, inv)
		}
	}

	acct.Statement = stmt
	return acct, nil
}

// buildInvestmentTransaction dispatches on the activity aggregate's tag
// name. Unknown aggregates report ok=false and are skipped by the caller.
func (p *Parser) buildInvestmentTransaction(node *xmlutils.Node) (models.InvestmentTransaction, bool, error) {
	action := models.InvestmentAction(node.Name())
	inv := models.InvestmentTransaction{Action: action}

	switch action {
	case models.ActionBuyMutualFund, models.ActionBuyOther, models.ActionBuyStock:
		// Buy aggregates nest their trade details in an <INVBUY>
		// wrapper; the buy type stays at the aggregate root.
		wrapper := node.Child("INVBUY")
		if wrapper == nil {
			return inv, false, &parsererror.MarkupSyntaxError{
				Detail: fmt.Sprintf("%s aggregate is missing its INVBUY wrapper", node.Name()),
			}
		}
		if err := p.loadTradeDetails(&inv, wrapper); err != nil {
			return inv, false, err
		}
		inv.BuyType = node.ChildText("BUYTYPE")
		inv.RelatedUniqueID = node.ChildText("RELFITID")

	case models.ActionSellMutualFund, models.ActionSellOther, models.ActionSellStock:
		wrapper := node.Child("INVSELL")
		if wrapper == nil {
			return inv, false, &parsererror.MarkupSyntaxError{
				Detail: fmt.Sprintf("%s aggregate is missing its INVSELL wrapper", node.Name()),
			}
		}
		if err := p.loadTradeDetails(&inv, wrapper); err != nil {
			return inv, false, err
		}
		inv.SellType = node.ChildText("SELLTYPE")
		inv.RelatedUniqueID = node.ChildText("RELFITID")

	case models.ActionIncome, models.ActionReinvest:
		// Income and reinvestment carry their details at the root.
		if err := p.loadTradeDetails(&inv, node); err != nil {
			return inv, false, err
		}
		inv.IncomeType = node.ChildText("INCOMETYPE")

	case models.ActionBankTransaction:
		stmttrn := node.Child("STMTTRN")
		if stmttrn == nil {
			return inv, false, &parsererror.MarkupSyntaxError{
				Detail: "INVBANKTRAN aggregate is missing its STMTTRN",
			}
		}
		banking, err := p.buildTransaction(stmttrn)
		if err != nil {
			return inv, false, err
		}
		inv.Banking = &banking
		inv.SubAccountFund = node.ChildText("SUBACCTFUND")

	default:
		return inv, false, nil
	}

	return inv, true, nil
}

// loadTradeDetails reads the INVTRAN/SECID identity bundles and the pricing
// triple from the given node, which is either the activity root or its
// INVBUY/INVSELL wrapper.
func (p *Parser) loadTradeDetails(inv *models.InvestmentTransaction, node *xmlutils.Node) error {
	invTran, err := p.loadInvTran(node.Child("INVTRAN"))
	if err != nil {
		return err
	}
	inv.InvTran = invTran

	if secID := node.Child("SECID"); secID != nil {
		inv.SecID = models.SecID{
			SecurityID:     secID.ChildText("UNIQUEID"),
			SecurityIDType: secID.ChildText("UNIQUEIDTYPE"),
		}
	}

	pricing, err := loadPricing(node)
	if err != nil {
		return err
	}
	inv.Pricing = pricing
	return nil
}

func (p *Parser) loadInvTran(node *xmlutils.Node) (models.InvTran, error) {
	if node == nil {
		return models.InvTran{}, nil
	}

	invTran := models.InvTran{
		UniqueID: node.ChildText("FITID"),
		Memo:     node.ChildText("MEMO"),
	}

	trade, err := p.parseDate(node.ChildText("DTTRADE"))
	if err != nil {
		return invTran, err
	}
	settle, err := p.parseDate(node.ChildText("DTSETTLE"))
	if err != nil {
		return invTran, err
	}
	invTran.TradeDate = trade
	invTran.SettlementDate = settle
	return invTran, nil
}

// loadPricing reads the unit/price/total triple. These values are plain
// decimals on the wire; running them through the locale-guessing amount
// parser would mangle prices with more than two fractional digits.
func loadPricing(node *xmlutils.Node) (models.Pricing, error) {
	pricing := models.Pricing{
		SubAccountFund: node.ChildText("SUBACCTFUND"),
		SubAccountSec:  node.ChildText("SUBACCTSEC"),
	}

	var err error
	if pricing.Units, err = parseDecimal("UNITS", node.ChildText("UNITS")); err != nil {
		return pricing, err
	}
	if pricing.UnitPrice, err = parseDecimal("UNITPRICE", node.ChildText("UNITPRICE")); err != nil {
		return pricing, err
	}
	if pricing.Total, err = parseDecimal("TOTAL", node.ChildText("TOTAL")); err != nil {
		return pricing, err
	}
	return pricing, nil
}

func parseDecimal(field, value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, &parsererror.ParseError{
			Parser: "OFX",
			Field:  field,
			Value:  value,
			Err:    err,
		}
	}
	return &d, nil
}
