package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentAction names the activity variant of an investment transaction.
// The values are the OFX aggregate tag names.
type InvestmentAction string

const (
	ActionBuyMutualFund   InvestmentAction = "BUYMF"
	ActionBuyOther        InvestmentAction = "BUYOTHER"
	ActionBuyStock        InvestmentAction = "BUYSTOCK"
	ActionSellMutualFund  InvestmentAction = "SELLMF"
	ActionSellOther       InvestmentAction = "SELLOTHER"
	ActionSellStock       InvestmentAction = "SELLSTOCK"
	ActionIncome          InvestmentAction = "INCOME"
	ActionReinvest        InvestmentAction = "REINVEST"
	ActionBankTransaction InvestmentAction = "INVBANKTRAN"
)

// InvTran is the common <INVTRAN> bundle shared by investment activity
// aggregates: transaction identity plus trade and settlement dates.
type InvTran struct {
	UniqueID       string     `json:"uniqueId" yaml:"uniqueId"`
	TradeDate      *time.Time `json:"tradeDate,omitempty" yaml:"tradeDate,omitempty"`
	SettlementDate *time.Time `json:"settlementDate,omitempty" yaml:"settlementDate,omitempty"`
	Memo           string     `json:"memo,omitempty" yaml:"memo,omitempty"`
}

// SecID identifies the security an activity refers to, usually a CUSIP.
type SecID struct {
	SecurityID     string `json:"securityId" yaml:"securityId"`
	SecurityIDType string `json:"securityIdType" yaml:"securityIdType"`
}

// Pricing carries the unit/price/total triple of a trade. Fields are nil when
// the corresponding element is absent; totals keep the sign the server sent.
type Pricing struct {
	Units          *decimal.Decimal `json:"units,omitempty" yaml:"units,omitempty"`
	UnitPrice      *decimal.Decimal `json:"unitPrice,omitempty" yaml:"unitPrice,omitempty"`
	Total          *decimal.Decimal `json:"total,omitempty" yaml:"total,omitempty"`
	SubAccountFund string           `json:"subAccountFund,omitempty" yaml:"subAccountFund,omitempty"`
	SubAccountSec  string           `json:"subAccountSec,omitempty" yaml:"subAccountSec,omitempty"`
}

// InvestmentTransaction is one activity from an <INVTRANLIST>. Action decides
// which of the optional fields are meaningful: BuyType for the Buy* variants,
// SellType for the Sell* variants, IncomeType for income and reinvestment,
// Banking for INVBANKTRAN wrappers.
type InvestmentTransaction struct {
	Action InvestmentAction `json:"action" yaml:"action"`

	InvTran
	SecID
	Pricing

	BuyType    string `json:"buyType,omitempty" yaml:"buyType,omitempty"`
	SellType   string `json:"sellType,omitempty" yaml:"sellType,omitempty"`
	IncomeType string `json:"incomeType,omitempty" yaml:"incomeType,omitempty"`

	// RelatedUniqueID links the two legs of a mutual-fund exchange
	// (<RELFITID> on BUYMF/SELLMF aggregates).
	RelatedUniqueID string `json:"relatedUniqueId,omitempty" yaml:"relatedUniqueId,omitempty"`

	// Banking is set only for INVBANKTRAN activities, which wrap an
	// ordinary banking transaction inside the investment list.
	Banking *Transaction `json:"banking,omitempty" yaml:"banking,omitempty"`
}
