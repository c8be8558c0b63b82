package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"fjacquet/ofx-csv/internal/models"
)

func sampleDocument() *models.Document {
	asOf := time.Date(2009, time.June, 22, 0, 0, 0, 0, time.UTC)
	return &models.Document{
		SignOn: models.SignOn{
			Status:    models.Status{Code: "0", Severity: "INFO"},
			Institute: models.Institute{Name: "Example Bank", ID: "1001"},
		},
		Accounts: []models.Account{
			{
				Kind:          models.AccountKindBank,
				AccountNumber: "0223123456",
				AccountType:   "CHECKING",
				Balance:       decimal.RequireFromString("152.39"),
				BalanceDate:   &asOf,
				Statement: models.Statement{
					Currency:     "GBP",
					Transactions: []models.Transaction{{Type: "CREDIT"}, {Type: "CHECK"}},
				},
			},
		},
	}
}

func TestSummarize(t *testing.T) {
	gen := NewGenerator()
	summary := gen.Summarize(sampleDocument(), "statement.ofx")

	assert.NotEmpty(t, summary.ReportID)
	assert.NotEmpty(t, summary.GeneratedAt)
	assert.Equal(t, "statement.ofx", summary.SourceFile)
	assert.Equal(t, "Example Bank", summary.Institute.Name)
	assert.Equal(t, "Success", summary.Status)

	require.Len(t, summary.Accounts, 1)
	acct := summary.Accounts[0]
	assert.Equal(t, "bank", acct.Kind)
	assert.Equal(t, "0223123456", acct.AccountNumber)
	assert.Equal(t, "152.39", acct.Balance)
	assert.Equal(t, "2009-06-22", acct.BalanceDate)
	assert.Equal(t, 2, acct.Transactions)
}

func TestRenderJSON(t *testing.T) {
	gen := NewGenerator()
	summary := gen.Summarize(sampleDocument(), "statement.ofx")

	out, err := gen.Render(summary, "json")
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, summary.ReportID, decoded.ReportID)
	assert.Equal(t, "GBP", decoded.Accounts[0].Currency)
}

func TestRenderYAML(t *testing.T) {
	gen := NewGenerator()
	summary := gen.Summarize(sampleDocument(), "statement.ofx")

	out, err := gen.Render(summary, "yaml")
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, summary.ReportID, decoded.ReportID)
	assert.Equal(t, "0223123456", decoded.Accounts[0].AccountNumber)
}

func TestRenderUnsupportedFormat(t *testing.T) {
	gen := NewGenerator()
	_, err := gen.Render(&Summary{}, "toml")
	assert.Error(t, err)
}
