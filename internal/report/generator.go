// Package report renders parsed statement summaries for the summary command.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"fjacquet/ofx-csv/internal/dateutils"
	"fjacquet/ofx-csv/internal/logging"
	"fjacquet/ofx-csv/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Summary is the rendered overview of one parsed statement file.
type Summary struct {
	ReportID    string           `json:"reportId" yaml:"reportId"`
	GeneratedAt string           `json:"generatedAt" yaml:"generatedAt"`
	SourceFile  string           `json:"sourceFile" yaml:"sourceFile"`
	Institute   models.Institute `json:"institute" yaml:"institute"`
	StatusCode  string           `json:"statusCode" yaml:"statusCode"`
	Status      string           `json:"status,omitempty" yaml:"status,omitempty"`
	Accounts    []AccountSummary `json:"accounts" yaml:"accounts"`
}

// AccountSummary condenses one account of the document.
type AccountSummary struct {
	Kind          string `json:"kind" yaml:"kind"`
	AccountNumber string `json:"accountNumber" yaml:"accountNumber"`
	AccountType   string `json:"accountType,omitempty" yaml:"accountType,omitempty"`
	Currency      string `json:"currency" yaml:"currency"`
	Balance       string `json:"balance" yaml:"balance"`
	BalanceDate   string `json:"balanceDate,omitempty" yaml:"balanceDate,omitempty"`
	Transactions  int    `json:"transactions" yaml:"transactions"`
}

// Generator renders statement summaries in various formats.
type Generator struct {
	logger *logrus.Logger
}

// NewGenerator creates a new summary generator.
func NewGenerator() *Generator {
	return &Generator{
		logger: logging.GetLogger(),
	}
}

// Summarize builds the summary of a parsed document.
func (g *Generator) Summarize(doc *models.Document, sourceFile string) *Summary {
	summary := &Summary{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		SourceFile:  sourceFile,
		Institute:   doc.SignOn.Institute,
		StatusCode:  doc.SignOn.Status.Code,
		Status:      doc.SignOn.Status.CodeDescription(),
	}

	for i := range doc.Accounts {
		acct := &doc.Accounts[i]
		as := AccountSummary{
			Kind:          string(acct.Kind),
			AccountNumber: acct.AccountNumber,
			AccountType:   acct.AccountType,
			Currency:      acct.Statement.Currency,
			Balance:       acct.Balance.StringFixed(2),
			Transactions: len(acct.Statement.Transactions) +
				len(acct.Statement.InvestmentTransactions),
		}
		if acct.BalanceDate != nil {
			as.BalanceDate = dateutils.ToISODate(*acct.BalanceDate)
		}
		summary.Accounts = append(summary.Accounts, as)
	}

	return summary
}

// Render serializes a summary in the requested format (json or yaml).
func (g *Generator) Render(summary *Summary, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.renderJSON(summary)
	case "yaml":
		return g.renderYAML(summary)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) renderJSON(summary *Summary) ([]byte, error) {
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		g.logger.Errorf("Failed to marshal JSON report: %v", err)
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

func (g *Generator) renderYAML(summary *Summary) ([]byte, error) {
	out, err := yaml.Marshal(summary)
	if err != nil {
		g.logger.Errorf("Failed to marshal YAML report: %v", err)
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}
