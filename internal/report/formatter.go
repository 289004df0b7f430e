package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tirasundara/atm-ledger/internal/domain"
)

// OutputFormatter defines the interface for rendering account reports
type OutputFormatter interface {
	Format(report domain.Report) ([]byte, error)
	FileExtension() string
}

// JSONFormatter formats account reports as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(report domain.Report) ([]byte, error) {
	if f.PrettyPrint {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}

// TextFormatter renders the console statement: per-account history and
// balance, followed by a summary of each user's total balance
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format implements the OutputFormatter interface for plain text
func (f *TextFormatter) Format(report domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	if len(report.Opening) > 0 {
		buf.WriteString("\n======  Initial Account Balances  ======\n")
		for _, statement := range report.Opening {
			writeAccountInfo(&buf, statement)
		}
	}

	for _, user := range report.Users {
		for _, statement := range user.Accounts {
			fmt.Fprintf(&buf, "\n======  %s's %s Account Info ======\n", statement.Owner, statement.AccountType)
			fmt.Fprintf(&buf, "[Account Type: %s]\n", statement.AccountType)
			writeHistory(&buf, statement)
			writeAccountInfo(&buf, statement)
			for _, note := range report.Interest {
				if note.AccountID == statement.AccountID {
					fmt.Fprintf(&buf, "\n Interest applied: %s * %s = %s\n",
						note.Balance.StringFixed(2), note.Rate, note.Interest.StringFixed(2))
				}
			}
		}
	}

	buf.WriteString("\n======  Summary Balance Report  ======\n")
	for i, user := range report.Users {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "%s's Total Balance: $%s\n", user.Name, user.Total.StringFixed(2))

		for j, statement := range user.Accounts {
			branch := "├──"
			if j == len(user.Accounts)-1 {
				branch = "└──"
			}
			fmt.Fprintf(&buf, "  %s %s: $%s\n", branch, statement.AccountType, statement.Balance.StringFixed(2))
		}
	}

	return buf.Bytes(), nil
}

func (f *TextFormatter) FileExtension() string {
	return "txt"
}

func writeAccountInfo(buf *bytes.Buffer, statement domain.Statement) {
	fmt.Fprintf(buf, "%s's %s Account Balance: $%s\n",
		statement.Owner, statement.AccountType, statement.Balance.StringFixed(2))
}

func writeHistory(buf *bytes.Buffer, statement domain.Statement) {
	buf.WriteString("Transaction History:\n")
	for _, txn := range statement.Transactions {
		buf.WriteString(txn.String())
		buf.WriteString("\n")
	}
}
