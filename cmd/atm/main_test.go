package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/atm-ledger/internal/domain"
	"github.com/tirasundara/atm-ledger/internal/report"
	"github.com/tirasundara/atm-ledger/internal/service"
)

func TestRunDemo(t *testing.T) {
	users := demoUsers()
	ops := service.NewAccountOperations()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	note, err := runDemo(ops, logger, users[0], users[1])
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// 1000 + 300 - 50 earns 2%
	if !note.Balance.Equal(decimal.NewFromFloat(1250)) {
		t.Errorf("Expected interest base to be 1250, got %s", note.Balance)
	}
	if !note.Rate.Equal(decimal.NewFromFloat(0.02)) {
		t.Errorf("Expected interest rate to be 0.02, got %s", note.Rate)
	}
	if !note.Interest.Equal(decimal.NewFromFloat(25)) {
		t.Errorf("Expected interest to be 25, got %s", note.Interest)
	}
	if note.Owner != "Walid" || note.AccountType != domain.Saving {
		t.Errorf("Expected the note to name Walid's Saving account, got %s's %s", note.Owner, note.AccountType)
	}

	report := ops.Summary(users...)

	expected := map[string]float64{
		"Walid": 450.00 + 1175.00,
		"John":  550.00,
	}
	for _, user := range report.Users {
		want := decimal.NewFromFloat(expected[user.Name])
		if !user.Total.Equal(want) {
			t.Errorf("Expected %s's total to be %s, got %s", user.Name, want, user.Total)
		}
	}
}

func TestRunDemo_MissingAccounts(t *testing.T) {
	ops := service.NewAccountOperations()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if _, err := runDemo(ops, logger, domain.NewUser("Nobody", 0), domain.NewUser("Else", 0)); err == nil {
		t.Errorf("Expected error for a user without accounts")
	}
}

func TestBuildReport(t *testing.T) {
	users := demoUsers()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	summary, err := buildReport(service.NewAccountOperations(), logger, users)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Opening balances are captured before the demo runs
	expectedOpening := []float64{500, 1000, 300}
	if len(summary.Opening) != len(expectedOpening) {
		t.Fatalf("Expected %d opening statements, got %d", len(expectedOpening), len(summary.Opening))
	}
	for i, want := range expectedOpening {
		if !summary.Opening[i].Balance.Equal(decimal.NewFromFloat(want)) {
			t.Errorf("Expected opening balance %d to be %v, got %s", i, want, summary.Opening[i].Balance)
		}
		if n := len(summary.Opening[i].Transactions); n != 0 {
			t.Errorf("Expected no opening transactions, got %d", n)
		}
	}

	if len(summary.Interest) != 1 {
		t.Fatalf("Expected 1 interest note, got %d", len(summary.Interest))
	}

	output, err := report.NewTextFormatter().Format(summary)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	text := string(output)

	expectedLines := []string{
		"======  Initial Account Balances  ======\nWalid's Checking Account Balance: $500.00\nWalid's Saving Account Balance: $1000.00\nJohn's Checking Account Balance: $300.00\n",
		"Walid's Saving Account Balance: $1175.00\n\n Interest applied: 1250.00 * 0.02 = 25.00\n",
	}
	for _, line := range expectedLines {
		if !strings.Contains(text, line) {
			t.Errorf("Expected output to contain %q, got:\n%s", line, text)
		}
	}

	if strings.Index(text, "Initial Account Balances") > strings.Index(text, "Account Info") {
		t.Errorf("Expected opening balances to come before the account details")
	}
}

func TestWriteOutput(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"text ends with newline", "Total: $1.00\n", "Total: $1.00\n"},
		{"json without newline", `{"users":[]}`, "{\"users\":[]}\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeOutput(&buf, []byte(tt.output)); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}
