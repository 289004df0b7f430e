package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/atm-ledger/internal/account"
	"github.com/tirasundara/atm-ledger/internal/domain"
	"github.com/tirasundara/atm-ledger/internal/report"
	"github.com/tirasundara/atm-ledger/internal/repository"
	"github.com/tirasundara/atm-ledger/internal/service"
)

func main() {
	// Command-line flags
	var (
		seedFile     string
		outputFormat string
		outputFile   string
		prettyPrint  bool
		verbose      bool
	)

	flag.StringVar(&seedFile, "seed", "", "Path to a users CSV file (name,pin,account_type,balance); built-in demo users when empty")
	flag.StringVar(&outputFormat, "format", "text", "Output format: text or json")
	flag.StringVar(&outputFile, "output", "", "Path to output file (if empty, writes to stdout)")
	flag.BoolVar(&prettyPrint, "pretty", true, "Pretty print JSON output")
	flag.BoolVar(&verbose, "v", false, "Log each demo step")

	flag.Parse()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Format the output
	var formatter report.OutputFormatter
	switch outputFormat {
	case "text":
		formatter = report.NewTextFormatter()
	case "json":
		formatter = report.NewJSONFormatter(prettyPrint)
	default:
		exitWithError(fmt.Sprintf("Unsupported output format: %s", outputFormat))
		return
	}

	var users []*domain.User
	if seedFile != "" {
		var err error
		users, err = repository.NewCSVUserRepository(seedFile, logger).GetUsers()
		if err != nil {
			exitWithError(fmt.Sprintf("Failed to load users: %v", err))
		}
	} else {
		users = demoUsers()
	}

	if len(users) < 2 {
		exitWithError("At least two users are required for the demo")
	}

	summary, err := buildReport(service.NewAccountOperations(), logger, users)
	if err != nil {
		exitWithError(err.Error())
	}

	output, err := formatter.Format(summary)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to format output: %v", err))
	}

	// Output the result
	if outputFile != "" {
		// If no extension is provided, add the formatter's default extension
		if !strings.Contains(outputFile, ".") {
			outputFile = fmt.Sprintf("%s.%s", outputFile, formatter.FileExtension())
		}

		if err := os.WriteFile(outputFile, output, 0644); err != nil {
			exitWithError(fmt.Sprintf("Failed to write output file: %v", err))
		}
		logger.Info("report written", "file", outputFile)
		return
	}

	if err := writeOutput(os.Stdout, output); err != nil {
		exitWithError(fmt.Sprintf("Failed to write output: %v", err))
	}
}

// writeOutput writes output to w, ending it with a newline if it lacks one
func writeOutput(w io.Writer, output []byte) error {
	if _, err := w.Write(output); err != nil {
		return err
	}
	if len(output) > 0 && !bytes.HasSuffix(output, []byte("\n")) {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// buildReport runs the demo between the first two users and returns the final
// summary together with the opening balances and the interest credited
func buildReport(ops *service.AccountOperations, logger *slog.Logger, users []*domain.User) (domain.Report, error) {
	opening := ops.Summary(users...).Statements()

	note, err := runDemo(ops, logger, users[0], users[1])
	if err != nil {
		return domain.Report{}, err
	}

	summary := ops.Summary(users...)
	summary.Opening = opening
	summary.Interest = []domain.InterestNote{note}
	return summary, nil
}

// demoUsers builds the two demonstration users
func demoUsers() []*domain.User {
	walid := domain.NewUser("Walid", 1111)
	walid.AddAccount(account.NewCheckingAccount(decimal.NewFromFloat(500.00)))
	walid.AddAccount(account.NewSavingAccount(decimal.NewFromFloat(1000.00)))

	john := domain.NewUser("John", 2222)
	john.AddAccount(account.NewCheckingAccount(decimal.NewFromFloat(300.00)))

	return []*domain.User{walid, john}
}

// runDemo performs the demonstration sequence: the first user needs a checking
// and a saving account, the second a checking account. It returns the interest
// credited to the saving account.
func runDemo(ops *service.AccountOperations, logger *slog.Logger, first, second *domain.User) (domain.InterestNote, error) {
	checking, ok := first.AccountByType(string(domain.Checking))
	if !ok {
		return domain.InterestNote{}, fmt.Errorf("%s has no checking account", first.Name())
	}
	found, ok := first.AccountByType(string(domain.Saving))
	if !ok {
		return domain.InterestNote{}, fmt.Errorf("%s has no saving account", first.Name())
	}
	saving, ok := found.(domain.InterestBearing)
	if !ok {
		return domain.InterestNote{}, fmt.Errorf("%s's saving account does not bear interest", first.Name())
	}
	receiver, ok := second.AccountByType(string(domain.Checking))
	if !ok {
		return domain.InterestNote{}, fmt.Errorf("%s has no checking account", second.Name())
	}

	ops.Deposit(first, checking, decimal.NewFromFloat(200.00))
	logStep(logger, "withdraw", first, checking, ops.Withdraw(first, checking, decimal.NewFromFloat(100.00)))

	ops.Deposit(first, saving, decimal.NewFromFloat(300.00))
	logStep(logger, "withdraw", first, saving, ops.Withdraw(first, saving, decimal.NewFromFloat(50.00)))

	note := domain.InterestNote{
		Owner:       first.Name(),
		AccountID:   saving.ID(),
		AccountType: saving.AccountType(),
		Balance:     saving.Balance(),
		Rate:        saving.InterestRate(),
	}
	note.Interest = ops.ApplyInterest(first, saving)
	logger.Info("interest applied",
		"user", note.Owner,
		"balance", note.Balance.StringFixed(2),
		"rate", note.Rate.String(),
		"interest", note.Interest.StringFixed(2))

	logStep(logger, "transfer", first, checking,
		ops.Transfer(first, checking, second, receiver, decimal.NewFromFloat(150.00)))
	logStep(logger, "transfer", first, saving,
		ops.Transfer(first, saving, second, receiver, decimal.NewFromFloat(100.00)))

	return note, nil
}

func logStep(logger *slog.Logger, op string, user *domain.User, acc domain.Account, ok bool) {
	if !ok {
		logger.Warn(op+" refused", "user", user.Name(), "account", acc.AccountType(), "balance", acc.Balance().StringFixed(2))
		return
	}
	logger.Info(op+" completed", "user", user.Name(), "account", acc.AccountType(), "balance", acc.Balance().StringFixed(2))
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
