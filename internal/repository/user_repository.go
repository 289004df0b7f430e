package repository

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/atm-ledger/internal/account"
	"github.com/tirasundara/atm-ledger/internal/domain"
	"github.com/tirasundara/atm-ledger/pkg/fileutil"
)

var userHeaderFields = []string{"name", "pin", "account_type", "balance"}

// CSVUserRepository implements the UserRepository interface for a CSV seed
// file with one account per row. Rows sharing a name belong to the same user.
type CSVUserRepository struct {
	FilePath string
	logger   *slog.Logger
}

// NewCSVUserRepository creates a new CSVUserRepository
func NewCSVUserRepository(filePath string, logger *slog.Logger) *CSVUserRepository {
	if logger == nil {
		logger = slog.Default()
	}

	return &CSVUserRepository{
		FilePath: filePath,
		logger:   logger.With("file", filePath),
	}
}

// GetUsers loads users and their accounts. Malformed rows are logged and
// skipped; a missing file or header is an error.
func (r *CSVUserRepository) GetUsers() ([]*domain.User, error) {
	reader := fileutil.NewCSVReader(r.FilePath)

	var columnMap headerMap
	headerFn := func(header []string) error {
		var err error
		columnMap, err = createHeaderMap(header, userHeaderFields)
		if err != nil {
			return fmt.Errorf("mapping CSV columns: %w", err)
		}
		return nil
	}

	var users []*domain.User
	byName := make(map[string]*domain.User)

	rowFn := func(line int, row []string) error {
		// Skip if row doesn't have enough fields
		if !columnMap.fits(row) {
			r.logger.Warn("skipping row: missing fields", "line", line)
			return nil
		}

		name := columnMap.value(row, "name")
		if name == "" {
			r.logger.Warn("skipping row: empty name", "line", line)
			return nil
		}

		pin, err := strconv.Atoi(columnMap.value(row, "pin"))
		if err != nil {
			r.logger.Warn("skipping row: invalid pin", "line", line, "error", err)
			return nil
		}

		accountType, err := account.ParseType(columnMap.value(row, "account_type"))
		if err != nil {
			r.logger.Warn("skipping row: invalid account type", "line", line, "error", err)
			return nil
		}

		balance, err := decimal.NewFromString(columnMap.value(row, "balance"))
		if err != nil {
			r.logger.Warn("skipping row: invalid balance", "line", line, "error", err)
			return nil
		}

		acc, err := account.New(accountType, balance)
		if err != nil {
			return fmt.Errorf("creating account on line %d: %w", line, err)
		}

		user, ok := byName[name]
		if !ok {
			user = domain.NewUser(name, pin)
			byName[name] = user
			users = append(users, user)
		} else if user.PIN() != pin {
			r.logger.Warn("pin differs from first row of user, keeping the first", "line", line, "user", name)
		}

		user.AddAccount(acc)
		return nil
	}

	if err := reader.ReadAndProcessByRow(headerFn, rowFn); err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}

	return users, nil
}
