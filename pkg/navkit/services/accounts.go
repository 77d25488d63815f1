package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Account is a mock current or savings account.
type Account struct {
	ID       string
	Name     string
	IBAN     string
	Currency string
	Balance  decimal.Decimal
}

// Transaction is one account movement. Negative amounts are debits.
type Transaction struct {
	ID          string
	AccountID   string
	Amount      decimal.Decimal
	Description string
	BookedAt    time.Time
}

// Statement identifies a downloadable monthly statement.
type Statement struct {
	AccountID string
	Month     int
	Year      int
	URL       string
}

// Accounts serves mock account data.
type Accounts struct {
	accounts     map[string]Account
	transactions map[string][]Transaction // keyed by account ID
	byTxID       map[string]Transaction
}

// NewAccounts seeds the mock dataset.
func NewAccounts() *Accounts {
	a := &Accounts{
		accounts:     make(map[string]Account),
		transactions: make(map[string][]Transaction),
		byTxID:       make(map[string]Transaction),
	}

	seed := []Account{
		{ID: "ACC123", Name: "Everyday Checking", IBAN: "DE89370400440532013000", Currency: "EUR", Balance: decimal.RequireFromString("2543.17")},
		{ID: "ACC456", Name: "Rainy Day Savings", IBAN: "DE89370400440532013001", Currency: "EUR", Balance: decimal.RequireFromString("18200.00")},
	}
	for _, acc := range seed {
		a.accounts[acc.ID] = acc
	}

	booked := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)
	txs := []Transaction{
		{ID: "TX1", AccountID: "ACC123", Amount: decimal.RequireFromString("-42.50"), Description: "Grocery Store", BookedAt: booked},
		{ID: "TX2", AccountID: "ACC123", Amount: decimal.RequireFromString("-9.99"), Description: "Music Subscription", BookedAt: booked.Add(24 * time.Hour)},
		{ID: "TX3", AccountID: "ACC456", Amount: decimal.RequireFromString("500.00"), Description: "Monthly Savings", BookedAt: booked},
	}
	for _, tx := range txs {
		a.transactions[tx.AccountID] = append(a.transactions[tx.AccountID], tx)
		a.byTxID[tx.ID] = tx
	}
	return a
}

// List returns every account.
func (a *Accounts) List(ctx context.Context) ([]Account, error) {
	_ = ctx
	out := make([]Account, 0, len(a.accounts))
	for _, acc := range a.accounts {
		out = append(out, acc)
	}
	return out, nil
}

// Get returns one account by ID.
func (a *Accounts) Get(ctx context.Context, id string) (Account, error) {
	_ = ctx
	acc, ok := a.accounts[id]
	if !ok {
		return Account{}, fmt.Errorf("account %s: %w", id, ErrNotFound)
	}
	return acc, nil
}

// Transactions returns an account's movements, newest first.
func (a *Accounts) Transactions(ctx context.Context, accountID string) ([]Transaction, error) {
	_ = ctx
	if _, ok := a.accounts[accountID]; !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, ErrNotFound)
	}
	return a.transactions[accountID], nil
}

// Transaction returns one movement by ID.
func (a *Accounts) Transaction(ctx context.Context, txID string) (Transaction, error) {
	_ = ctx
	tx, ok := a.byTxID[txID]
	if !ok {
		return Transaction{}, fmt.Errorf("transaction %s: %w", txID, ErrNotFound)
	}
	return tx, nil
}

// Statement returns the download handle for a monthly statement.
func (a *Accounts) Statement(ctx context.Context, accountID string, month, year int) (Statement, error) {
	_ = ctx
	if _, ok := a.accounts[accountID]; !ok {
		return Statement{}, fmt.Errorf("account %s: %w", accountID, ErrNotFound)
	}
	return Statement{
		AccountID: accountID,
		Month:     month,
		Year:      year,
		URL:       fmt.Sprintf("mock://statements/%s/%04d-%02d.pdf", accountID, year, month),
	}, nil
}
