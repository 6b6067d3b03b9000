package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrBlankAccountName = errors.New("account name cannot be blank")

// BankAccount represents a bank account owning a set of operations.
// The stored balance is a cached figure: once operations exist it is
// derivable as the sum of their amounts, and the analytics recalculation
// replaces it with exactly that sum.
type BankAccount struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// NewBankAccount creates an account with a fresh id and a zero balance.
func NewBankAccount(name string) (*BankAccount, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankAccountName
	}

	return &BankAccount{
		ID:      uuid.New(),
		Name:    name,
		Balance: decimal.Zero,
	}, nil
}

// RestoreBankAccount rebuilds an account from already-validated stored
// fields, preserving its original id. It is the trusted rehydration path
// used only by the persistence import and performs no validation.
func RestoreBankAccount(id uuid.UUID, name string, balance decimal.Decimal) *BankAccount {
	return &BankAccount{
		ID:      id,
		Name:    name,
		Balance: balance,
	}
}

// SetBalance overrides the stored balance. It is unconditional: manual
// overrides are only meaningful before operations exist, and consistency
// with operation history is not checked here.
func (a *BankAccount) SetBalance(newBalance decimal.Decimal) {
	a.Balance = newBalance
}

// Rename changes the display name. The account is left unchanged when the
// new name is blank.
func (a *BankAccount) Rename(newName string) error {
	if strings.TrimSpace(newName) == "" {
		return ErrBlankAccountName
	}

	a.Name = newName
	return nil
}
