package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationType distinguishes income operations from expense operations.
// Independent from CategoryType, but shares the same numeric convention in
// the persisted document format.
type OperationType int

const (
	OperationTypeIncome OperationType = iota
	OperationTypeExpense
)

var (
	ErrInvalidOperationType = errors.New("invalid operation type")
	ErrAmountSignMismatch   = errors.New("operation amount sign does not match operation type")
)

// Operation is a single signed monetary event belonging to exactly one
// account and one category. Income operations carry strictly positive
// amounts, expense operations strictly negative ones.
type Operation struct {
	ID            uuid.UUID       `json:"id"`
	Type          OperationType   `json:"type"`
	BankAccountID uuid.UUID       `json:"bank_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	CategoryID    uuid.UUID       `json:"category_id"`
}

// NewOperation creates an operation with a fresh id, enforcing the amount
// sign invariant for the given type.
func NewOperation(
	operationType OperationType,
	bankAccountID uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	description string,
	categoryID uuid.UUID,
) (*Operation, error) {
	if !operationType.Valid() {
		return nil, ErrInvalidOperationType
	}

	if err := validateAmountSign(operationType, amount); err != nil {
		return nil, err
	}

	return &Operation{
		ID:            uuid.New(),
		Type:          operationType,
		BankAccountID: bankAccountID,
		Amount:        amount,
		Date:          date,
		Description:   description,
		CategoryID:    categoryID,
	}, nil
}

// RestoreOperation rebuilds an operation from already-validated stored
// fields, preserving its original id. Trusted rehydration path used only by
// the persistence import; performs no validation.
func RestoreOperation(
	id uuid.UUID,
	operationType OperationType,
	bankAccountID uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	description string,
	categoryID uuid.UUID,
) *Operation {
	return &Operation{
		ID:            id,
		Type:          operationType,
		BankAccountID: bankAccountID,
		Amount:        amount,
		Date:          date,
		Description:   description,
		CategoryID:    categoryID,
	}
}

// UpdateAmount replaces the amount, re-enforcing the sign invariant. The
// operation is left unchanged when the new amount violates it.
func (o *Operation) UpdateAmount(newAmount decimal.Decimal) error {
	if err := validateAmountSign(o.Type, newAmount); err != nil {
		return err
	}

	o.Amount = newAmount
	return nil
}

// UpdateDescription replaces the free-text description.
func (o *Operation) UpdateDescription(newDescription string) {
	o.Description = newDescription
}

func validateAmountSign(operationType OperationType, amount decimal.Decimal) error {
	switch operationType {
	case OperationTypeIncome:
		if amount.LessThanOrEqual(decimal.Zero) {
			return ErrAmountSignMismatch
		}
	case OperationTypeExpense:
		if amount.GreaterThanOrEqual(decimal.Zero) {
			return ErrAmountSignMismatch
		}
	}
	return nil
}

// Valid reports whether t is a known operation type.
func (t OperationType) Valid() bool {
	return t == OperationTypeIncome || t == OperationTypeExpense
}

func (t OperationType) String() string {
	switch t {
	case OperationTypeIncome:
		return "income"
	case OperationTypeExpense:
		return "expense"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}
