package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Balances and amounts are persisted as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// FinanceDocument is the persisted document shape: three arrays in
// repository iteration order. Field names are PascalCase on the wire;
// decoding matches them case-insensitively and ignores unknown fields.
type FinanceDocument struct {
	Accounts   []BankAccountRecord `json:"Accounts"`
	Categories []CategoryRecord    `json:"Categories"`
	Operations []OperationRecord   `json:"Operations"`
}

// BankAccountRecord is the persisted form of a bank account.
type BankAccountRecord struct {
	ID      uuid.UUID       `json:"Id"`
	Name    string          `json:"Name"`
	Balance decimal.Decimal `json:"Balance"`
}

// CategoryRecord is the persisted form of a category. Type is encoded as
// 0 (income) or 1 (expense).
type CategoryRecord struct {
	ID   uuid.UUID `json:"Id"`
	Type int       `json:"Type"`
	Name string    `json:"Name"`
}

// OperationRecord is the persisted form of an operation. Description is
// nullable; a missing or null value defaults to the empty string on import.
type OperationRecord struct {
	ID            uuid.UUID       `json:"Id"`
	Type          int             `json:"Type"`
	BankAccountID uuid.UUID       `json:"BankAccountId"`
	Amount        decimal.Decimal `json:"Amount"`
	Date          time.Time       `json:"Date"`
	Description   *string         `json:"Description"`
	CategoryID    uuid.UUID       `json:"CategoryId"`
}
