package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/models"
)

// CreateAccountRequest carries the input for opening a new bank account.
type CreateAccountRequest struct {
	Name string `json:"name" validate:"required,notblank"`
}

// CreateCategoryRequest carries the input for creating a category.
type CreateCategoryRequest struct {
	Type models.CategoryType `json:"type" validate:"min=0,max=1"`
	Name string              `json:"name" validate:"required,notblank"`
}

// CreateOperationRequest carries the input for recording an operation.
// The amount sign invariant is enforced by the entity constructor, not
// here: validation only covers presence and shape.
type CreateOperationRequest struct {
	Type          models.OperationType `json:"type" validate:"min=0,max=1"`
	BankAccountID uuid.UUID            `json:"bank_account_id" validate:"required"`
	Amount        decimal.Decimal      `json:"amount"`
	Date          time.Time            `json:"date" validate:"required"`
	Description   string               `json:"description"`
	CategoryID    uuid.UUID            `json:"category_id" validate:"required"`
}
