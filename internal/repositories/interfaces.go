package repositories

import (
	"errors"

	"github.com/google/uuid"

	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/models"
)

var ErrNilEntity = errors.New("entity cannot be nil")

// BankAccountRepository stores bank accounts in insertion order.
//
// All three repository contracts share the same shape: Add rejects nil and
// does not check for duplicate ids (documented limitation), Delete and
// Update are no-ops when the id is absent, and GetByID reports a miss via
// the second return value rather than an error.
type BankAccountRepository interface {
	Add(account *models.BankAccount) error
	Delete(id uuid.UUID)
	GetByID(id uuid.UUID) (*models.BankAccount, bool)
	GetAll() []*models.BankAccount
	Update(account *models.BankAccount)
}

// CategoryRepository stores categories in insertion order.
type CategoryRepository interface {
	Add(category *models.Category) error
	Delete(id uuid.UUID)
	GetByID(id uuid.UUID) (*models.Category, bool)
	GetAll() []*models.Category
	Update(category *models.Category)
}

// OperationRepository stores operations in insertion order.
type OperationRepository interface {
	Add(operation *models.Operation) error
	Delete(id uuid.UUID)
	GetByID(id uuid.UUID) (*models.Operation, bool)
	GetAll() []*models.Operation
	Update(operation *models.Operation)
}
