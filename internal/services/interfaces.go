package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/dto"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/models"
)

var (
	ErrNilRepository = errors.New("repository cannot be nil")

	ErrAccountNotFound   = errors.New("account not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrOperationNotFound = errors.New("operation not found")

	ErrNilAccount   = errors.New("account cannot be nil")
	ErrNilCategory  = errors.New("category cannot be nil")
	ErrNilOperation = errors.New("operation cannot be nil")
)

// AccountServiceInterface is the collaborator-facing facade over the bank
// account repository.
type AccountServiceInterface interface {
	Create(req dto.CreateAccountRequest) (*models.BankAccount, error)
	Delete(id uuid.UUID)
	GetByID(id uuid.UUID) (*models.BankAccount, bool)
	GetAll() []*models.BankAccount
	Update(account *models.BankAccount) error
	SetBalanceManually(accountID uuid.UUID, newBalance decimal.Decimal) error
}

// CategoryServiceInterface is the collaborator-facing facade over the
// category repository.
type CategoryServiceInterface interface {
	Create(req dto.CreateCategoryRequest) (*models.Category, error)
	Delete(id uuid.UUID)
	GetByID(id uuid.UUID) (*models.Category, bool)
	GetAll() []*models.Category
	Rename(id uuid.UUID, newName string) error
	Update(category *models.Category) error
}

// OperationServiceInterface is the collaborator-facing facade over the
// operation repository.
type OperationServiceInterface interface {
	Create(req dto.CreateOperationRequest) (*models.Operation, error)
	Delete(id uuid.UUID)
	GetByID(id uuid.UUID) (*models.Operation, bool)
	GetAll() []*models.Operation
	UpdateAmount(id uuid.UUID, newAmount decimal.Decimal) error
	UpdateDescription(id uuid.UUID, newDescription string) error
	Update(operation *models.Operation) error
}

// AnalyticsServiceInterface derives aggregate statistics from repository
// snapshots. All operations are stateless reads except RecalculateBalances,
// which rewrites stored account balances.
type AnalyticsServiceInterface interface {
	IncomeVsExpenses(start, end time.Time) decimal.Decimal
	GroupByCategory(start, end time.Time) map[string]decimal.Decimal
	DetailedCategoryAnalysis() map[string]models.CategorySummary
	OverallStatistics() *models.OverallStatistics
	RecalculateBalances()
}
