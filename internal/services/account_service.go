package services

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/dto"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/models"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/repositories"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/validation"
)

type accountService struct {
	repo repositories.BankAccountRepository
}

// NewAccountService creates an AccountServiceInterface instance.
func NewAccountService(repo repositories.BankAccountRepository) (AccountServiceInterface, error) {
	if repo == nil {
		return nil, ErrNilRepository
	}

	return &accountService{repo: repo}, nil
}

func (s *accountService) Create(req dto.CreateAccountRequest) (*models.BankAccount, error) {
	if err := validation.GetValidator().ValidateStruct(req); err != nil {
		return nil, err
	}

	account, err := models.NewBankAccount(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Add(account); err != nil {
		return nil, err
	}

	slog.Info("account created",
		"account_id", account.ID,
		"name", account.Name)

	return account, nil
}

func (s *accountService) Delete(id uuid.UUID) {
	s.repo.Delete(id)

	slog.Info("account deleted", "account_id", id)
}

func (s *accountService) GetByID(id uuid.UUID) (*models.BankAccount, bool) {
	return s.repo.GetByID(id)
}

func (s *accountService) GetAll() []*models.BankAccount {
	return s.repo.GetAll()
}

func (s *accountService) Update(account *models.BankAccount) error {
	if account == nil {
		return ErrNilAccount
	}

	s.repo.Update(account)
	return nil
}

// SetBalanceManually overrides the stored balance of an account. It does
// not validate consistency with operation history; the override is only
// meaningful before operations exist.
func (s *accountService) SetBalanceManually(accountID uuid.UUID, newBalance decimal.Decimal) error {
	account, ok := s.repo.GetByID(accountID)
	if !ok {
		return ErrAccountNotFound
	}

	account.SetBalance(newBalance)
	s.repo.Update(account)

	slog.Info("account balance overridden",
		"account_id", accountID,
		"balance", newBalance)

	return nil
}
