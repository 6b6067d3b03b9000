package services

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/dto"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/models"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/repositories"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/validation"
)

type AccountServiceTestSuite struct {
	suite.Suite

	repo    *repositories.InMemoryBankAccountRepository
	service AccountServiceInterface
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.repo = repositories.NewInMemoryBankAccountRepository()

	service, err := NewAccountService(s.repo)
	s.Require().NoError(err)
	s.service = service
}

func (s *AccountServiceTestSuite) TestNewAccountService_NilRepository() {
	_, err := NewAccountService(nil)
	s.ErrorIs(err, ErrNilRepository)
}

func (s *AccountServiceTestSuite) TestCreate() {
	name := gofakeit.Name() + "'s account"

	account, err := s.service.Create(dto.CreateAccountRequest{Name: name})

	s.Require().NoError(err)
	s.Equal(name, account.Name)
	s.True(account.Balance.Equal(decimal.Zero))

	stored, ok := s.repo.GetByID(account.ID)
	s.True(ok)
	s.Equal(account, stored)
}

func (s *AccountServiceTestSuite) TestCreate_BlankName() {
	testCases := []struct {
		name        string
		description string
	}{
		{"", "empty"},
		{"   ", "whitespace"},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			account, err := s.service.Create(dto.CreateAccountRequest{Name: tc.name})

			s.ErrorIs(err, validation.ErrValidation)
			s.Nil(account)
			s.Empty(s.repo.GetAll())
		})
	}
}

func (s *AccountServiceTestSuite) TestSetBalanceManually() {
	account, err := s.service.Create(dto.CreateAccountRequest{Name: "Manual"})
	s.Require().NoError(err)

	s.NoError(s.service.SetBalanceManually(account.ID, decimal.NewFromInt(2500)))

	stored, ok := s.repo.GetByID(account.ID)
	s.Require().True(ok)
	s.True(stored.Balance.Equal(decimal.NewFromInt(2500)))
}

func (s *AccountServiceTestSuite) TestSetBalanceManually_AccountMissing() {
	err := s.service.SetBalanceManually(uuid.New(), decimal.NewFromInt(100))
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountServiceTestSuite) TestDelete() {
	account, err := s.service.Create(dto.CreateAccountRequest{Name: "Doomed"})
	s.Require().NoError(err)

	s.service.Delete(account.ID)

	_, ok := s.service.GetByID(account.ID)
	s.False(ok)

	// Deleting again is a no-op.
	s.service.Delete(account.ID)
}

func (s *AccountServiceTestSuite) TestUpdate_NilAccount() {
	s.ErrorIs(s.service.Update(nil), ErrNilAccount)
}

func (s *AccountServiceTestSuite) TestGetAll() {
	for _, name := range []string{"one", "two"} {
		_, err := s.service.Create(dto.CreateAccountRequest{Name: name})
		s.Require().NoError(err)
	}

	all := s.service.GetAll()
	s.Require().Len(all, 2)
	s.Equal("one", all[0].Name)
	s.Equal("two", all[1].Name)
}

func (s *AccountServiceTestSuite) TestUpdate() {
	account, err := s.service.Create(dto.CreateAccountRequest{Name: "Before"})
	s.Require().NoError(err)

	replacement := models.RestoreBankAccount(account.ID, "After", decimal.NewFromInt(10))
	s.NoError(s.service.Update(replacement))

	stored, ok := s.repo.GetByID(account.ID)
	s.Require().True(ok)
	s.Equal("After", stored.Name)
}
