package services

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/dto"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/models"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/repositories"
)

type OperationServiceTestSuite struct {
	suite.Suite

	repo    *repositories.InMemoryOperationRepository
	service OperationServiceInterface

	accountID  uuid.UUID
	categoryID uuid.UUID
	date       time.Time
}

func TestOperationServiceSuite(t *testing.T) {
	suite.Run(t, new(OperationServiceTestSuite))
}

func (s *OperationServiceTestSuite) SetupTest() {
	s.repo = repositories.NewInMemoryOperationRepository()

	service, err := NewOperationService(s.repo)
	s.Require().NoError(err)
	s.service = service

	s.accountID = uuid.New()
	s.categoryID = uuid.New()
	s.date = time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC)
}

func (s *OperationServiceTestSuite) TestNewOperationService_NilRepository() {
	_, err := NewOperationService(nil)
	s.ErrorIs(err, ErrNilRepository)
}

func (s *OperationServiceTestSuite) TestCreate() {
	description := gofakeit.Sentence(3)

	operation, err := s.service.Create(dto.CreateOperationRequest{
		Type:          models.OperationTypeIncome,
		BankAccountID: s.accountID,
		Amount:        decimal.NewFromInt(10000),
		Date:          s.date,
		Description:   description,
		CategoryID:    s.categoryID,
	})

	s.Require().NoError(err)
	s.Equal(s.accountID, operation.BankAccountID)
	s.Equal(description, operation.Description)

	stored, ok := s.repo.GetByID(operation.ID)
	s.True(ok)
	s.Equal(operation, stored)
}

func (s *OperationServiceTestSuite) TestCreate_SignMismatchLeavesRepositoryEmpty() {
	operation, err := s.service.Create(dto.CreateOperationRequest{
		Type:          models.OperationTypeExpense,
		BankAccountID: s.accountID,
		Amount:        decimal.NewFromInt(500),
		Date:          s.date,
		CategoryID:    s.categoryID,
	})

	s.ErrorIs(err, models.ErrAmountSignMismatch)
	s.Nil(operation)
	s.Empty(s.repo.GetAll())
}

func (s *OperationServiceTestSuite) TestUpdateAmount() {
	operation, err := s.service.Create(dto.CreateOperationRequest{
		Type:          models.OperationTypeExpense,
		BankAccountID: s.accountID,
		Amount:        decimal.NewFromInt(-800),
		Date:          s.date,
		CategoryID:    s.categoryID,
	})
	s.Require().NoError(err)

	s.NoError(s.service.UpdateAmount(operation.ID, decimal.NewFromInt(-1200)))

	stored, ok := s.repo.GetByID(operation.ID)
	s.Require().True(ok)
	s.True(stored.Amount.Equal(decimal.NewFromInt(-1200)))
}

func (s *OperationServiceTestSuite) TestUpdateAmount_SignMismatchKeepsStoredAmount() {
	operation, err := s.service.Create(dto.CreateOperationRequest{
		Type:          models.OperationTypeExpense,
		BankAccountID: s.accountID,
		Amount:        decimal.NewFromInt(-800),
		Date:          s.date,
		CategoryID:    s.categoryID,
	})
	s.Require().NoError(err)

	s.ErrorIs(
		s.service.UpdateAmount(operation.ID, decimal.NewFromInt(800)),
		models.ErrAmountSignMismatch)

	stored, ok := s.repo.GetByID(operation.ID)
	s.Require().True(ok)
	s.True(stored.Amount.Equal(decimal.NewFromInt(-800)))
}

func (s *OperationServiceTestSuite) TestUpdateAmount_OperationMissing() {
	err := s.service.UpdateAmount(uuid.New(), decimal.NewFromInt(-100))
	s.ErrorIs(err, ErrOperationNotFound)
}

func (s *OperationServiceTestSuite) TestUpdateDescription() {
	operation, err := s.service.Create(dto.CreateOperationRequest{
		Type:          models.OperationTypeIncome,
		BankAccountID: s.accountID,
		Amount:        decimal.NewFromInt(100),
		Date:          s.date,
		Description:   "before",
		CategoryID:    s.categoryID,
	})
	s.Require().NoError(err)

	s.NoError(s.service.UpdateDescription(operation.ID, "after"))

	stored, ok := s.repo.GetByID(operation.ID)
	s.Require().True(ok)
	s.Equal("after", stored.Description)
}

func (s *OperationServiceTestSuite) TestUpdateDescription_OperationMissing() {
	err := s.service.UpdateDescription(uuid.New(), "anything")
	s.ErrorIs(err, ErrOperationNotFound)
}

func (s *OperationServiceTestSuite) TestDelete() {
	operation, err := s.service.Create(dto.CreateOperationRequest{
		Type:          models.OperationTypeIncome,
		BankAccountID: s.accountID,
		Amount:        decimal.NewFromInt(100),
		Date:          s.date,
		CategoryID:    s.categoryID,
	})
	s.Require().NoError(err)

	s.service.Delete(operation.ID)
	s.Empty(s.service.GetAll())

	s.ErrorIs(s.service.Update(nil), ErrNilOperation)
}
