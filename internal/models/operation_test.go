package models

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OperationTestSuite struct {
	suite.Suite

	accountID  uuid.UUID
	categoryID uuid.UUID
	date       time.Time
}

func TestOperationSuite(t *testing.T) {
	suite.Run(t, new(OperationTestSuite))
}

func (s *OperationTestSuite) SetupTest() {
	s.accountID = uuid.New()
	s.categoryID = uuid.New()
	s.date = time.Date(2025, 11, 9, 12, 0, 0, 0, time.UTC)
}

func (s *OperationTestSuite) TestNewOperation_SignInvariant() {
	testCases := []struct {
		operationType OperationType
		amount        string
		wantErr       error
		description   string
	}{
		{OperationTypeIncome, "10000", nil, "income with positive amount"},
		{OperationTypeIncome, "0.01", nil, "income with smallest positive amount"},
		{OperationTypeIncome, "-3000", ErrAmountSignMismatch, "income with negative amount"},
		{OperationTypeIncome, "0", ErrAmountSignMismatch, "income with zero amount"},
		{OperationTypeExpense, "-3000", nil, "expense with negative amount"},
		{OperationTypeExpense, "-0.01", nil, "expense with smallest negative amount"},
		{OperationTypeExpense, "10000", ErrAmountSignMismatch, "expense with positive amount"},
		{OperationTypeExpense, "0", ErrAmountSignMismatch, "expense with zero amount"},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			amount := decimal.RequireFromString(tc.amount)
			operation, err := NewOperation(
				tc.operationType, s.accountID, amount, s.date, "", s.categoryID)

			if tc.wantErr != nil {
				s.ErrorIs(err, tc.wantErr)
				s.Nil(operation)
				return
			}

			s.NoError(err)
			s.True(operation.Amount.Equal(amount))
		})
	}
}

func (s *OperationTestSuite) TestNewOperation_FieldsRoundTrip() {
	description := gofakeit.Sentence(4)
	amount := decimal.RequireFromString("1234.56")

	operation, err := NewOperation(
		OperationTypeIncome, s.accountID, amount, s.date, description, s.categoryID)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, operation.ID)
	s.Equal(OperationTypeIncome, operation.Type)
	s.Equal(s.accountID, operation.BankAccountID)
	s.True(operation.Amount.Equal(amount))
	s.True(operation.Date.Equal(s.date))
	s.Equal(description, operation.Description)
	s.Equal(s.categoryID, operation.CategoryID)
}

func (s *OperationTestSuite) TestNewOperation_InvalidType() {
	operation, err := NewOperation(
		OperationType(9), s.accountID, decimal.NewFromInt(100), s.date, "", s.categoryID)

	s.ErrorIs(err, ErrInvalidOperationType)
	s.Nil(operation)
}

func (s *OperationTestSuite) TestUpdateAmount() {
	operation, err := NewOperation(
		OperationTypeExpense, s.accountID, decimal.NewFromInt(-800), s.date, "", s.categoryID)
	s.Require().NoError(err)

	s.NoError(operation.UpdateAmount(decimal.NewFromInt(-1200)))
	s.True(operation.Amount.Equal(decimal.NewFromInt(-1200)))
}

func (s *OperationTestSuite) TestUpdateAmount_MismatchLeavesOperationUnchanged() {
	operation, err := NewOperation(
		OperationTypeExpense, s.accountID, decimal.NewFromInt(-800), s.date, "", s.categoryID)
	s.Require().NoError(err)

	s.ErrorIs(operation.UpdateAmount(decimal.NewFromInt(500)), ErrAmountSignMismatch)
	s.True(operation.Amount.Equal(decimal.NewFromInt(-800)))

	s.ErrorIs(operation.UpdateAmount(decimal.Zero), ErrAmountSignMismatch)
	s.True(operation.Amount.Equal(decimal.NewFromInt(-800)))
}

func (s *OperationTestSuite) TestUpdateDescription() {
	operation, err := NewOperation(
		OperationTypeIncome, s.accountID, decimal.NewFromInt(50000), s.date, "old", s.categoryID)
	s.Require().NoError(err)

	operation.UpdateDescription("november salary")
	s.Equal("november salary", operation.Description)

	// Clearing the description is allowed; it is an optional field.
	operation.UpdateDescription("")
	s.Equal("", operation.Description)
}

func (s *OperationTestSuite) TestRestoreOperation_BypassesValidation() {
	id := uuid.New()

	// A stored income operation with a negative amount would violate the
	// constructor invariant; the trusted restore path accepts it verbatim.
	operation := RestoreOperation(
		id, OperationTypeIncome, s.accountID,
		decimal.NewFromInt(-500), s.date, "", s.categoryID)

	s.Equal(id, operation.ID)
	s.True(operation.Amount.Equal(decimal.NewFromInt(-500)))
}
