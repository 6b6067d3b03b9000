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

type operationService struct {
	repo repositories.OperationRepository
}

// NewOperationService creates an OperationServiceInterface instance.
func NewOperationService(repo repositories.OperationRepository) (OperationServiceInterface, error) {
	if repo == nil {
		return nil, ErrNilRepository
	}

	return &operationService{repo: repo}, nil
}

func (s *operationService) Create(req dto.CreateOperationRequest) (*models.Operation, error) {
	if err := validation.GetValidator().ValidateStruct(req); err != nil {
		return nil, err
	}

	operation, err := models.NewOperation(
		req.Type,
		req.BankAccountID,
		req.Amount,
		req.Date,
		req.Description,
		req.CategoryID,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Add(operation); err != nil {
		return nil, err
	}

	slog.Info("operation recorded",
		"operation_id", operation.ID,
		"type", operation.Type.String(),
		"account_id", operation.BankAccountID,
		"amount", operation.Amount)

	return operation, nil
}

func (s *operationService) Delete(id uuid.UUID) {
	s.repo.Delete(id)

	slog.Info("operation deleted", "operation_id", id)
}

func (s *operationService) GetByID(id uuid.UUID) (*models.Operation, bool) {
	return s.repo.GetByID(id)
}

func (s *operationService) GetAll() []*models.Operation {
	return s.repo.GetAll()
}

func (s *operationService) UpdateAmount(id uuid.UUID, newAmount decimal.Decimal) error {
	operation, ok := s.repo.GetByID(id)
	if !ok {
		return ErrOperationNotFound
	}

	if err := operation.UpdateAmount(newAmount); err != nil {
		return err
	}

	s.repo.Update(operation)

	slog.Info("operation amount updated",
		"operation_id", id,
		"amount", newAmount)

	return nil
}

func (s *operationService) UpdateDescription(id uuid.UUID, newDescription string) error {
	operation, ok := s.repo.GetByID(id)
	if !ok {
		return ErrOperationNotFound
	}

	operation.UpdateDescription(newDescription)
	s.repo.Update(operation)

	return nil
}

func (s *operationService) Update(operation *models.Operation) error {
	if operation == nil {
		return ErrNilOperation
	}

	s.repo.Update(operation)
	return nil
}
