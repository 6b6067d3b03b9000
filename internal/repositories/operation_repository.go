package repositories

import (
	"github.com/google/uuid"

	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/models"
)

// InMemoryOperationRepository keeps operations in a slice in insertion order.
type InMemoryOperationRepository struct {
	operations []*models.Operation
}

func NewInMemoryOperationRepository() *InMemoryOperationRepository {
	return &InMemoryOperationRepository{}
}

func (r *InMemoryOperationRepository) Add(operation *models.Operation) error {
	if operation == nil {
		return ErrNilEntity
	}

	r.operations = append(r.operations, operation)
	return nil
}

func (r *InMemoryOperationRepository) Delete(id uuid.UUID) {
	kept := r.operations[:0]
	for _, operation := range r.operations {
		if operation.ID != id {
			kept = append(kept, operation)
		}
	}
	r.operations = kept
}

func (r *InMemoryOperationRepository) GetByID(id uuid.UUID) (*models.Operation, bool) {
	for _, operation := range r.operations {
		if operation.ID == id {
			return operation, true
		}
	}
	return nil, false
}

func (r *InMemoryOperationRepository) GetAll() []*models.Operation {
	snapshot := make([]*models.Operation, len(r.operations))
	copy(snapshot, r.operations)
	return snapshot
}

func (r *InMemoryOperationRepository) Update(operation *models.Operation) {
	if operation == nil {
		return
	}

	for i, stored := range r.operations {
		if stored.ID == operation.ID {
			r.operations[i] = operation
			return
		}
	}
}
