package repositories

import (
	"github.com/google/uuid"

	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/models"
)

// InMemoryCategoryRepository keeps categories in a slice in insertion order.
type InMemoryCategoryRepository struct {
	categories []*models.Category
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{}
}

func (r *InMemoryCategoryRepository) Add(category *models.Category) error {
	if category == nil {
		return ErrNilEntity
	}

	r.categories = append(r.categories, category)
	return nil
}

func (r *InMemoryCategoryRepository) Delete(id uuid.UUID) {
	kept := r.categories[:0]
	for _, category := range r.categories {
		if category.ID != id {
			kept = append(kept, category)
		}
	}
	r.categories = kept
}

func (r *InMemoryCategoryRepository) GetByID(id uuid.UUID) (*models.Category, bool) {
	for _, category := range r.categories {
		if category.ID == id {
			return category, true
		}
	}
	return nil, false
}

func (r *InMemoryCategoryRepository) GetAll() []*models.Category {
	snapshot := make([]*models.Category, len(r.categories))
	copy(snapshot, r.categories)
	return snapshot
}

func (r *InMemoryCategoryRepository) Update(category *models.Category) {
	if category == nil {
		return
	}

	for i, stored := range r.categories {
		if stored.ID == category.ID {
			r.categories[i] = category
			return
		}
	}
}
