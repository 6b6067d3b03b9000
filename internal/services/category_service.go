package services

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/dto"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/models"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/repositories"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/validation"
)

type categoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a CategoryServiceInterface instance.
func NewCategoryService(repo repositories.CategoryRepository) (CategoryServiceInterface, error) {
	if repo == nil {
		return nil, ErrNilRepository
	}

	return &categoryService{repo: repo}, nil
}

func (s *categoryService) Create(req dto.CreateCategoryRequest) (*models.Category, error) {
	if err := validation.GetValidator().ValidateStruct(req); err != nil {
		return nil, err
	}

	category, err := models.NewCategory(req.Type, req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Add(category); err != nil {
		return nil, err
	}

	slog.Info("category created",
		"category_id", category.ID,
		"type", category.Type.String(),
		"name", category.Name)

	return category, nil
}

func (s *categoryService) Delete(id uuid.UUID) {
	s.repo.Delete(id)

	slog.Info("category deleted", "category_id", id)
}

func (s *categoryService) GetByID(id uuid.UUID) (*models.Category, bool) {
	return s.repo.GetByID(id)
}

func (s *categoryService) GetAll() []*models.Category {
	return s.repo.GetAll()
}

func (s *categoryService) Rename(id uuid.UUID, newName string) error {
	category, ok := s.repo.GetByID(id)
	if !ok {
		return ErrCategoryNotFound
	}

	if err := category.Rename(newName); err != nil {
		return err
	}

	s.repo.Update(category)

	slog.Info("category renamed",
		"category_id", id,
		"name", newName)

	return nil
}

func (s *categoryService) Update(category *models.Category) error {
	if category == nil {
		return ErrNilCategory
	}

	s.repo.Update(category)
	return nil
}
