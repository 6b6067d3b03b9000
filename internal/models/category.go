package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CategoryType distinguishes income categories from expense categories.
// The numeric values are part of the persisted document format.
type CategoryType int

const (
	CategoryTypeIncome CategoryType = iota
	CategoryTypeExpense
)

var (
	ErrBlankCategoryName   = errors.New("category name cannot be blank")
	ErrInvalidCategoryType = errors.New("invalid category type")
)

// Category is a named bucket used to classify operations.
type Category struct {
	ID   uuid.UUID    `json:"id"`
	Type CategoryType `json:"type"`
	Name string       `json:"name"`
}

// NewCategory creates a category with a fresh id.
func NewCategory(categoryType CategoryType, name string) (*Category, error) {
	if !categoryType.Valid() {
		return nil, ErrInvalidCategoryType
	}

	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankCategoryName
	}

	return &Category{
		ID:   uuid.New(),
		Type: categoryType,
		Name: name,
	}, nil
}

// RestoreCategory rebuilds a category from already-validated stored fields,
// preserving its original id. Trusted rehydration path used only by the
// persistence import; performs no validation.
func RestoreCategory(id uuid.UUID, categoryType CategoryType, name string) *Category {
	return &Category{
		ID:   id,
		Type: categoryType,
		Name: name,
	}
}

// Rename changes the display name. The category is left unchanged when the
// new name is blank.
func (c *Category) Rename(newName string) error {
	if strings.TrimSpace(newName) == "" {
		return ErrBlankCategoryName
	}

	c.Name = newName
	return nil
}

// DedupKey returns the logical identity of the category for import
// de-duplication. Two categories are the same logical category iff their
// (type, name) pair matches exactly, case-sensitive.
func (c *Category) DedupKey() string {
	return CategoryDedupKey(c.Type, c.Name)
}

// CategoryDedupKey builds the (type, name) de-duplication key without
// requiring a constructed entity.
func CategoryDedupKey(categoryType CategoryType, name string) string {
	return fmt.Sprintf("%d_%s", categoryType, name)
}

// Valid reports whether t is a known category type.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

func (t CategoryType) String() string {
	switch t {
	case CategoryTypeIncome:
		return "income"
	case CategoryTypeExpense:
		return "expense"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}
