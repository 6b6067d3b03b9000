package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/dto"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/models"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/repositories"
)

var (
	ErrNilRepository     = errors.New("repository cannot be nil")
	ErrSourceNotFound    = errors.New("import source file not found")
	ErrMalformedDocument = errors.New("malformed finance document")
)

// JSONHandler serializes the three repositories to a JSON document and
// rehydrates them from one. It holds no state between calls.
type JSONHandler struct {
	accountRepo   repositories.BankAccountRepository
	categoryRepo  repositories.CategoryRepository
	operationRepo repositories.OperationRepository
}

// NewJSONHandler creates a JSONHandler over the three repositories.
func NewJSONHandler(
	accountRepo repositories.BankAccountRepository,
	categoryRepo repositories.CategoryRepository,
	operationRepo repositories.OperationRepository,
) (*JSONHandler, error) {
	if accountRepo == nil || categoryRepo == nil || operationRepo == nil {
		return nil, ErrNilRepository
	}

	return &JSONHandler{
		accountRepo:   accountRepo,
		categoryRepo:  categoryRepo,
		operationRepo: operationRepo,
	}, nil
}

// Export writes the entire dataset to path as a pretty-printed UTF-8 JSON
// document, in repository iteration order. The target is created if absent
// and fully overwritten otherwise. Non-Latin text is written unescaped.
func (h *JSONHandler) Export(path string) error {
	doc := h.snapshot()

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export target: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode finance document: %w", err)
	}

	slog.Info("dataset exported",
		"path", path,
		"accounts", len(doc.Accounts),
		"categories", len(doc.Categories),
		"operations", len(doc.Operations))

	return nil
}

// Import replaces the entire dataset with the contents of the document at
// path. The destructive clear only runs after the document has been fully
// parsed, so a malformed document leaves existing state untouched.
// Categories are de-duplicated first-wins on their (type, name) pair; later
// duplicates are silently skipped, which can orphan operations referencing
// the skipped id. Balances are not recomputed here.
func (h *JSONHandler) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return fmt.Errorf("failed to read import source: %w", err)
	}

	var doc dto.FinanceDocument
	if err := json.Unmarshal(stripComments(data), &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	h.clear()

	for _, record := range doc.Accounts {
		account := models.RestoreBankAccount(record.ID, record.Name, record.Balance)
		if err := h.accountRepo.Add(account); err != nil {
			return fmt.Errorf("failed to restore account %s: %w", record.ID, err)
		}
	}

	seen := make(map[string]struct{})
	skipped := 0
	for _, record := range doc.Categories {
		categoryType := models.CategoryType(record.Type)
		key := models.CategoryDedupKey(categoryType, record.Name)
		if _, dup := seen[key]; dup {
			skipped++
			continue
		}
		seen[key] = struct{}{}

		category := models.RestoreCategory(record.ID, categoryType, record.Name)
		if err := h.categoryRepo.Add(category); err != nil {
			return fmt.Errorf("failed to restore category %s: %w", record.ID, err)
		}
	}

	for _, record := range doc.Operations {
		description := ""
		if record.Description != nil {
			description = *record.Description
		}

		operation := models.RestoreOperation(
			record.ID,
			models.OperationType(record.Type),
			record.BankAccountID,
			record.Amount,
			record.Date,
			description,
			record.CategoryID,
		)
		if err := h.operationRepo.Add(operation); err != nil {
			return fmt.Errorf("failed to restore operation %s: %w", record.ID, err)
		}
	}

	slog.Info("dataset imported",
		"path", path,
		"accounts", len(doc.Accounts),
		"categories", len(doc.Categories)-skipped,
		"duplicate_categories_skipped", skipped,
		"operations", len(doc.Operations))

	return nil
}

func (h *JSONHandler) snapshot() *dto.FinanceDocument {
	doc := &dto.FinanceDocument{
		Accounts:   []dto.BankAccountRecord{},
		Categories: []dto.CategoryRecord{},
		Operations: []dto.OperationRecord{},
	}

	for _, account := range h.accountRepo.GetAll() {
		doc.Accounts = append(doc.Accounts, dto.BankAccountRecord{
			ID:      account.ID,
			Name:    account.Name,
			Balance: account.Balance,
		})
	}

	for _, category := range h.categoryRepo.GetAll() {
		doc.Categories = append(doc.Categories, dto.CategoryRecord{
			ID:   category.ID,
			Type: int(category.Type),
			Name: category.Name,
		})
	}

	for _, operation := range h.operationRepo.GetAll() {
		description := operation.Description
		doc.Operations = append(doc.Operations, dto.OperationRecord{
			ID:            operation.ID,
			Type:          int(operation.Type),
			BankAccountID: operation.BankAccountID,
			Amount:        operation.Amount,
			Date:          operation.Date,
			Description:   &description,
			CategoryID:    operation.CategoryID,
		})
	}

	return doc
}

func (h *JSONHandler) clear() {
	for _, account := range h.accountRepo.GetAll() {
		h.accountRepo.Delete(account.ID)
	}
	for _, category := range h.categoryRepo.GetAll() {
		h.categoryRepo.Delete(category.ID)
	}
	for _, operation := range h.operationRepo.GetAll() {
		h.operationRepo.Delete(operation.ID)
	}
}

// stripComments removes // line comments and /* */ block comments from a
// JSON document, leaving string contents intact. Comment bytes are replaced
// with spaces so decode error offsets stay meaningful.
func stripComments(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)

	inString := false
	escaped := false

	for i := 0; i < len(out); i++ {
		c := out[i]

		if inString {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
		case c == '/' && i+1 < len(out) && out[i+1] == '/':
			for i < len(out) && out[i] != '\n' {
				out[i] = ' '
				i++
			}
		case c == '/' && i+1 < len(out) && out[i+1] == '*':
			out[i], out[i+1] = ' ', ' '
			i += 2
			for i < len(out) {
				if out[i] == '*' && i+1 < len(out) && out[i+1] == '/' {
					out[i], out[i+1] = ' ', ' '
					i++
					break
				}
				if out[i] != '\n' {
					out[i] = ' '
				}
				i++
			}
		}
	}

	return out
}
