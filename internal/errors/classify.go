package errors

import (
	stderrors "errors"

	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/models"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/persistence"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/services"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/validation"
)

// Classify maps a core error to its collaborator-facing error code so the
// UI can render a stable message without inspecting error text.
func Classify(err error) ErrorCode {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, models.ErrBlankAccountName),
		stderrors.Is(err, models.ErrBlankCategoryName):
		return ValidationBlankName
	case stderrors.Is(err, models.ErrAmountSignMismatch):
		return ValidationAmountSign
	case stderrors.Is(err, models.ErrInvalidCategoryType),
		stderrors.Is(err, models.ErrInvalidOperationType):
		return ValidationInvalidType
	case stderrors.Is(err, validation.ErrValidation):
		return ValidationGeneral
	case stderrors.Is(err, services.ErrAccountNotFound):
		return AccountNotFound
	case stderrors.Is(err, services.ErrNilAccount):
		return AccountNil
	case stderrors.Is(err, services.ErrCategoryNotFound):
		return CategoryNotFound
	case stderrors.Is(err, services.ErrNilCategory):
		return CategoryNil
	case stderrors.Is(err, services.ErrOperationNotFound):
		return OperationNotFound
	case stderrors.Is(err, services.ErrNilOperation):
		return OperationNil
	case stderrors.Is(err, persistence.ErrSourceNotFound):
		return StorageSourceNotFound
	case stderrors.Is(err, persistence.ErrMalformedDocument):
		return StorageMalformedDocument
	default:
		return SystemUnexpectedError
	}
}
