package errors

// ErrorCode represents a standardized error code used for collaborator-facing
// failure reporting
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral    ErrorCode = "VALIDATION_001"
	ValidationBlankName  ErrorCode = "VALIDATION_002"
	ValidationAmountSign ErrorCode = "VALIDATION_003"
	ValidationInvalidType ErrorCode = "VALIDATION_004"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound ErrorCode = "ACCOUNT_001"
	AccountNil      ErrorCode = "ACCOUNT_002"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound ErrorCode = "CATEGORY_001"
	CategoryNil      ErrorCode = "CATEGORY_002"
)

// Operation error codes (OPERATION_*)
const (
	OperationNotFound ErrorCode = "OPERATION_001"
	OperationNil      ErrorCode = "OPERATION_002"
)

// Storage error codes (STORAGE_*)
const (
	StorageSourceNotFound    ErrorCode = "STORAGE_001"
	StorageMalformedDocument ErrorCode = "STORAGE_002"
	StorageWriteFailed       ErrorCode = "STORAGE_003"
)

// System error codes (SYSTEM_*)
const (
	SystemUnexpectedError ErrorCode = "SYSTEM_001"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:     "Validation failed",
	ValidationBlankName:   "Name cannot be empty or blank",
	ValidationAmountSign:  "Amount sign does not match the operation type",
	ValidationInvalidType: "Unknown income/expense type",

	// Account errors
	AccountNotFound: "Account not found",
	AccountNil:      "Account is missing",

	// Category errors
	CategoryNotFound: "Category not found",
	CategoryNil:      "Category is missing",

	// Operation errors
	OperationNotFound: "Operation not found",
	OperationNil:      "Operation is missing",

	// Storage errors
	StorageSourceNotFound:    "Import file does not exist",
	StorageMalformedDocument: "Import file is not a valid finance document",
	StorageWriteFailed:       "Export file could not be written",

	// System errors
	SystemUnexpectedError: "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code.
// If the error code is not found, it returns a generic error message.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
