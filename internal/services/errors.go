// Package services provides the business logic layer between handlers and the
// analysis engine. Services validate and convert wire records, run the pure
// engine code, and translate engine failures into coded errors.
package services

// ServiceError represents a service layer error
type ServiceError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

// NewServiceError creates a new ServiceError
func NewServiceError(code, message string) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
	}
}

// NewServiceErrorWithDetails creates a new ServiceError with details
func NewServiceErrorWithDetails(code, message string, details map[string]interface{}) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Error codes shared across services
const (
	CodeEmptyRequest     = "EMPTY_REQUEST"
	CodeTooManyRecords   = "TOO_MANY_RECORDS"
	CodeInvalidDate      = "INVALID_DATE"
	CodeInsufficientData = "INSUFFICIENT_DATA"
)
