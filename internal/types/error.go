package types

import "fmt"

// CustomError carries an HTTP status code and a dotted error type label
// through the Fiber error handler.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewCustomError builds a CustomError for the given status code.
func NewCustomError(code int, errorType, format string, args ...interface{}) *CustomError {
	return &CustomError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Type:    errorType,
	}
}
