package booking

import "fmt"

// FlowError is a user-facing rejection of a wizard or history action. The
// message is safe to show as-is.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &FlowError{
		Code:    "validationError",
		Message: msg,
	}
}

func NewUnavailableError() error {
	return &FlowError{
		Code:    "roomUnavailable",
		Message: "The room is not available for the selected dates. Please choose different dates.",
	}
}
