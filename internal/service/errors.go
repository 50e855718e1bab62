package service

import "fmt"

const (
	CodeNotFound        = "NOT_FOUND"
	CodeValidationError = "VALIDATION_ERROR"
)

// BusinessError — типизированная ошибка бизнес-логики, на границе HTTP
// превращается в код ответа.
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func NewNotFound(message string, err error) *BusinessError {
	return &BusinessError{
		Code:    CodeNotFound,
		Message: message,
		Err:     err,
	}
}

func NewValidationError(message string) *BusinessError {
	return &BusinessError{
		Code:    CodeValidationError,
		Message: message,
	}
}
