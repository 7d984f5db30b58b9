package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError erro de aplicação com código HTTP associado
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewWithDetails(code int, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Erros catalogados da camada HTTP; a tradução de erros de domínio para
// estes valores acontece no boundary dos handlers
var (
	ErrContactNotFound          = New(http.StatusNotFound, "Contact not found")
	ErrProfileNotFound          = New(http.StatusNotFound, "Profile not found")
	ErrProfileEmailInUse        = New(http.StatusConflict, "Profile email already in use")
	ErrWhatsAppSettingsNotFound = New(http.StatusNotFound, "WhatsApp settings not found")
)

// Wrap envolve um erro com contexto adicional
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsAppError verifica se o erro é um AppError (diretamente ou na cadeia)
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extrai o AppError da cadeia, ou converte para erro interno genérico
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewWithDetails(http.StatusInternalServerError, "Internal server error", err.Error())
}
