package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"buscacliente/internal/app/common"
	"buscacliente/internal/domain/contact"
	"buscacliente/internal/domain/profile"
	"buscacliente/internal/domain/whatsapp"
	apperrors "buscacliente/pkg/errors"
	"buscacliente/platform/logger"
)

// writeJSON serializa o payload com o status dado
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeSuccess escreve resposta 200 no envelope padrão
func writeSuccess(w http.ResponseWriter, data interface{}, message ...string) {
	writeJSON(w, http.StatusOK, common.NewSuccessResponse(data, message...))
}

// writeCreated escreve resposta 201 no envelope padrão
func writeCreated(w http.ResponseWriter, data interface{}, message ...string) {
	writeJSON(w, http.StatusCreated, common.NewSuccessResponse(data, message...))
}

// writeBadRequest escreve resposta 400 no envelope de erro
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, common.NewErrorResponse(message))
}

// writeError traduz erros de domínio e de validação para o envelope de erro
// com o status HTTP apropriado
func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	status, message := translateError(err)

	if status >= 500 {
		log.ErrorWithFields("Request failed", map[string]interface{}{
			"error": err.Error(),
		})
		// Não vazar detalhes internos
		message = "Internal server error"
	}

	writeJSON(w, status, common.NewErrorResponse(message))
}

// translateError resolve o AppError correspondente ao erro; erros não
// classificados viram 500
func translateError(err error) (int, string) {
	appErr := apperrors.GetAppError(classifyError(err))
	return appErr.Code, appErr.Message
}

// classifyError mapeia erros de domínio conhecidos para o AppError catalogado
func classifyError(err error) error {
	if apperrors.IsAppError(err) {
		return err
	}

	switch {
	case errors.Is(err, contact.ErrContactNotFound):
		return apperrors.ErrContactNotFound
	case errors.Is(err, contact.ErrCompanyNameRequired),
		errors.Is(err, contact.ErrCategoryRequired),
		errors.Is(err, contact.ErrStatusRequired):
		return apperrors.New(http.StatusBadRequest, err.Error())
	case errors.Is(err, profile.ErrProfileNotFound):
		return apperrors.ErrProfileNotFound
	case errors.Is(err, profile.ErrEmailInUse):
		return apperrors.ErrProfileEmailInUse
	case errors.Is(err, profile.ErrNameRequired),
		errors.Is(err, profile.ErrEmailRequired):
		return apperrors.New(http.StatusBadRequest, err.Error())
	case errors.Is(err, whatsapp.ErrMissingToken),
		errors.Is(err, whatsapp.ErrMissingPhone),
		errors.Is(err, whatsapp.ErrNotPaired):
		return apperrors.New(http.StatusBadRequest, err.Error())
	case errors.Is(err, whatsapp.ErrSettingsNotFound):
		return apperrors.ErrWhatsAppSettingsNotFound
	}

	// Mensagens do validador e de parsing de IDs chegam como erro formatado
	if strings.HasPrefix(err.Error(), "validation failed") ||
		strings.HasPrefix(err.Error(), "invalid contact id") {
		return apperrors.New(http.StatusBadRequest, err.Error())
	}

	return err
}
