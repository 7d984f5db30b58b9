package whatsapp

import (
	"context"

	"buscacliente/internal/app/shared/validation"
	"buscacliente/internal/domain/whatsapp"
	"buscacliente/platform/logger"
)

// ConnectRequest corpo da requisição de conexão; ambos os campos são
// obrigatórios e a ausência de qualquer um resulta em 400 sem escrita
type ConnectRequest struct {
	Token       string `json:"token" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
} // @name ConnectRequest

// QRResponse QR code de pareamento em PNG base64
type QRResponse struct {
	QRCode string `json:"qr_code"`
} // @name QRResponse

// UseCase operações da integração (stub) com o WhatsApp
type UseCase interface {
	Connect(ctx context.Context, req *ConnectRequest) (*whatsapp.ConnectionStatus, error)
	Disconnect(ctx context.Context) (*whatsapp.ConnectionStatus, error)
	Status(ctx context.Context) (*whatsapp.ConnectionStatus, error)
	PairingQR(ctx context.Context) (*QRResponse, error)
}

type useCaseImpl struct {
	provider  whatsapp.Provider
	validator *validation.Validator
	logger    *logger.Logger
}

// NewUseCase cria um novo use case sobre o provider de mensageria
func NewUseCase(provider whatsapp.Provider, validator *validation.Validator, log *logger.Logger) UseCase {
	return &useCaseImpl{
		provider:  provider,
		validator: validator,
		logger:    log.WithModule("whatsapp"),
	}
}

// Connect valida as credenciais e grava o status de conexão via provider
func (uc *useCaseImpl) Connect(ctx context.Context, req *ConnectRequest) (*whatsapp.ConnectionStatus, error) {
	if err := uc.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	status, err := uc.provider.Connect(ctx, req.Token, req.PhoneNumber)
	if err != nil {
		uc.logger.ErrorWithFields("Failed to connect WhatsApp", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	uc.logger.InfoWithFields("WhatsApp connection status stored", map[string]interface{}{
		"status": status.Status,
	})

	return status, nil
}

// Disconnect grava o status desconectado via provider
func (uc *useCaseImpl) Disconnect(ctx context.Context) (*whatsapp.ConnectionStatus, error) {
	status, err := uc.provider.Disconnect(ctx)
	if err != nil {
		uc.logger.ErrorWithFields("Failed to disconnect WhatsApp", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	return status, nil
}

// Status lê o status de conexão armazenado
func (uc *useCaseImpl) Status(ctx context.Context) (*whatsapp.ConnectionStatus, error) {
	status, err := uc.provider.Status(ctx)
	if err != nil {
		uc.logger.ErrorWithFields("Failed to read WhatsApp status", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	return status, nil
}

// PairingQR gera o QR code de pareamento do token armazenado
func (uc *useCaseImpl) PairingQR(ctx context.Context) (*QRResponse, error) {
	qr, err := uc.provider.PairingQR(ctx)
	if err != nil {
		return nil, err
	}

	return &QRResponse{QRCode: qr}, nil
}
