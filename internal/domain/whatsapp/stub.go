package whatsapp

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// StubProvider simula a integração com o WhatsApp gravando e lendo apenas o
// campo de status de conexão. Nenhuma chamada a um provedor real é feita;
// placeholder até a integração de verdade existir.
type StubProvider struct {
	settings SettingsRepository
}

// NewStubProvider cria o provider stub sobre o repositório de configurações
func NewStubProvider(settings SettingsRepository) *StubProvider {
	return &StubProvider{settings: settings}
}

// Connect valida os campos obrigatórios e grava o status "connected" sem
// verificação real junto ao provedor
func (p *StubProvider) Connect(ctx context.Context, token, phoneNumber string) (*ConnectionStatus, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if phoneNumber == "" {
		return nil, ErrMissingPhone
	}

	settings, err := p.settings.Get(ctx)
	if err != nil {
		if !errors.Is(err, ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to load chat settings: %w", err)
		}
		settings = &Settings{ID: uuid.New(), CreatedAt: time.Now()}
	}

	now := time.Now()
	status := &ConnectionStatus{
		Status:         StatusConnected,
		LastConnection: &now,
	}

	settings.WhatsappToken = token
	settings.WhatsappNumber = phoneNumber
	settings.ConnectionStatus = status
	settings.UpdatedAt = now

	if err := p.settings.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save chat settings: %w", err)
	}

	return status, nil
}

// Disconnect grava o status "disconnected" incondicionalmente
func (p *StubProvider) Disconnect(ctx context.Context) (*ConnectionStatus, error) {
	settings, err := p.settings.Get(ctx)
	if err != nil {
		if !errors.Is(err, ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to load chat settings: %w", err)
		}
		settings = &Settings{ID: uuid.New(), CreatedAt: time.Now()}
	}

	now := time.Now()
	status := &ConnectionStatus{
		Status:         StatusDisconnected,
		LastConnection: &now,
	}

	settings.ConnectionStatus = status
	settings.UpdatedAt = now

	if err := p.settings.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save chat settings: %w", err)
	}

	return status, nil
}

// Status lê o status armazenado, com "disconnected" como padrão
func (p *StubProvider) Status(ctx context.Context) (*ConnectionStatus, error) {
	settings, err := p.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			return Disconnected(), nil
		}
		return nil, fmt.Errorf("failed to load chat settings: %w", err)
	}

	if settings.ConnectionStatus == nil {
		return Disconnected(), nil
	}

	return settings.ConnectionStatus, nil
}

// PairingQR gera localmente um QR code PNG em base64 a partir do token de
// pareamento armazenado
func (p *StubProvider) PairingQR(ctx context.Context) (string, error) {
	settings, err := p.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			return "", ErrNotPaired
		}
		return "", fmt.Errorf("failed to load chat settings: %w", err)
	}

	if settings.WhatsappToken == "" {
		return "", ErrNotPaired
	}

	png, err := qrcode.Encode(settings.WhatsappToken, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to encode pairing QR code: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
