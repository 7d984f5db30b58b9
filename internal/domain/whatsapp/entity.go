package whatsapp

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Estados possíveis da conexão com o WhatsApp
const (
	StatusDisconnected = "disconnected"
	StatusConnecting   = "connecting"
	StatusConnected    = "connected"
	StatusError        = "error"
)

// Erros de domínio para a integração WhatsApp
var (
	ErrSettingsNotFound = errors.New("chat settings not found")
	ErrMissingToken     = errors.New("token is required")
	ErrMissingPhone     = errors.New("phone number is required")
	ErrNotPaired        = errors.New("no pairing token stored")
)

// ConnectionStatus estado da conexão persistido no campo JSON da tabela de
// configurações de chat
type ConnectionStatus struct {
	Status         string     `json:"status"`
	LastConnection *time.Time `json:"last_connection,omitempty"`
	Error          string     `json:"error,omitempty"`
	QRCode         string     `json:"qr_code,omitempty"`
}

// Disconnected status padrão quando nada foi persistido ainda
func Disconnected() *ConnectionStatus {
	return &ConnectionStatus{Status: StatusDisconnected}
}

// Settings linha de configuração de chat. As operações de leitura e escrita
// operam sobre "a" linha, sem chave de tenant nos caminhos de disconnect e
// status; comportamento observado do sistema original, mantido e sinalizado
// como questão de produto em aberto.
type Settings struct {
	ID               uuid.UUID         `json:"id"`
	UserID           *uuid.UUID        `json:"user_id,omitempty"`
	WhatsappToken    string            `json:"whatsapp_token"`
	WhatsappNumber   string            `json:"whatsapp_number"`
	ConnectionStatus *ConnectionStatus `json:"connection_status,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// SettingsRepository persistência da linha de configurações de chat
type SettingsRepository interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, settings *Settings) error
}

// Provider capacidade de integração com um provedor de mensageria.
// Hoje existe apenas a variante Stub; um provedor real pode ser adicionado
// sem alterar os chamadores.
type Provider interface {
	Connect(ctx context.Context, token, phoneNumber string) (*ConnectionStatus, error)
	Disconnect(ctx context.Context) (*ConnectionStatus, error)
	Status(ctx context.Context) (*ConnectionStatus, error)
	PairingQR(ctx context.Context) (string, error)
}
