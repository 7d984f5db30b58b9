package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Erros de domínio para resolução de sessões
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Session sessão autenticada emitida pelo provedor de autenticação externo.
// Este módulo apenas consome sessões; a emissão de tokens é responsabilidade
// do colaborador externo.
type Session struct {
	Token     string    `json:"-"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired verifica se a sessão já expirou
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store consulta de sessões emitidas pelo provedor externo
type Store interface {
	GetSession(ctx context.Context, token string) (*Session, error)
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}
