package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Erros de domínio para operações de perfil
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrEmailInUse      = errors.New("profile email already in use")
	ErrNameRequired    = errors.New("name is required")
	ErrEmailRequired   = errors.New("email is required")
)

// UserProfile perfil de usuário com dados de contato e preferências de
// notificação. Campos de notificação são ponteiros: nil significa que o
// usuário nunca definiu a preferência.
type UserProfile struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Company               string    `json:"company,omitempty"`
	Phone                 string    `json:"phone,omitempty"`
	CPF                   string    `json:"cpf,omitempty"`
	EmailNotifications    *bool     `json:"email_notifications,omitempty"`
	WhatsappNotifications *bool     `json:"whatsapp_notifications,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// Validate verifica os campos obrigatórios do perfil
func (p *UserProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(p.Email) == "" {
		return ErrEmailRequired
	}
	return nil
}

// Repository persistência de perfis de usuário
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserProfile, error)
	Create(ctx context.Context, profile *UserProfile) error
	Update(ctx context.Context, profile *UserProfile) error
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

// Update alteração parcial de um perfil; campos nil permanecem inalterados
type Update struct {
	Name                  *string
	Company               *string
	Phone                 *string
	CPF                   *string
	EmailNotifications    *bool
	WhatsappNotifications *bool
}

// Apply aplica a alteração parcial sobre o perfil
func (u *Update) Apply(p *UserProfile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Company != nil {
		p.Company = *u.Company
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.CPF != nil {
		p.CPF = *u.CPF
	}
	if u.EmailNotifications != nil {
		p.EmailNotifications = u.EmailNotifications
	}
	if u.WhatsappNotifications != nil {
		p.WhatsappNotifications = u.WhatsappNotifications
	}
}

// Service regras de negócio de perfis
type Service struct {
	repo Repository
}

// NewService cria um novo service de perfis
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByID busca o perfil de um usuário
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*UserProfile, error) {
	return s.repo.GetByID(ctx, id)
}

// Update aplica uma alteração parcial sobre o perfil do usuário
func (s *Service) Update(ctx context.Context, id uuid.UUID, update *Update) (*UserProfile, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(existing)
	if err := existing.Validate(); err != nil {
		return nil, err
	}
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}
