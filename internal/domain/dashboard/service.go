package dashboard

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"buscacliente/internal/domain/contact"
	"buscacliente/platform/logger"
)

// Stats estatísticas resumidas de contatos para o dashboard
type Stats struct {
	TotalContacts      int            `json:"total_contacts"`
	ActiveContacts     int            `json:"active_contacts"`
	InactiveContacts   int            `json:"inactive_contacts"`
	ContactsByCategory map[string]int `json:"contacts_by_category"`
}

// Repository leituras agregadas sobre a tabela de contatos
type Repository interface {
	CountContacts(ctx context.Context, userID uuid.UUID) (int, error)
	CountContactsByStatus(ctx context.Context, userID uuid.UUID, status string) (int, error)
	ListCategories(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// Service agregador de estatísticas do dashboard
type Service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService cria um novo agregador de estatísticas
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: log.WithModule("dashboard"),
	}
}

// GetStats calcula as estatísticas em quatro leituras independentes.
// Qualquer falha resulta em estatísticas zeradas em vez de erro propagado;
// o dashboard é apenas informativo.
func (s *Service) GetStats(ctx context.Context, userID uuid.UUID) *Stats {
	total, err := s.repo.CountContacts(ctx, userID)
	if err != nil {
		return s.zeroStats(err)
	}

	active, err := s.repo.CountContactsByStatus(ctx, userID, contact.StatusActive)
	if err != nil {
		return s.zeroStats(err)
	}

	inactive, err := s.repo.CountContactsByStatus(ctx, userID, contact.StatusInactive)
	if err != nil {
		return s.zeroStats(err)
	}

	categories, err := s.repo.ListCategories(ctx, userID)
	if err != nil {
		return s.zeroStats(err)
	}

	// cases.Caser carrega estado interno e não pode ser compartilhado entre
	// requisições concorrentes
	titler := cases.Title(language.BrazilianPortuguese)

	byCategory := make(map[string]int)
	for _, category := range categories {
		byCategory[titler.String(category)]++
	}

	return &Stats{
		TotalContacts:      total,
		ActiveContacts:     active,
		InactiveContacts:   inactive,
		ContactsByCategory: byCategory,
	}
}

// zeroStats registra a falha e retorna estatísticas zeradas
func (s *Service) zeroStats(err error) *Stats {
	s.logger.ErrorWithFields("Failed to aggregate dashboard stats, returning zeroed stats", map[string]interface{}{
		"error": err.Error(),
	})

	return &Stats{
		ContactsByCategory: make(map[string]int),
	}
}
