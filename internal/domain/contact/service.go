package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository persistência de contatos. Toda leitura e escrita é restrita
// ao dono: um contato de outro usuário é indistinguível de um inexistente.
type Repository interface {
	Create(ctx context.Context, contact *Contact) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*Contact, error)
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteMany(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filters Filters, pagination Pagination) ([]*Contact, int, error)
}

// Service regras de negócio de contatos sobre o repositório
type Service struct {
	repo Repository
}

// NewService cria um novo service de contatos
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List retorna uma página de contatos filtrada, ordenada por criação decrescente
func (s *Service) List(ctx context.Context, userID uuid.UUID, filters Filters, pagination Pagination) (*Page, error) {
	pagination = pagination.Normalize()

	data, count, err := s.repo.List(ctx, userID, filters, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return &Page{
		Data:        data,
		Count:       count,
		TotalPages:  TotalPages(count, pagination.PageSize),
		CurrentPage: pagination.Page,
	}, nil
}

// ListAll retorna todos os contatos que satisfazem os filtros, sem paginação.
// Usado pela exportação CSV.
func (s *Service) ListAll(ctx context.Context, userID uuid.UUID, filters Filters) ([]*Contact, error) {
	const exportBatchSize = 500

	var all []*Contact
	pagination := Pagination{Page: 1, PageSize: exportBatchSize}

	for {
		data, count, err := s.repo.List(ctx, userID, filters, pagination)
		if err != nil {
			return nil, fmt.Errorf("failed to list contacts for export: %w", err)
		}

		all = append(all, data...)
		if len(all) >= count || len(data) == 0 {
			return all, nil
		}
		pagination.Page++
	}
}

// GetByID busca um contato do usuário pelo ID
func (s *Service) GetByID(ctx context.Context, userID, id uuid.UUID) (*Contact, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// Create valida e persiste um novo contato
func (s *Service) Create(ctx context.Context, c *Contact) (*Contact, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return c, nil
}

// Update aplica uma alteração parcial sobre um contato existente do usuário
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, update *Update) (*Contact, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	update.Apply(existing)
	if err := existing.Validate(); err != nil {
		return nil, err
	}
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return existing, nil
}

// Delete remove fisicamente um contato do usuário
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// DeleteMany remove fisicamente o conjunto de contatos informado.
// IDs ausentes ou de outro usuário são ignorados; a operação é idempotente.
func (s *Service) DeleteMany(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.repo.DeleteMany(ctx, userID, ids); err != nil {
		return fmt.Errorf("failed to delete contacts: %w", err)
	}
	return nil
}
