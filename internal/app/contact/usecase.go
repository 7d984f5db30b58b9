package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"buscacliente/internal/app/shared/validation"
	"buscacliente/internal/domain/contact"
	"buscacliente/platform/logger"
)

// UseCase operações de contatos expostas aos handlers HTTP. Todas as
// operações recebem o usuário da sessão e atuam somente sobre os contatos
// dele.
type UseCase interface {
	List(ctx context.Context, userID uuid.UUID, req *ListContactsRequest) (*contact.Page, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*contact.Contact, error)
	Create(ctx context.Context, userID uuid.UUID, req *CreateContactRequest) (*contact.Contact, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *UpdateContactRequest) (*contact.Contact, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteMany(ctx context.Context, userID uuid.UUID, req *DeleteManyRequest) error
	ExportCSV(ctx context.Context, userID uuid.UUID, req *ListContactsRequest) (*ExportResponse, error)
}

type useCaseImpl struct {
	service   *contact.Service
	validator *validation.Validator
	logger    *logger.Logger
}

// NewUseCase cria um novo use case de contatos
func NewUseCase(service *contact.Service, validator *validation.Validator, log *logger.Logger) UseCase {
	return &useCaseImpl{
		service:   service,
		validator: validator,
		logger:    log.WithModule("contacts"),
	}
}

// List retorna uma página de contatos do usuário
func (uc *useCaseImpl) List(ctx context.Context, userID uuid.UUID, req *ListContactsRequest) (*contact.Page, error) {
	page, err := uc.service.List(ctx, userID, req.Filters(), req.Pagination())
	if err != nil {
		uc.logger.ErrorWithFields("Failed to list contacts", map[string]interface{}{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	return page, nil
}

// GetByID busca um contato do usuário pelo ID
func (uc *useCaseImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*contact.Contact, error) {
	return uc.service.GetByID(ctx, userID, id)
}

// Create valida e cria um novo contato
func (uc *useCaseImpl) Create(ctx context.Context, userID uuid.UUID, req *CreateContactRequest) (*contact.Contact, error) {
	if err := uc.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	created, err := uc.service.Create(ctx, &contact.Contact{
		UserID:      userID,
		CompanyName: req.CompanyName,
		FantasyName: req.FantasyName,
		Category:    req.Category,
		Address:     req.Address.toDomain(),
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Status:      req.Status,
	})
	if err != nil {
		uc.logger.ErrorWithFields("Failed to create contact", map[string]interface{}{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	uc.logger.InfoWithFields("Contact created", map[string]interface{}{
		"contact_id": created.ID.String(),
		"user_id":    userID.String(),
	})

	return created, nil
}

// Update aplica uma alteração parcial sobre um contato do usuário
func (uc *useCaseImpl) Update(ctx context.Context, userID, id uuid.UUID, req *UpdateContactRequest) (*contact.Contact, error) {
	if err := uc.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	update := &contact.Update{
		CompanyName: req.CompanyName,
		FantasyName: req.FantasyName,
		Category:    req.Category,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Status:      req.Status,
	}
	if req.Address != nil {
		address := req.Address.toDomain()
		update.Address = &address
	}

	updated, err := uc.service.Update(ctx, userID, id, update)
	if err != nil {
		uc.logger.ErrorWithFields("Failed to update contact", map[string]interface{}{
			"contact_id": id.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	return updated, nil
}

// Delete remove um contato do usuário
func (uc *useCaseImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := uc.service.Delete(ctx, userID, id); err != nil {
		uc.logger.ErrorWithFields("Failed to delete contact", map[string]interface{}{
			"contact_id": id.String(),
			"error":      err.Error(),
		})
		return err
	}

	return nil
}

// DeleteMany remove o conjunto de contatos do usuário informado
func (uc *useCaseImpl) DeleteMany(ctx context.Context, userID uuid.UUID, req *DeleteManyRequest) error {
	if err := uc.validator.ValidateStruct(req); err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid contact id %q: %w", raw, err)
		}
		ids = append(ids, id)
	}

	if err := uc.service.DeleteMany(ctx, userID, ids); err != nil {
		uc.logger.ErrorWithFields("Failed to delete contacts", map[string]interface{}{
			"count": len(ids),
			"error": err.Error(),
		})
		return err
	}

	uc.logger.InfoWithFields("Contacts deleted", map[string]interface{}{
		"count": len(ids),
	})

	return nil
}

// ExportCSV exporta todos os contatos filtrados como CSV
func (uc *useCaseImpl) ExportCSV(ctx context.Context, userID uuid.UUID, req *ListContactsRequest) (*ExportResponse, error) {
	contacts, err := uc.service.ListAll(ctx, userID, req.Filters())
	if err != nil {
		uc.logger.ErrorWithFields("Failed to export contacts", map[string]interface{}{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	return &ExportResponse{
		FileName: fmt.Sprintf("contatos_%s.csv", time.Now().Format("2006-01-02")),
		Content:  contact.ToCSV(contacts),
		Rows:     len(contacts),
	}, nil
}
