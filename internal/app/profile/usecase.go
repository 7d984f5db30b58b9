package profile

import (
	"context"

	"github.com/google/uuid"

	"buscacliente/internal/app/shared/validation"
	"buscacliente/internal/domain/profile"
	"buscacliente/platform/logger"
)

// UpdateProfileRequest alteração parcial do perfil; campos omitidos não mudam
type UpdateProfileRequest struct {
	Name                  *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Company               *string `json:"company,omitempty" validate:"omitempty,max=255"`
	Phone                 *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	CPF                   *string `json:"cpf,omitempty" validate:"omitempty,cpf"`
	EmailNotifications    *bool   `json:"email_notifications,omitempty"`
	WhatsappNotifications *bool   `json:"whatsapp_notifications,omitempty"`
} // @name UpdateProfileRequest

// UseCase operações de perfil de usuário
type UseCase interface {
	Get(ctx context.Context, userID uuid.UUID) (*profile.UserProfile, error)
	Update(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*profile.UserProfile, error)
}

type useCaseImpl struct {
	service   *profile.Service
	validator *validation.Validator
	logger    *logger.Logger
}

// NewUseCase cria um novo use case de perfis
func NewUseCase(service *profile.Service, validator *validation.Validator, log *logger.Logger) UseCase {
	return &useCaseImpl{
		service:   service,
		validator: validator,
		logger:    log.WithModule("profile"),
	}
}

// Get busca o perfil do usuário da sessão
func (uc *useCaseImpl) Get(ctx context.Context, userID uuid.UUID) (*profile.UserProfile, error) {
	return uc.service.GetByID(ctx, userID)
}

// Update aplica alteração parcial sobre o perfil do usuário
func (uc *useCaseImpl) Update(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*profile.UserProfile, error) {
	if err := uc.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	updated, err := uc.service.Update(ctx, userID, &profile.Update{
		Name:                  req.Name,
		Company:               req.Company,
		Phone:                 req.Phone,
		CPF:                   req.CPF,
		EmailNotifications:    req.EmailNotifications,
		WhatsappNotifications: req.WhatsappNotifications,
	})
	if err != nil {
		uc.logger.ErrorWithFields("Failed to update profile", map[string]interface{}{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	return updated, nil
}
