package dashboard

import (
	"context"

	"github.com/google/uuid"

	"buscacliente/internal/domain/dashboard"
)

// UseCase estatísticas do dashboard
type UseCase interface {
	GetStats(ctx context.Context, userID uuid.UUID) *dashboard.Stats
}

type useCaseImpl struct {
	service *dashboard.Service
}

// NewUseCase cria um novo use case do dashboard
func NewUseCase(service *dashboard.Service) UseCase {
	return &useCaseImpl{service: service}
}

// GetStats retorna as estatísticas agregadas; nunca falha, falhas viram
// estatísticas zeradas dentro do service
func (uc *useCaseImpl) GetStats(ctx context.Context, userID uuid.UUID) *dashboard.Stats {
	return uc.service.GetStats(ctx, userID)
}
