package handlers

import (
	"net/http"

	appdashboard "buscacliente/internal/app/dashboard"
	"buscacliente/internal/infra/http/middleware"
	"buscacliente/platform/logger"
)

// DashboardHandler implementa handlers REST do dashboard
type DashboardHandler struct {
	useCase appdashboard.UseCase
	logger  *logger.Logger
}

// NewDashboardHandler cria nova instância do handler do dashboard
func NewDashboardHandler(useCase appdashboard.UseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		useCase: useCase,
		logger:  log.WithModule("http.dashboard"),
	}
}

// Stats retorna as estatísticas agregadas de contatos
// @Summary Dashboard statistics
// @Description Aggregated contact counts and category distribution. Failures degrade to zeroed stats.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} common.SuccessResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	stats := h.useCase.GetStats(r.Context(), session.UserID)
	writeSuccess(w, stats)
}
