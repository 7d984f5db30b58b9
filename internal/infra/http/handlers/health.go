package handlers

import (
	"net/http"

	"buscacliente/internal/app/common"
	"buscacliente/platform/database"
	"buscacliente/platform/logger"
)

// HealthHandler implementa o health check da aplicação
type HealthHandler struct {
	db      *database.Database
	logger  *logger.Logger
	version string
}

// NewHealthHandler cria nova instância do handler de health check
func NewHealthHandler(db *database.Database, log *logger.Logger, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		logger:  log.WithModule("http.health"),
		version: version,
	}
}

// Health retorna a saúde do serviço e do banco de dados
// @Summary Health check
// @Description Service and database health
// @Tags Health
// @Produce json
// @Success 200 {object} common.HealthResponse
// @Failure 503 {object} common.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	check := h.db.PerformHealthCheck(r.Context())

	response := &common.HealthResponse{
		Status:   "ok",
		Service:  "buscacliente",
		Version:  h.version,
		Database: check.Status,
	}

	status := http.StatusOK
	if check.Status != "healthy" {
		response.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, response)
}
