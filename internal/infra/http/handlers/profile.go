package handlers

import (
	"encoding/json"
	"net/http"

	appprofile "buscacliente/internal/app/profile"
	"buscacliente/internal/infra/http/middleware"
	"buscacliente/platform/logger"
)

// ProfileHandler implementa handlers REST do perfil de usuário
type ProfileHandler struct {
	useCase appprofile.UseCase
	logger  *logger.Logger
}

// NewProfileHandler cria nova instância do handler de perfil
func NewProfileHandler(useCase appprofile.UseCase, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		useCase: useCase,
		logger:  log.WithModule("http.profile"),
	}
}

// Get retorna o perfil do usuário da sessão
// @Summary Get profile
// @Description Get the authenticated user's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} common.SuccessResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /api/profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	found, err := h.useCase.Get(r.Context(), session.UserID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, found)
}

// Update aplica alteração parcial sobre o perfil do usuário
// @Summary Update profile
// @Description Partially update the authenticated user's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body profile.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} common.SuccessResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /api/profile [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	var req appprofile.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	updated, err := h.useCase.Update(r.Context(), session.UserID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, updated, "Profile updated successfully")
}
