package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	appcontact "buscacliente/internal/app/contact"
	"buscacliente/internal/domain/contact"
	"buscacliente/internal/infra/http/middleware"
	"buscacliente/platform/logger"
)

// ContactHandler implementa handlers REST para contatos
type ContactHandler struct {
	useCase appcontact.UseCase
	logger  *logger.Logger
}

// NewContactHandler cria nova instância do handler de contatos
func NewContactHandler(useCase appcontact.UseCase, log *logger.Logger) *ContactHandler {
	return &ContactHandler{
		useCase: useCase,
		logger:  log.WithModule("http.contacts"),
	}
}

// List lista contatos do usuário com filtros e paginação
// @Summary List contacts
// @Description List the user's contacts with optional filters and pagination
// @Tags Contacts
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Page size (default 10)"
// @Param status query string false "Filter by exact status"
// @Param category query string false "Filter by exact category"
// @Param search query string false "Substring match on company or fantasy name"
// @Success 200 {object} common.SuccessResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /api/contacts [get]
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	page, err := h.useCase.List(r.Context(), session.UserID, parseListRequest(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, page)
}

// GetByID busca um contato pelo ID
// @Summary Get contact
// @Description Get a single contact by ID
// @Tags Contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} common.SuccessResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /api/contacts/{id} [get]
func (h *ContactHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	found, err := h.useCase.GetByID(r.Context(), session.UserID, id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, found)
}

// Create cria um novo contato
// @Summary Create contact
// @Description Create a new contact for the authenticated user
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body contact.CreateContactRequest true "Contact data"
// @Success 201 {object} common.SuccessResponse
// @Failure 400 {object} common.ErrorResponse
// @Router /api/contacts [post]
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	var req appcontact.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	created, err := h.useCase.Create(r.Context(), session.UserID, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeCreated(w, created, "Contact created successfully")
}

// Update aplica alteração parcial sobre um contato
// @Summary Update contact
// @Description Partially update an existing contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body contact.UpdateContactRequest true "Fields to change"
// @Success 200 {object} common.SuccessResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /api/contacts/{id} [put]
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req appcontact.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	updated, err := h.useCase.Update(r.Context(), session.UserID, id, &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, updated, "Contact updated successfully")
}

// Delete remove um contato
// @Summary Delete contact
// @Description Physically delete a contact
// @Tags Contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} common.SuccessResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /api/contacts/{id} [delete]
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.useCase.Delete(r.Context(), session.UserID, id); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, nil, "Contact deleted successfully")
}

// DeleteMany remove o conjunto de contatos informado
// @Summary Delete contacts in bulk
// @Description Delete the given set of contacts; missing IDs are ignored
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body contact.DeleteManyRequest true "Contact IDs"
// @Success 200 {object} common.SuccessResponse
// @Failure 400 {object} common.ErrorResponse
// @Router /api/contacts/delete-many [post]
func (h *ContactHandler) DeleteMany(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	var req appcontact.DeleteManyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	if err := h.useCase.DeleteMany(r.Context(), session.UserID, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, nil, "Contacts deleted successfully")
}

// Export exporta os contatos filtrados como CSV
// @Summary Export contacts as CSV
// @Description Export all contacts matching the filters as a CSV download
// @Tags Contacts
// @Produce text/csv
// @Param status query string false "Filter by exact status"
// @Param category query string false "Filter by exact category"
// @Param search query string false "Substring match on company or fantasy name"
// @Success 200 {string} string "CSV content"
// @Failure 401 {object} common.ErrorResponse
// @Router /api/contacts/export [get]
func (h *ContactHandler) Export(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	export, err := h.useCase.ExportCSV(r.Context(), session.UserID, parseListRequest(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.InfoWithFields("Contacts exported", map[string]interface{}{
		"user_id": session.UserID.String(),
		"rows":    export.Rows,
	})

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.WriteHeader(http.StatusOK)

	// BOM na frente para o Excel reconhecer UTF-8
	_, _ = w.Write([]byte(contact.UTF8BOM))
	_, _ = w.Write([]byte(export.Content))
}

// parseListRequest extrai filtros e paginação da query string
func parseListRequest(r *http.Request) *appcontact.ListContactsRequest {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	return &appcontact.ListContactsRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   query.Get("status"),
		Category: query.Get("category"),
		Search:   query.Get("search"),
	}
}

// parseIDParam extrai e valida o parâmetro de rota {id}
func parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")

	id, err := uuid.Parse(raw)
	if err != nil {
		writeBadRequest(w, "Invalid contact ID")
		return uuid.Nil, false
	}

	return id, true
}
