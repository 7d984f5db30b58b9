package handlers

import (
	"net/http"

	"github.com/lib/pq"

	"buscacliente/internal/domain/auth"
	"buscacliente/internal/domain/profile"
	"buscacliente/platform/database"
	"buscacliente/platform/logger"
)

// expectedTables tabelas que o schema da aplicação precisa conter
var expectedTables = []string{
	"bcContacts",
	"bcProfiles",
	"bcSessions",
	"bcChatSettings",
}

// DiagnosticsHandler implementa as sondas de diagnóstico do schema
type DiagnosticsHandler struct {
	db       *database.Database
	sessions auth.Store
	profiles profile.Repository
	logger   *logger.Logger
}

// NewDiagnosticsHandler cria nova instância do handler de diagnóstico
func NewDiagnosticsHandler(db *database.Database, sessions auth.Store, profiles profile.Repository, log *logger.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		db:       db,
		sessions: sessions,
		profiles: profiles,
		logger:   log.WithModule("http.diagnostics"),
	}
}

// TableStatus presença de uma tabela esperada
type TableStatus struct {
	Table  string `json:"table"`
	Exists bool   `json:"exists"`
} // @name TableStatus

// CheckTablesResponse resultado da sonda de tabelas
type CheckTablesResponse struct {
	Tables []TableStatus `json:"tables"`
	AllOK  bool          `json:"all_ok"`
} // @name CheckTablesResponse

// CheckTables verifica a presença das tabelas esperadas no schema
// @Summary Check database tables
// @Description Probe information_schema for the tables the application expects
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} common.SuccessResponse{data=CheckTablesResponse}
// @Failure 500 {object} common.ErrorResponse
// @Router /api/check-tables [get]
func (h *DiagnosticsHandler) CheckTables(w http.ResponseWriter, r *http.Request) {
	var present []string
	query := `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name = ANY($1)
	`

	if err := h.db.SelectContext(r.Context(), &present, query, pq.Array(expectedTables)); err != nil {
		writeError(w, h.logger, err)
		return
	}

	found := make(map[string]bool, len(present))
	for _, name := range present {
		found[name] = true
	}

	response := &CheckTablesResponse{AllOK: true}
	for _, table := range expectedTables {
		exists := found[table]
		if !exists {
			response.AllOK = false
		}
		response.Tables = append(response.Tables, TableStatus{Table: table, Exists: exists})
	}

	if !response.AllOK {
		h.logger.WarnWithFields("Expected tables missing", map[string]interface{}{
			"tables": response.Tables,
		})
	}

	writeSuccess(w, response)
}

// SyncProfilesResponse resultado da sonda de perfis
type SyncProfilesResponse struct {
	SessionUsers    int      `json:"session_users"`
	MissingProfiles []string `json:"missing_profiles"`
} // @name SyncProfilesResponse

// SyncProfiles reporta usuários com sessão mas sem perfil. Perfis não são
// criados aqui: email é obrigatório e único e só o fluxo de cadastro o conhece.
// @Summary Probe users missing a profile
// @Description Report session user IDs that have no matching profile row
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} common.SuccessResponse{data=SyncProfilesResponse}
// @Failure 500 {object} common.ErrorResponse
// @Router /api/sync-profiles [get]
func (h *DiagnosticsHandler) SyncProfiles(w http.ResponseWriter, r *http.Request) {
	userIDs, err := h.sessions.ListUserIDs(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	profileIDs, err := h.profiles.ListIDs(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	known := make(map[string]bool, len(profileIDs))
	for _, id := range profileIDs {
		known[id.String()] = true
	}

	response := &SyncProfilesResponse{
		SessionUsers:    len(userIDs),
		MissingProfiles: []string{},
	}
	for _, id := range userIDs {
		if !known[id.String()] {
			response.MissingProfiles = append(response.MissingProfiles, id.String())
		}
	}

	if len(response.MissingProfiles) > 0 {
		h.logger.WarnWithFields("Session users without profile", map[string]interface{}{
			"count": len(response.MissingProfiles),
		})
	}

	writeSuccess(w, response)
}
