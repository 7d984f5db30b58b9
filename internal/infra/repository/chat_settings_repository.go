package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"buscacliente/internal/domain/whatsapp"
)

// ChatSettingsRepository implementa whatsapp.SettingsRepository para
// PostgreSQL. As operações trabalham sobre "a" linha de configuração,
// sem chave de tenant; comportamento observado do sistema original.
type ChatSettingsRepository struct {
	db *sqlx.DB
}

// NewChatSettingsRepository cria uma nova instância do repositório
func NewChatSettingsRepository(db *sqlx.DB) *ChatSettingsRepository {
	return &ChatSettingsRepository{db: db}
}

// chatSettingsModel representa o modelo de dados para PostgreSQL.
// O status de conexão viaja como texto JSON; lib/pq enviaria []byte como
// bytea, que o Postgres não converte para jsonb.
type chatSettingsModel struct {
	ID               string         `db:"id"`
	UserID           sql.NullString `db:"userId"`
	WhatsappToken    string         `db:"whatsappToken"`
	WhatsappNumber   string         `db:"whatsappNumber"`
	ConnectionStatus sql.NullString `db:"connectionStatus"`
	CreatedAt        time.Time      `db:"createdAt"`
	UpdatedAt        time.Time      `db:"updatedAt"`
}

// Get retorna a linha de configurações mais recente
func (r *ChatSettingsRepository) Get(ctx context.Context) (*whatsapp.Settings, error) {
	var model chatSettingsModel
	query := `SELECT * FROM "bcChatSettings" ORDER BY "updatedAt" DESC LIMIT 1`

	err := r.db.GetContext(ctx, &model, query)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, whatsapp.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get chat settings: %w", err)
	}

	return r.fromModel(&model)
}

// Save insere ou atualiza a linha de configurações
func (r *ChatSettingsRepository) Save(ctx context.Context, settings *whatsapp.Settings) error {
	model, err := r.toModel(settings)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO "bcChatSettings" (
			id, "userId", "whatsappToken", "whatsappNumber",
			"connectionStatus", "createdAt", "updatedAt"
		) VALUES (
			:id, :userId, :whatsappToken, :whatsappNumber,
			:connectionStatus, :createdAt, :updatedAt
		)
		ON CONFLICT (id) DO UPDATE SET
			"whatsappToken" = EXCLUDED."whatsappToken",
			"whatsappNumber" = EXCLUDED."whatsappNumber",
			"connectionStatus" = EXCLUDED."connectionStatus",
			"updatedAt" = EXCLUDED."updatedAt"
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to save chat settings: %w", err)
	}

	return nil
}

// toModel converte a entidade de domínio para o modelo de persistência
func (r *ChatSettingsRepository) toModel(settings *whatsapp.Settings) (*chatSettingsModel, error) {
	model := &chatSettingsModel{
		ID:             settings.ID.String(),
		WhatsappToken:  settings.WhatsappToken,
		WhatsappNumber: settings.WhatsappNumber,
		CreatedAt:      settings.CreatedAt,
		UpdatedAt:      settings.UpdatedAt,
	}

	if settings.UserID != nil {
		model.UserID = sql.NullString{String: settings.UserID.String(), Valid: true}
	}

	if settings.ConnectionStatus != nil {
		raw, err := json.Marshal(settings.ConnectionStatus)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal connection status: %w", err)
		}
		model.ConnectionStatus = sql.NullString{String: string(raw), Valid: true}
	}

	return model, nil
}

// fromModel converte o modelo de persistência para a entidade de domínio
func (r *ChatSettingsRepository) fromModel(model *chatSettingsModel) (*whatsapp.Settings, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid chat settings id in database: %w", err)
	}

	settings := &whatsapp.Settings{
		ID:             id,
		WhatsappToken:  model.WhatsappToken,
		WhatsappNumber: model.WhatsappNumber,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}

	if model.UserID.Valid {
		userID, err := uuid.Parse(model.UserID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid user id in chat settings: %w", err)
		}
		settings.UserID = &userID
	}

	if model.ConnectionStatus.Valid && model.ConnectionStatus.String != "" {
		var status whatsapp.ConnectionStatus
		if err := json.Unmarshal([]byte(model.ConnectionStatus.String), &status); err != nil {
			return nil, fmt.Errorf("failed to unmarshal connection status: %w", err)
		}
		settings.ConnectionStatus = &status
	}

	return settings, nil
}
