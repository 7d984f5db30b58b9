package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"buscacliente/internal/domain/profile"
)

// ProfileRepository implementa profile.Repository para PostgreSQL
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository cria uma nova instância do repositório de perfis
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// profileModel representa o modelo de dados para PostgreSQL
type profileModel struct {
	ID                    string         `db:"id"`
	Name                  string         `db:"name"`
	Email                 string         `db:"email"`
	Company               sql.NullString `db:"company"`
	Phone                 sql.NullString `db:"phone"`
	CPF                   sql.NullString `db:"cpf"`
	EmailNotifications    sql.NullBool   `db:"emailNotifications"`
	WhatsappNotifications sql.NullBool   `db:"whatsappNotifications"`
	CreatedAt             time.Time      `db:"createdAt"`
	UpdatedAt             time.Time      `db:"updatedAt"`
}

// GetByID busca um perfil pelo ID do usuário
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*profile.UserProfile, error) {
	var model profileModel
	query := `SELECT * FROM "bcProfiles" WHERE id = $1`

	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by ID: %w", err)
	}

	return r.fromModel(&model)
}

// Create insere um novo perfil
func (r *ProfileRepository) Create(ctx context.Context, p *profile.UserProfile) error {
	model := r.toModel(p)

	query := `
		INSERT INTO "bcProfiles" (
			id, name, email, company, phone, cpf,
			"emailNotifications", "whatsappNotifications", "createdAt", "updatedAt"
		) VALUES (
			:id, :name, :email, :company, :phone, :cpf,
			:emailNotifications, :whatsappNotifications, :createdAt, :updatedAt
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return profile.ErrEmailInUse
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// Update atualiza um perfil existente
func (r *ProfileRepository) Update(ctx context.Context, p *profile.UserProfile) error {
	model := r.toModel(p)

	query := `
		UPDATE "bcProfiles" SET
			name = :name,
			company = :company,
			phone = :phone,
			cpf = :cpf,
			"emailNotifications" = :emailNotifications,
			"whatsappNotifications" = :whatsappNotifications,
			"updatedAt" = :updatedAt
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return profile.ErrProfileNotFound
	}

	return nil
}

// ListIDs retorna os IDs de todos os perfis existentes
func (r *ProfileRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var raw []string
	query := `SELECT id FROM "bcProfiles"`

	if err := r.db.SelectContext(ctx, &raw, query); err != nil {
		return nil, fmt.Errorf("failed to list profile ids: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("invalid profile id in database: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// toModel converte a entidade de domínio para o modelo de persistência
func (r *ProfileRepository) toModel(p *profile.UserProfile) *profileModel {
	return &profileModel{
		ID:                    p.ID.String(),
		Name:                  p.Name,
		Email:                 p.Email,
		Company:               toNullString(p.Company),
		Phone:                 toNullString(p.Phone),
		CPF:                   toNullString(p.CPF),
		EmailNotifications:    toNullBool(p.EmailNotifications),
		WhatsappNotifications: toNullBool(p.WhatsappNotifications),
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

// fromModel converte o modelo de persistência para a entidade de domínio
func (r *ProfileRepository) fromModel(model *profileModel) (*profile.UserProfile, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid profile id in database: %w", err)
	}

	return &profile.UserProfile{
		ID:                    id,
		Name:                  model.Name,
		Email:                 model.Email,
		Company:               model.Company.String,
		Phone:                 model.Phone.String,
		CPF:                   model.CPF.String,
		EmailNotifications:    fromNullBool(model.EmailNotifications),
		WhatsappNotifications: fromNullBool(model.WhatsappNotifications),
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
	}, nil
}

// toNullBool converte *bool em NullBool; nil significa preferência indefinida
func toNullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

// fromNullBool converte NullBool de volta em *bool
func fromNullBool(b sql.NullBool) *bool {
	if !b.Valid {
		return nil
	}
	value := b.Bool
	return &value
}
