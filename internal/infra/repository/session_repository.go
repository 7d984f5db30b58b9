package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"buscacliente/internal/domain/auth"
)

// SessionRepository implementa auth.Store para PostgreSQL. As sessões são
// emitidas pelo provedor de autenticação externo; aqui apenas as consultamos.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository cria uma nova instância do repositório de sessões
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// sessionModel representa o modelo de dados para PostgreSQL
type sessionModel struct {
	Token     string    `db:"token"`
	UserID    string    `db:"userId"`
	ExpiresAt time.Time `db:"expiresAt"`
	CreatedAt time.Time `db:"createdAt"`
}

// GetSession busca uma sessão válida pelo token; sessões expiradas são
// tratadas como inexistentes
func (r *SessionRepository) GetSession(ctx context.Context, token string) (*auth.Session, error) {
	var model sessionModel
	query := `SELECT * FROM "bcSessions" WHERE token = $1`

	err := r.db.GetContext(ctx, &model, query, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, auth.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	userID, err := uuid.Parse(model.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in session: %w", err)
	}

	session := &auth.Session{
		Token:     model.Token,
		UserID:    userID,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
	}

	if session.IsExpired() {
		return nil, auth.ErrSessionExpired
	}

	return session, nil
}

// ListUserIDs retorna os IDs de usuário distintos com sessões registradas
func (r *SessionRepository) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	var raw []string
	query := `SELECT DISTINCT "userId" FROM "bcSessions"`

	if err := r.db.SelectContext(ctx, &raw, query); err != nil {
		return nil, fmt.Errorf("failed to list session user ids: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("invalid user id in session: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
