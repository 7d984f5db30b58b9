package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"buscacliente/internal/domain/contact"
	apperrors "buscacliente/pkg/errors"
)

// ContactRepository implementa contact.Repository para PostgreSQL
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository cria uma nova instância do repositório de contatos
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// contactModel representa o modelo de dados para PostgreSQL
type contactModel struct {
	ID           string         `db:"id"`
	UserID       string         `db:"userId"`
	CompanyName  string         `db:"companyName"`
	FantasyName  sql.NullString `db:"fantasyName"`
	Category     string         `db:"category"`
	Street       string         `db:"street"`
	Number       string         `db:"number"`
	Complement   string         `db:"complement"`
	Neighborhood string         `db:"neighborhood"`
	City         string         `db:"city"`
	State        string         `db:"state"`
	ZipCode      string         `db:"zipCode"`
	Phone        sql.NullString `db:"phone"`
	Email        sql.NullString `db:"email"`
	Website      sql.NullString `db:"website"`
	Status       string         `db:"status"`
	CreatedAt    time.Time      `db:"createdAt"`
	UpdatedAt    time.Time      `db:"updatedAt"`
}

// Create insere um novo contato
func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	model := r.toModel(c)

	query := `
		INSERT INTO "bcContacts" (
			id, "userId", "companyName", "fantasyName", category,
			street, number, complement, neighborhood, city, state, "zipCode",
			phone, email, website, status, "createdAt", "updatedAt"
		) VALUES (
			:id, :userId, :companyName, :fantasyName, :category,
			:street, :number, :complement, :neighborhood, :city, :state, :zipCode,
			:phone, :email, :website, :status, :createdAt, :updatedAt
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return apperrors.Wrap(err, "failed to create contact")
	}

	return nil
}

// GetByID busca um contato do usuário pelo ID. Contatos de outros usuários
// são tratados como inexistentes.
func (r *ContactRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*contact.Contact, error) {
	var model contactModel
	query := `SELECT * FROM "bcContacts" WHERE id = $1 AND "userId" = $2`

	err := r.db.GetContext(ctx, &model, query, id.String(), userID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, contact.ErrContactNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get contact by ID")
	}

	return r.fromModel(&model)
}

// Update atualiza um contato existente
func (r *ContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	model := r.toModel(c)

	query := `
		UPDATE "bcContacts" SET
			"companyName" = :companyName,
			"fantasyName" = :fantasyName,
			category = :category,
			street = :street,
			number = :number,
			complement = :complement,
			neighborhood = :neighborhood,
			city = :city,
			state = :state,
			"zipCode" = :zipCode,
			phone = :phone,
			email = :email,
			website = :website,
			status = :status,
			"updatedAt" = :updatedAt
		WHERE id = :id AND "userId" = :userId
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return apperrors.Wrap(err, "failed to update contact")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}

	if rowsAffected == 0 {
		return contact.ErrContactNotFound
	}

	return nil
}

// Delete remove fisicamente um contato do usuário
func (r *ContactRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM "bcContacts" WHERE id = $1 AND "userId" = $2`

	result, err := r.db.ExecContext(ctx, query, id.String(), userID.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to delete contact")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}

	if rowsAffected == 0 {
		return contact.ErrContactNotFound
	}

	return nil
}

// DeleteMany remove o conjunto de contatos informado; IDs ausentes ou de
// outro usuário são ignorados, a operação é idempotente
func (r *ContactRepository) DeleteMany(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}

	query := `DELETE FROM "bcContacts" WHERE id = ANY($1) AND "userId" = $2`
	if _, err := r.db.ExecContext(ctx, query, pq.Array(raw), userID.String()); err != nil {
		return apperrors.Wrap(err, "failed to delete contacts")
	}

	return nil
}

// List retorna uma página de contatos filtrada junto com o total de registros
// que satisfazem os filtros, ordenada por criação decrescente
func (r *ContactRepository) List(ctx context.Context, userID uuid.UUID, filters contact.Filters, pagination contact.Pagination) ([]*contact.Contact, int, error) {
	where, args := r.buildWhere(userID, filters)

	countQuery := `SELECT COUNT(*) FROM "bcContacts" ` + where
	var count int
	if err := r.db.GetContext(ctx, &count, countQuery, args...); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count contacts")
	}

	listQuery := fmt.Sprintf(
		`SELECT * FROM "bcContacts" %s ORDER BY "createdAt" DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	args = append(args, pagination.PageSize, pagination.Offset())

	var models []contactModel
	if err := r.db.SelectContext(ctx, &models, listQuery, args...); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list contacts")
	}

	contacts := make([]*contact.Contact, 0, len(models))
	for i := range models {
		c, err := r.fromModel(&models[i])
		if err != nil {
			return nil, 0, err
		}
		contacts = append(contacts, c)
	}

	return contacts, count, nil
}

// buildWhere monta a cláusula WHERE a partir dos filtros opcionais
func (r *ContactRepository) buildWhere(userID uuid.UUID, filters contact.Filters) (string, []interface{}) {
	clauses := []string{`"userId" = $1`}
	args := []interface{}{userID.String()}

	if filters.Status != "" {
		args = append(args, filters.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}

	if filters.Category != "" {
		args = append(args, filters.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}

	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		clauses = append(clauses, fmt.Sprintf(
			`("companyName" ILIKE $%d OR "fantasyName" ILIKE $%d)`,
			len(args), len(args),
		))
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

// ===== AGREGAÇÕES DO DASHBOARD =====

// CountContacts retorna o total de contatos do usuário
func (r *ContactRepository) CountContacts(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM "bcContacts" WHERE "userId" = $1`

	if err := r.db.GetContext(ctx, &count, query, userID.String()); err != nil {
		return 0, apperrors.Wrap(err, "failed to count contacts")
	}

	return count, nil
}

// CountContactsByStatus retorna o total de contatos do usuário com o status dado
func (r *ContactRepository) CountContactsByStatus(ctx context.Context, userID uuid.UUID, status string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM "bcContacts" WHERE "userId" = $1 AND status = $2`

	if err := r.db.GetContext(ctx, &count, query, userID.String(), status); err != nil {
		return 0, apperrors.Wrap(err, "failed to count contacts by status")
	}

	return count, nil
}

// ListCategories retorna a projeção de categorias de todos os contatos do
// usuário; a contagem por categoria é consolidada pelo chamador
func (r *ContactRepository) ListCategories(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var categories []string
	query := `SELECT category FROM "bcContacts" WHERE "userId" = $1`

	if err := r.db.SelectContext(ctx, &categories, query, userID.String()); err != nil {
		return nil, apperrors.Wrap(err, "failed to list contact categories")
	}

	return categories, nil
}

// ===== CONVERSÕES =====

// toModel converte a entidade de domínio para o modelo de persistência
func (r *ContactRepository) toModel(c *contact.Contact) *contactModel {
	return &contactModel{
		ID:           c.ID.String(),
		UserID:       c.UserID.String(),
		CompanyName:  c.CompanyName,
		FantasyName:  toNullString(c.FantasyName),
		Category:     c.Category,
		Street:       c.Address.Street,
		Number:       c.Address.Number,
		Complement:   c.Address.Complement,
		Neighborhood: c.Address.Neighborhood,
		City:         c.Address.City,
		State:        c.Address.State,
		ZipCode:      c.Address.ZipCode,
		Phone:        toNullString(c.Phone),
		Email:        toNullString(c.Email),
		Website:      toNullString(c.Website),
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// fromModel converte o modelo de persistência para a entidade de domínio
func (r *ContactRepository) fromModel(model *contactModel) (*contact.Contact, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid contact id in database: %w", err)
	}

	userID, err := uuid.Parse(model.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in database: %w", err)
	}

	return &contact.Contact{
		ID:          id,
		UserID:      userID,
		CompanyName: model.CompanyName,
		FantasyName: model.FantasyName.String,
		Category:    model.Category,
		Address: contact.Address{
			Street:       model.Street,
			Number:       model.Number,
			Complement:   model.Complement,
			Neighborhood: model.Neighborhood,
			City:         model.City,
			State:        model.State,
			ZipCode:      model.ZipCode,
		},
		Phone:     model.Phone.String,
		Email:     model.Email.String,
		Website:   model.Website.String,
		Status:    model.Status,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

// toNullString converte string vazia em NULL
func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
