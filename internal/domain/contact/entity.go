package contact

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Valores observados de status de contato
const (
	StatusActive   = "Ativo"
	StatusInactive = "Inativo"
)

// Erros de domínio para operações de contatos
var (
	ErrContactNotFound     = errors.New("contact not found")
	ErrCompanyNameRequired = errors.New("company name is required")
	ErrCategoryRequired    = errors.New("category is required")
	ErrStatusRequired      = errors.New("status is required")
)

// Address endereço estruturado de um contato
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

// Contact registro de empresa com endereço e status
type Contact struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CompanyName string    `json:"company_name"`
	FantasyName string    `json:"fantasy_name,omitempty"`
	Category    string    `json:"category"`
	Address     Address   `json:"address"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Website     string    `json:"website,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate verifica os campos obrigatórios do contato
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.CompanyName) == "" {
		return ErrCompanyNameRequired
	}
	if strings.TrimSpace(c.Category) == "" {
		return ErrCategoryRequired
	}
	if strings.TrimSpace(c.Status) == "" {
		return ErrStatusRequired
	}
	return nil
}

// Filters filtros opcionais de listagem; valor vazio significa "sem filtro"
type Filters struct {
	Status   string
	Category string
	Search   string
}

// Matches verifica se um contato satisfaz todos os filtros fornecidos
func (f Filters) Matches(c *Contact) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Category != "" && c.Category != f.Category {
		return false
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.CompanyName), search) &&
			!strings.Contains(strings.ToLower(c.FantasyName), search) {
			return false
		}
	}
	return true
}

// DefaultPageSize tamanho de página padrão das listagens
const DefaultPageSize = 10

// Pagination parâmetros de paginação com página iniciando em 1
type Pagination struct {
	Page     int
	PageSize int
}

// Normalize aplica valores padrão para parâmetros ausentes ou inválidos
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Offset retorna o deslocamento correspondente à página
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page envelope de página: fatia de dados com total e metadados de paginação
type Page struct {
	Data        []*Contact `json:"data"`
	Count       int        `json:"count"`
	TotalPages  int        `json:"total_pages"`
	CurrentPage int        `json:"current_page"`
}

// TotalPages calcula ceil(count/pageSize); zero quando não há registros
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize < 1 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Update alteração parcial de um contato; campos nil permanecem inalterados
type Update struct {
	CompanyName *string
	FantasyName *string
	Category    *string
	Address     *Address
	Phone       *string
	Email       *string
	Website     *string
	Status      *string
}

// Apply aplica a alteração parcial sobre o contato
func (u *Update) Apply(c *Contact) {
	if u.CompanyName != nil {
		c.CompanyName = *u.CompanyName
	}
	if u.FantasyName != nil {
		c.FantasyName = *u.FantasyName
	}
	if u.Category != nil {
		c.Category = *u.Category
	}
	if u.Address != nil {
		c.Address = *u.Address
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Website != nil {
		c.Website = *u.Website
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
}
