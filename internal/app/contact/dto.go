package contact

import (
	"buscacliente/internal/domain/contact"
)

// AddressRequest endereço estruturado recebido nas requisições
type AddressRequest struct {
	Street       string `json:"street" validate:"max=255"`
	Number       string `json:"number" validate:"max=20"`
	Complement   string `json:"complement,omitempty" validate:"max=255"`
	Neighborhood string `json:"neighborhood" validate:"max=255"`
	City         string `json:"city" validate:"max=255"`
	State        string `json:"state" validate:"omitempty,uf"`
	ZipCode      string `json:"zip_code" validate:"omitempty,cep"`
}

func (a *AddressRequest) toDomain() contact.Address {
	return contact.Address{
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
	}
}

// CreateContactRequest corpo de criação de contato
type CreateContactRequest struct {
	CompanyName string         `json:"company_name" validate:"required,max=255"`
	FantasyName string         `json:"fantasy_name,omitempty" validate:"max=255"`
	Category    string         `json:"category" validate:"required,max=100"`
	Address     AddressRequest `json:"address"`
	Phone       string         `json:"phone,omitempty" validate:"max=20"`
	Email       string         `json:"email,omitempty" validate:"omitempty,email"`
	Website     string         `json:"website,omitempty" validate:"omitempty,url"`
	Status      string         `json:"status" validate:"required,max=50"`
} // @name CreateContactRequest

// UpdateContactRequest corpo de alteração parcial; campos omitidos não mudam
type UpdateContactRequest struct {
	CompanyName *string         `json:"company_name,omitempty" validate:"omitempty,max=255"`
	FantasyName *string         `json:"fantasy_name,omitempty" validate:"omitempty,max=255"`
	Category    *string         `json:"category,omitempty" validate:"omitempty,max=100"`
	Address     *AddressRequest `json:"address,omitempty"`
	Phone       *string         `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email       *string         `json:"email,omitempty" validate:"omitempty,email"`
	Website     *string         `json:"website,omitempty" validate:"omitempty,url"`
	Status      *string         `json:"status,omitempty" validate:"omitempty,max=50"`
} // @name UpdateContactRequest

// DeleteManyRequest conjunto de IDs para exclusão em lote
type DeleteManyRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
} // @name DeleteManyRequest

// ListContactsRequest parâmetros de listagem extraídos da query string
type ListContactsRequest struct {
	Page     int
	PageSize int
	Status   string
	Category string
	Search   string
}

// Filters converte a requisição nos filtros de domínio
func (r *ListContactsRequest) Filters() contact.Filters {
	return contact.Filters{
		Status:   r.Status,
		Category: r.Category,
		Search:   r.Search,
	}
}

// Pagination converte a requisição na paginação de domínio
func (r *ListContactsRequest) Pagination() contact.Pagination {
	return contact.Pagination{
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

// ExportResponse resultado da exportação CSV
type ExportResponse struct {
	FileName string `json:"file_name"`
	Content  string `json:"-"`
	Rows     int    `json:"rows"`
}
