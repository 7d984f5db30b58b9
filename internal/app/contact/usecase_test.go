package contact

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"buscacliente/internal/app/shared/validation"
	"buscacliente/internal/domain/contact"
	"buscacliente/platform/logger"
)

// fakeRepository repositório em memória para testes do use case
type fakeRepository struct {
	contacts map[uuid.UUID]*contact.Contact
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{contacts: make(map[uuid.UUID]*contact.Contact)}
}

func (f *fakeRepository) Create(ctx context.Context, c *contact.Contact) error {
	clone := *c
	f.contacts[c.ID] = &clone
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*contact.Contact, error) {
	c, ok := f.contacts[id]
	if !ok || c.UserID != userID {
		return nil, contact.ErrContactNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeRepository) Update(ctx context.Context, c *contact.Contact) error {
	existing, ok := f.contacts[c.ID]
	if !ok || existing.UserID != c.UserID {
		return contact.ErrContactNotFound
	}
	clone := *c
	f.contacts[c.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	c, ok := f.contacts[id]
	if !ok || c.UserID != userID {
		return contact.ErrContactNotFound
	}
	delete(f.contacts, id)
	return nil
}

func (f *fakeRepository) DeleteMany(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	for _, id := range ids {
		if c, ok := f.contacts[id]; ok && c.UserID == userID {
			delete(f.contacts, id)
		}
	}
	return nil
}

func (f *fakeRepository) List(ctx context.Context, userID uuid.UUID, filters contact.Filters, pagination contact.Pagination) ([]*contact.Contact, int, error) {
	var matched []*contact.Contact
	for _, c := range f.contacts {
		if c.UserID == userID && filters.Matches(c) {
			matched = append(matched, c)
		}
	}

	count := len(matched)
	start := pagination.Offset()
	if start > count {
		start = count
	}
	end := start + pagination.PageSize
	if end > count {
		end = count
	}

	return matched[start:end], count, nil
}

func newTestUseCase(repo contact.Repository) UseCase {
	return NewUseCase(contact.NewService(repo), validation.New(), logger.New(logger.TestConfig()))
}

func TestUseCaseCreate(t *testing.T) {
	repo := newFakeRepository()
	useCase := newTestUseCase(repo)
	userID := uuid.New()

	created, err := useCase.Create(context.Background(), userID, &CreateContactRequest{
		CompanyName: "Acme Ltda",
		Category:    "Tecnologia",
		Status:      contact.StatusActive,
		Address: AddressRequest{
			City:    "São Paulo",
			State:   "SP",
			ZipCode: "01310-100",
		},
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if created.UserID != userID {
		t.Errorf("UserID = %s, want %s", created.UserID, userID)
	}
	if len(repo.contacts) != 1 {
		t.Errorf("persisted contacts = %d, want 1", len(repo.contacts))
	}
}

func TestUseCaseCreateValidation(t *testing.T) {
	repo := newFakeRepository()
	useCase := newTestUseCase(repo)

	tests := []struct {
		name string
		req  *CreateContactRequest
	}{
		{"missing company name", &CreateContactRequest{Category: "Tecnologia", Status: contact.StatusActive}},
		{"missing category", &CreateContactRequest{CompanyName: "Acme", Status: contact.StatusActive}},
		{"invalid state", &CreateContactRequest{
			CompanyName: "Acme", Category: "Tecnologia", Status: contact.StatusActive,
			Address: AddressRequest{State: "XX"},
		}},
		{"invalid zip code", &CreateContactRequest{
			CompanyName: "Acme", Category: "Tecnologia", Status: contact.StatusActive,
			Address: AddressRequest{ZipCode: "123"},
		}},
		{"invalid email", &CreateContactRequest{
			CompanyName: "Acme", Category: "Tecnologia", Status: contact.StatusActive,
			Email: "not-an-email",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := useCase.Create(context.Background(), uuid.New(), tt.req); err == nil {
				t.Error("Create() = nil, want validation error")
			}
		})
	}

	if len(repo.contacts) != 0 {
		t.Errorf("invalid requests were persisted: %d", len(repo.contacts))
	}
}

func TestUseCaseDeleteManyValidation(t *testing.T) {
	useCase := newTestUseCase(newFakeRepository())
	userID := uuid.New()

	if err := useCase.DeleteMany(context.Background(), userID, &DeleteManyRequest{}); err == nil {
		t.Error("DeleteMany(empty) = nil, want validation error")
	}

	if err := useCase.DeleteMany(context.Background(), userID, &DeleteManyRequest{IDs: []string{"not-a-uuid"}}); err == nil {
		t.Error("DeleteMany(invalid uuid) = nil, want validation error")
	}
}

func TestUseCaseDeleteMany(t *testing.T) {
	repo := newFakeRepository()
	useCase := newTestUseCase(repo)
	userID := uuid.New()

	id := uuid.New()
	repo.contacts[id] = &contact.Contact{ID: id, UserID: userID}

	err := useCase.DeleteMany(context.Background(), userID, &DeleteManyRequest{
		IDs: []string{id.String(), uuid.New().String()},
	})
	if err != nil {
		t.Fatalf("DeleteMany() error: %v", err)
	}

	if len(repo.contacts) != 0 {
		t.Errorf("remaining contacts = %d, want 0", len(repo.contacts))
	}
}

func TestUseCaseOwnerScoping(t *testing.T) {
	repo := newFakeRepository()
	useCase := newTestUseCase(repo)
	owner := uuid.New()
	intruder := uuid.New()

	id := uuid.New()
	repo.contacts[id] = &contact.Contact{
		ID:          id,
		UserID:      owner,
		CompanyName: "Acme",
		Category:    "Tecnologia",
		Status:      contact.StatusActive,
	}

	if _, err := useCase.GetByID(context.Background(), intruder, id); !errors.Is(err, contact.ErrContactNotFound) {
		t.Errorf("GetByID() error = %v, want %v", err, contact.ErrContactNotFound)
	}

	if err := useCase.Delete(context.Background(), intruder, id); !errors.Is(err, contact.ErrContactNotFound) {
		t.Errorf("Delete() error = %v, want %v", err, contact.ErrContactNotFound)
	}

	err := useCase.DeleteMany(context.Background(), intruder, &DeleteManyRequest{IDs: []string{id.String()}})
	if err != nil {
		t.Fatalf("DeleteMany() error: %v", err)
	}
	if _, ok := repo.contacts[id]; !ok {
		t.Error("another user's contact was deleted")
	}
}

func TestUseCaseExportCSV(t *testing.T) {
	repo := newFakeRepository()
	useCase := newTestUseCase(repo)
	userID := uuid.New()

	id := uuid.New()
	repo.contacts[id] = &contact.Contact{
		ID:          id,
		UserID:      userID,
		CompanyName: "Acme",
		Category:    "Tecnologia",
		Status:      contact.StatusActive,
	}

	export, err := useCase.ExportCSV(context.Background(), userID, &ListContactsRequest{})
	if err != nil {
		t.Fatalf("ExportCSV() error: %v", err)
	}

	wantName := "contatos_" + time.Now().Format("2006-01-02") + ".csv"
	if export.FileName != wantName {
		t.Errorf("FileName = %q, want %q", export.FileName, wantName)
	}
	if export.Rows != 1 {
		t.Errorf("Rows = %d, want 1", export.Rows)
	}
	if !strings.HasPrefix(export.Content, "Empresa,") {
		t.Errorf("Content does not start with header: %q", export.Content)
	}
	if !strings.Contains(export.Content, `"Acme"`) {
		t.Errorf("Content missing contact row: %q", export.Content)
	}
}

func TestUseCaseListAppliesFilters(t *testing.T) {
	repo := newFakeRepository()
	useCase := newTestUseCase(repo)
	userID := uuid.New()

	for i, status := range []string{contact.StatusActive, contact.StatusActive, contact.StatusInactive} {
		id := uuid.New()
		repo.contacts[id] = &contact.Contact{
			ID:          id,
			UserID:      userID,
			CompanyName: "Empresa",
			Category:    "Tecnologia",
			Status:      status,
			CreatedAt:   time.Now().Add(time.Duration(i) * time.Minute),
		}
	}

	page, err := useCase.List(context.Background(), userID, &ListContactsRequest{Status: contact.StatusActive})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if page.Count != 2 {
		t.Errorf("Count = %d, want 2", page.Count)
	}
	if page.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", page.TotalPages)
	}
}
