package contact

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
)

// fakeRepository repositório em memória para testes do service
type fakeRepository struct {
	contacts map[uuid.UUID]*Contact
	listErr  error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{contacts: make(map[uuid.UUID]*Contact)}
}

func (f *fakeRepository) Create(ctx context.Context, c *Contact) error {
	clone := *c
	f.contacts[c.ID] = &clone
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*Contact, error) {
	c, ok := f.contacts[id]
	if !ok || c.UserID != userID {
		return nil, ErrContactNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeRepository) Update(ctx context.Context, c *Contact) error {
	existing, ok := f.contacts[c.ID]
	if !ok || existing.UserID != c.UserID {
		return ErrContactNotFound
	}
	clone := *c
	f.contacts[c.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	c, ok := f.contacts[id]
	if !ok || c.UserID != userID {
		return ErrContactNotFound
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

func (f *fakeRepository) List(ctx context.Context, userID uuid.UUID, filters Filters, pagination Pagination) ([]*Contact, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}

	var matched []*Contact
	for _, c := range f.contacts {
		if c.UserID == userID && filters.Matches(c) {
			matched = append(matched, c)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

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

func seedContacts(t *testing.T, repo *fakeRepository, userID uuid.UUID, n int) {
	t.Helper()
	base := time.Now()
	for i := 0; i < n; i++ {
		id := uuid.New()
		repo.contacts[id] = &Contact{
			ID:          id,
			UserID:      userID,
			CompanyName: fmt.Sprintf("Empresa %02d", i),
			Category:    "Tecnologia",
			Status:      StatusActive,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
	}
}

func TestServiceListPagination(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	userID := uuid.New()
	seedContacts(t, repo, userID, 25)

	page, err := service.List(context.Background(), userID, Filters{}, Pagination{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if page.Count != 25 {
		t.Errorf("Count = %d, want 25", page.Count)
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.TotalPages)
	}
	if page.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want 2", page.CurrentPage)
	}
	if len(page.Data) != 10 {
		t.Errorf("len(Data) = %d, want 10", len(page.Data))
	}
}

func TestServiceListDefaults(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	userID := uuid.New()
	seedContacts(t, repo, userID, 15)

	page, err := service.List(context.Background(), userID, Filters{}, Pagination{})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if page.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, want 1", page.CurrentPage)
	}
	if len(page.Data) != DefaultPageSize {
		t.Errorf("len(Data) = %d, want %d", len(page.Data), DefaultPageSize)
	}
	if page.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", page.TotalPages)
	}
}

func TestServiceListFiltered(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	userID := uuid.New()
	seedContacts(t, repo, userID, 5)

	inactive := uuid.New()
	repo.contacts[inactive] = &Contact{
		ID:          inactive,
		UserID:      userID,
		CompanyName: "Empresa Parada",
		Category:    "Tecnologia",
		Status:      StatusInactive,
		CreatedAt:   time.Now(),
	}

	page, err := service.List(context.Background(), userID, Filters{Status: StatusInactive}, Pagination{})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if page.Count != 1 {
		t.Fatalf("Count = %d, want 1", page.Count)
	}
	for _, c := range page.Data {
		if c.Status != StatusInactive {
			t.Errorf("returned contact with status %q", c.Status)
		}
	}
}

func TestServiceListScopedByUser(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	owner := uuid.New()
	other := uuid.New()
	seedContacts(t, repo, owner, 3)
	seedContacts(t, repo, other, 4)

	page, err := service.List(context.Background(), owner, Filters{}, Pagination{})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if page.Count != 3 {
		t.Errorf("Count = %d, want 3", page.Count)
	}
	for _, c := range page.Data {
		if c.UserID != owner {
			t.Errorf("returned contact of another user: %s", c.UserID)
		}
	}
}

func TestServiceListAll(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	userID := uuid.New()
	seedContacts(t, repo, userID, 1203)

	all, err := service.ListAll(context.Background(), userID, Filters{})
	if err != nil {
		t.Fatalf("ListAll() error: %v", err)
	}

	if len(all) != 1203 {
		t.Errorf("len(all) = %d, want 1203", len(all))
	}
}

func TestServiceCreate(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)

	created, err := service.Create(context.Background(), &Contact{
		UserID:      uuid.New(),
		CompanyName: "Acme Ltda",
		Category:    "Tecnologia",
		Status:      StatusActive,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Error("Create() did not assign an ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("Create() did not set timestamps")
	}
	if _, ok := repo.contacts[created.ID]; !ok {
		t.Error("contact not persisted")
	}
}

func TestServiceCreateInvalid(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)

	_, err := service.Create(context.Background(), &Contact{
		UserID:   uuid.New(),
		Category: "Tecnologia",
		Status:   StatusActive,
	})
	if !errors.Is(err, ErrCompanyNameRequired) {
		t.Errorf("Create() error = %v, want %v", err, ErrCompanyNameRequired)
	}
	if len(repo.contacts) != 0 {
		t.Error("invalid contact was persisted")
	}
}

func TestServiceUpdate(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	userID := uuid.New()
	seedContacts(t, repo, userID, 1)

	var id uuid.UUID
	for existing := range repo.contacts {
		id = existing
	}

	newStatus := StatusInactive
	updated, err := service.Update(context.Background(), userID, id, &Update{Status: &newStatus})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if updated.Status != StatusInactive {
		t.Errorf("Status = %q, want %q", updated.Status, StatusInactive)
	}
	if repo.contacts[id].Status != StatusInactive {
		t.Error("update not persisted")
	}
}

func TestServiceUpdateNotFound(t *testing.T) {
	service := NewService(newFakeRepository())

	_, err := service.Update(context.Background(), uuid.New(), uuid.New(), &Update{})
	if !errors.Is(err, ErrContactNotFound) {
		t.Errorf("Update() error = %v, want %v", err, ErrContactNotFound)
	}
}

func TestServiceOwnerScoping(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	owner := uuid.New()
	intruder := uuid.New()
	seedContacts(t, repo, owner, 1)

	var id uuid.UUID
	for existing := range repo.contacts {
		id = existing
	}

	// Contato de outro usuário é indistinguível de inexistente
	if _, err := service.GetByID(context.Background(), intruder, id); !errors.Is(err, ErrContactNotFound) {
		t.Errorf("GetByID() error = %v, want %v", err, ErrContactNotFound)
	}

	newStatus := StatusInactive
	if _, err := service.Update(context.Background(), intruder, id, &Update{Status: &newStatus}); !errors.Is(err, ErrContactNotFound) {
		t.Errorf("Update() error = %v, want %v", err, ErrContactNotFound)
	}
	if repo.contacts[id].Status != StatusActive {
		t.Error("another user's update was persisted")
	}

	if err := service.Delete(context.Background(), intruder, id); !errors.Is(err, ErrContactNotFound) {
		t.Errorf("Delete() error = %v, want %v", err, ErrContactNotFound)
	}

	if err := service.DeleteMany(context.Background(), intruder, []uuid.UUID{id}); err != nil {
		t.Fatalf("DeleteMany() error: %v", err)
	}
	if _, ok := repo.contacts[id]; !ok {
		t.Error("another user's contact was deleted in bulk")
	}
}

func TestServiceDeleteMany(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	userID := uuid.New()
	seedContacts(t, repo, userID, 5)

	var targets []uuid.UUID
	for id := range repo.contacts {
		targets = append(targets, id)
		if len(targets) == 2 {
			break
		}
	}

	// IDs inexistentes não causam erro
	targets = append(targets, uuid.New())

	if err := service.DeleteMany(context.Background(), userID, targets); err != nil {
		t.Fatalf("DeleteMany() error: %v", err)
	}

	if len(repo.contacts) != 3 {
		t.Errorf("remaining contacts = %d, want 3", len(repo.contacts))
	}
}

func TestServiceDeleteManyEmpty(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)

	if err := service.DeleteMany(context.Background(), uuid.New(), nil); err != nil {
		t.Errorf("DeleteMany(nil) error: %v", err)
	}
}
