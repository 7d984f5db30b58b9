package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeRepository struct {
	profiles map[uuid.UUID]*UserProfile
}

func (f *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*UserProfile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakeRepository) Create(ctx context.Context, p *UserProfile) error {
	clone := *p
	f.profiles[p.ID] = &clone
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, p *UserProfile) error {
	if _, ok := f.profiles[p.ID]; !ok {
		return ErrProfileNotFound
	}
	clone := *p
	f.profiles[p.ID] = &clone
	return nil
}

func (f *fakeRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(f.profiles))
	for id := range f.profiles {
		ids = append(ids, id)
	}
	return ids, nil
}

func TestServiceUpdate(t *testing.T) {
	id := uuid.New()
	repo := &fakeRepository{profiles: map[uuid.UUID]*UserProfile{
		id: {ID: id, Name: "Maria", Email: "maria@example.com"},
	}}
	service := NewService(repo)

	newCompany := "Acme Ltda"
	notify := true
	updated, err := service.Update(context.Background(), id, &Update{
		Company:            &newCompany,
		EmailNotifications: &notify,
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if updated.Company != newCompany {
		t.Errorf("Company = %q, want %q", updated.Company, newCompany)
	}
	if updated.EmailNotifications == nil || !*updated.EmailNotifications {
		t.Error("EmailNotifications not applied")
	}
	// Campos não informados permanecem
	if updated.Name != "Maria" || updated.Email != "maria@example.com" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if updated.WhatsappNotifications != nil {
		t.Error("unset preference should stay nil")
	}
}

func TestServiceUpdateNotFound(t *testing.T) {
	service := NewService(&fakeRepository{profiles: map[uuid.UUID]*UserProfile{}})

	_, err := service.Update(context.Background(), uuid.New(), &Update{})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Update() error = %v, want %v", err, ErrProfileNotFound)
	}
}

func TestServiceUpdateRejectsEmptyName(t *testing.T) {
	id := uuid.New()
	repo := &fakeRepository{profiles: map[uuid.UUID]*UserProfile{
		id: {ID: id, Name: "Maria", Email: "maria@example.com"},
	}}
	service := NewService(repo)

	empty := "  "
	_, err := service.Update(context.Background(), id, &Update{Name: &empty})
	if !errors.Is(err, ErrNameRequired) {
		t.Errorf("Update() error = %v, want %v", err, ErrNameRequired)
	}
	if repo.profiles[id].Name != "Maria" {
		t.Error("invalid update was persisted")
	}
}
