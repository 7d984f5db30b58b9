package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"buscacliente/platform/logger"
)

// fakeRepository respostas fixas para o agregador
type fakeRepository struct {
	total      int
	active     int
	inactive   int
	categories []string

	totalErr      error
	byStatusErr   error
	categoriesErr error
}

func (f *fakeRepository) CountContacts(ctx context.Context, userID uuid.UUID) (int, error) {
	return f.total, f.totalErr
}

func (f *fakeRepository) CountContactsByStatus(ctx context.Context, userID uuid.UUID, status string) (int, error) {
	if f.byStatusErr != nil {
		return 0, f.byStatusErr
	}
	if status == "Ativo" {
		return f.active, nil
	}
	return f.inactive, nil
}

func (f *fakeRepository) ListCategories(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return f.categories, f.categoriesErr
}

func newTestService(repo Repository) *Service {
	return NewService(repo, logger.New(logger.TestConfig()))
}

func TestGetStats(t *testing.T) {
	repo := &fakeRepository{
		total:      10,
		active:     7,
		inactive:   3,
		categories: []string{"tecnologia", "Tecnologia", "alimentação"},
	}

	stats := newTestService(repo).GetStats(context.Background(), uuid.New())

	if stats.TotalContacts != 10 {
		t.Errorf("TotalContacts = %d, want 10", stats.TotalContacts)
	}
	if stats.ActiveContacts != 7 {
		t.Errorf("ActiveContacts = %d, want 7", stats.ActiveContacts)
	}
	if stats.InactiveContacts != 3 {
		t.Errorf("InactiveContacts = %d, want 3", stats.InactiveContacts)
	}

	// Rótulos consolidados com iniciais maiúsculas
	if stats.ContactsByCategory["Tecnologia"] != 2 {
		t.Errorf("ContactsByCategory[Tecnologia] = %d, want 2", stats.ContactsByCategory["Tecnologia"])
	}
	if stats.ContactsByCategory["Alimentação"] != 1 {
		t.Errorf("ContactsByCategory[Alimentação] = %d, want 1", stats.ContactsByCategory["Alimentação"])
	}
}

func TestGetStatsConcurrent(t *testing.T) {
	repo := &fakeRepository{
		total:      10,
		active:     7,
		inactive:   3,
		categories: []string{"tecnologia", "alimentação"},
	}
	service := newTestService(repo)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				stats := service.GetStats(context.Background(), uuid.New())
				if stats.ContactsByCategory["Tecnologia"] != 1 {
					t.Errorf("ContactsByCategory[Tecnologia] = %d, want 1", stats.ContactsByCategory["Tecnologia"])
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestGetStatsZeroedOnFailure(t *testing.T) {
	boom := errors.New("connection refused")

	tests := []struct {
		name string
		repo *fakeRepository
	}{
		{"count fails", &fakeRepository{totalErr: boom}},
		{"status count fails", &fakeRepository{total: 10, byStatusErr: boom}},
		{"categories fail", &fakeRepository{total: 10, active: 7, inactive: 3, categoriesErr: boom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := newTestService(tt.repo).GetStats(context.Background(), uuid.New())

			if stats == nil {
				t.Fatal("GetStats() returned nil")
			}
			if stats.TotalContacts != 0 || stats.ActiveContacts != 0 || stats.InactiveContacts != 0 {
				t.Errorf("stats not zeroed: %+v", stats)
			}
			if stats.ContactsByCategory == nil || len(stats.ContactsByCategory) != 0 {
				t.Errorf("ContactsByCategory = %v, want empty map", stats.ContactsByCategory)
			}
		})
	}
}
