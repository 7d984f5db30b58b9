package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"

	"buscacliente/internal/domain/auth"
	"buscacliente/platform/config"
	"buscacliente/platform/logger"
)

const testCookie = "bc_session"

// fakeStore sessões conhecidas por token
type fakeStore struct {
	sessions map[string]*auth.Session
}

func (f *fakeStore) GetSession(ctx context.Context, token string) (*auth.Session, error) {
	session, ok := f.sessions[token]
	if !ok {
		return nil, auth.ErrSessionNotFound
	}
	if session.IsExpired() {
		return nil, auth.ErrSessionExpired
	}
	return session, nil
}

func (f *fakeStore) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	return nil, nil
}

func newGuard(store auth.Store) func(http.Handler) http.Handler {
	cfg := &config.Config{Auth: config.AuthConfig{SessionCookie: testCookie}}
	return SessionGuard(store, cfg, logger.New(logger.TestConfig()))
}

func validStore(token string) *fakeStore {
	return &fakeStore{sessions: map[string]*auth.Session{
		token: {
			Token:     token,
			UserID:    uuid.New(),
			ExpiresAt: time.Now().Add(time.Hour),
			CreatedAt: time.Now(),
		},
	}}
}

func passThrough(t *testing.T, called *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestGuardRedirectsUnauthenticated(t *testing.T) {
	protected := []string{"/dashboard", "/buscar-clientes", "/meus-contatos", "/assinatura", "/configuracoes"}

	for _, path := range protected {
		t.Run(path, func(t *testing.T) {
			var called bool
			handler := newGuard(&fakeStore{})(passThrough(t, &called))

			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if called {
				t.Error("protected handler was reached without a session")
			}
			if rec.Code != http.StatusFound {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
			}

			want := "/login?redirectedFrom=" + url.QueryEscape(path)
			if got := rec.Header().Get("Location"); got != want {
				t.Errorf("Location = %q, want %q", got, want)
			}
		})
	}
}

func TestGuardRedirectsAuthenticatedFromAuthPages(t *testing.T) {
	for _, path := range []string{"/login", "/register"} {
		t.Run(path, func(t *testing.T) {
			var called bool
			handler := newGuard(validStore("tok1"))(passThrough(t, &called))

			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.AddCookie(&http.Cookie{Name: testCookie, Value: "tok1"})
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if called {
				t.Error("auth page handler was reached with a session")
			}
			if rec.Code != http.StatusFound {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
			}
			if got := rec.Header().Get("Location"); got != "/dashboard" {
				t.Errorf("Location = %q, want /dashboard", got)
			}
		})
	}
}

func TestGuardPassesUnprotectedPaths(t *testing.T) {
	for _, path := range []string{"/", "/login", "/register"} {
		t.Run(path, func(t *testing.T) {
			var called bool
			handler := newGuard(&fakeStore{})(passThrough(t, &called))

			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if !called {
				t.Error("handler not reached")
			}
			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
			}
		})
	}
}

func TestGuardPassesAuthenticatedProtectedPath(t *testing.T) {
	var session *auth.Session
	handler := newGuard(validStore("tok1"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "tok1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if session == nil {
		t.Error("session not attached to context")
	}
}

func TestGuardTreatsExpiredSessionAsAbsent(t *testing.T) {
	store := &fakeStore{sessions: map[string]*auth.Session{
		"old": {
			Token:     "old",
			UserID:    uuid.New(),
			ExpiresAt: time.Now().Add(-time.Hour),
		},
	}}

	handler := newGuard(store)(passThrough(t, new(bool)))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "old"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusFound)
	}
}

func TestGuardAPIPathsNeverRedirect(t *testing.T) {
	var called bool
	handler := newGuard(&fakeStore{})(passThrough(t, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("API handler not reached")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequireSession(t *testing.T) {
	log := logger.New(logger.TestConfig())

	t.Run("without session returns 401", func(t *testing.T) {
		var called bool
		handler := RequireSession(log)(passThrough(t, &called))

		req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if called {
			t.Error("handler reached without session")
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
	})

	t.Run("with session passes", func(t *testing.T) {
		guarded := newGuard(validStore("tok1"))(RequireSession(log)(passThrough(t, new(bool))))

		req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: "tok1"})
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}
