package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"buscacliente/internal/domain/auth"
	"buscacliente/platform/config"
	"buscacliente/platform/logger"
)

type contextKey string

const sessionContextKey contextKey = "session"

// Prefixos de página que exigem sessão ativa e páginas de autenticação que
// usuários logados não devem rever
var (
	protectedPrefixes = []string{
		"/dashboard",
		"/buscar-clientes",
		"/meus-contatos",
		"/assinatura",
		"/configuracoes",
	}

	authPages = []string{
		"/login",
		"/register",
	}
)

// SessionGuard middleware de proteção de rotas por sessão.
//
// Para páginas: sem sessão em rota protegida redireciona para /login
// preservando o destino original em redirectedFrom; com sessão em página de
// autenticação redireciona para /dashboard; qualquer outra combinação passa.
// Para rotas /api/ apenas anexa a sessão ao contexto quando ela existe, sem
// redirecionar. Falha na consulta de sessão é tratada como ausência de sessão.
func SessionGuard(store auth.Store, cfg *config.Config, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			session := resolveSession(r, store, cfg, log)

			if strings.HasPrefix(path, "/api/") {
				if session != nil {
					r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, session))
				}
				next.ServeHTTP(w, r)
				return
			}

			if session == nil && isProtectedPath(path) {
				log.DebugWithFields("Redirecting unauthenticated request", map[string]interface{}{
					"path": path,
					"ip":   getClientIP(r),
				})

				target := "/login?redirectedFrom=" + url.QueryEscape(path)
				http.Redirect(w, r, target, http.StatusFound)
				return
			}

			if session != nil && isAuthPage(path) {
				http.Redirect(w, r, "/dashboard", http.StatusFound)
				return
			}

			if session != nil {
				r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, session))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession middleware para rotas de API que exigem um dono. Responde
// 401 em JSON quando não há sessão no contexto.
func RequireSession(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if SessionFromContext(r.Context()) == nil {
				log.WarnWithFields("Missing session on protected API route", map[string]interface{}{
					"path":   r.URL.Path,
					"method": r.Method,
					"ip":     getClientIP(r),
				})

				writeUnauthorizedResponse(w, "Authentication required", "MISSING_SESSION")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SessionFromContext retorna a sessão anexada pelo guard, ou nil
func SessionFromContext(ctx context.Context) *auth.Session {
	session, _ := ctx.Value(sessionContextKey).(*auth.Session)
	return session
}

// resolveSession lê o cookie de sessão e consulta o store. Cookie ausente,
// token desconhecido, sessão expirada ou erro de consulta resultam em nil.
func resolveSession(r *http.Request, store auth.Store, cfg *config.Config, log *logger.Logger) *auth.Session {
	cookie, err := r.Cookie(cfg.Auth.SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}

	session, err := store.GetSession(r.Context(), cookie.Value)
	if err != nil {
		if err != auth.ErrSessionNotFound && err != auth.ErrSessionExpired {
			log.ErrorWithFields("Failed to resolve session", map[string]interface{}{
				"error": err.Error(),
				"path":  r.URL.Path,
			})
		}
		return nil
	}

	return session
}

// isProtectedPath verifica se o caminho pertence a uma área protegida
func isProtectedPath(path string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// isAuthPage verifica se o caminho é uma página de autenticação
func isAuthPage(path string) bool {
	for _, page := range authPages {
		if path == page || strings.HasPrefix(path, page+"/") {
			return true
		}
	}
	return false
}

// writeUnauthorizedResponse escreve resposta 401 no envelope padrão
func writeUnauthorizedResponse(w http.ResponseWriter, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	response := map[string]interface{}{
		"success": false,
		"error":   message,
		"code":    code,
	}

	_ = json.NewEncoder(w).Encode(response)
}
