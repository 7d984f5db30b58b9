package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"buscacliente/internal/domain/auth"
	"buscacliente/internal/infra/http/handlers"
	"buscacliente/internal/infra/http/middleware"
	"buscacliente/platform/config"
	"buscacliente/platform/logger"
)

// Handlers conjunto de handlers HTTP da aplicação
type Handlers struct {
	Health      *handlers.HealthHandler
	Contacts    *handlers.ContactHandler
	Dashboard   *handlers.DashboardHandler
	Profile     *handlers.ProfileHandler
	WhatsApp    *handlers.WhatsAppHandler
	Diagnostics *handlers.DiagnosticsHandler
}

// SetupRoutes configura todas as rotas da aplicação
func SetupRoutes(cfg *config.Config, log *logger.Logger, sessions auth.Store, h *Handlers) http.Handler {
	r := chi.NewRouter()

	setupMiddlewares(r, cfg, log, sessions)

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Health check
	r.Get("/health", h.Health.Health)

	setupPageRoutes(r)
	setupAPIRoutes(r, log, h)

	return r
}

// setupMiddlewares configura todos os middlewares globais da aplicação
func setupMiddlewares(r *chi.Mux, cfg *config.Config, log *logger.Logger, sessions auth.Store) {
	r.Use(middleware.Recoverer(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.HTTPLogger(log))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.SessionGuard(sessions, cfg, log))
}

// setupAPIRoutes configura o grupo de rotas /api
func setupAPIRoutes(r *chi.Mux, log *logger.Logger, h *Handlers) {
	r.Route("/api", func(r chi.Router) {
		// Rotas que exigem o dono da sessão
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(log))

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", h.Contacts.List)
				r.Post("/", h.Contacts.Create)
				r.Get("/export", h.Contacts.Export)
				r.Post("/delete-many", h.Contacts.DeleteMany)
				r.Get("/{id}", h.Contacts.GetByID)
				r.Put("/{id}", h.Contacts.Update)
				r.Delete("/{id}", h.Contacts.Delete)
			})

			r.Get("/dashboard/stats", h.Dashboard.Stats)

			r.Get("/profile", h.Profile.Get)
			r.Put("/profile", h.Profile.Update)
		})

		// Integração com o WhatsApp, configuração de linha única sem dono
		r.Route("/whatsapp", func(r chi.Router) {
			r.Post("/connect", h.WhatsApp.Connect)
			r.Post("/disconnect", h.WhatsApp.Disconnect)
			r.Get("/status", h.WhatsApp.Status)
			r.Get("/qr", h.WhatsApp.QR)
		})

		// Sondas de diagnóstico
		r.Get("/check-tables", h.Diagnostics.CheckTables)
		r.Get("/sync-profiles", h.Diagnostics.SyncProfiles)
	})
}
