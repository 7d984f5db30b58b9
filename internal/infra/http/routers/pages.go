package routers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Páginas servidas pelo backend. O frontend real é uma SPA; aqui entregamos
// o shell mínimo por rota para que a semântica de proteção de sessão valha
// também quando o backend é acessado diretamente.
var pageRoutes = map[string]string{
	"/":                "BuscaCliente.IA",
	"/login":           "Login",
	"/register":        "Cadastro",
	"/dashboard":       "Dashboard",
	"/buscar-clientes": "Buscar Clientes",
	"/meus-contatos":   "Meus Contatos",
	"/assinatura":      "Assinatura",
	"/configuracoes":   "Configurações",
}

// setupPageRoutes configura as rotas de página sujeitas ao guard de sessão
func setupPageRoutes(r *chi.Mux) {
	for path, title := range pageRoutes {
		r.Get(path, servePage(title))
	}
}

// servePage entrega o shell HTML da página
func servePage(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>%s | BuscaCliente.IA</title></head>
<body><div id="root" data-page="%s"></div></body>
</html>
`, title, title)
	}
}
