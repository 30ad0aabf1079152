package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/leilao-digital/app-console-admin/internal/api/handlers"
	"github.com/leilao-digital/app-console-admin/internal/apiclient"
	"github.com/leilao-digital/app-console-admin/internal/avisos"
	"github.com/leilao-digital/app-console-admin/internal/config"
	middlewares "github.com/leilao-digital/app-console-admin/internal/middleware"
	"github.com/leilao-digital/app-console-admin/internal/recursos"
	"github.com/leilao-digital/app-console-admin/internal/sessao"
)

// SetupRouter monta o cliente da API, a sessão e todos os handlers do
// console em um engine pronto para servir o shell do navegador.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestTiming())

	store := sessao.NewStore(cfg.SessionFile)
	store.Carregar()

	central := avisos.NovaCentral()

	cliente := apiclient.New(apiclient.Config{
		BaseURL:         cfg.APIBaseURL,
		Timeout:         cfg.APITimeout,
		FonteToken:      store,
		Notificador:     central,
		AoNaoAutorizado: store.Limpar,
	})

	leiloes := recursos.NovoLeiloes(cliente)

	sessaoHandler := handlers.NewSessaoHandler(recursos.NovoAutenticacao(cliente), store, central)
	leilaoHandler := handlers.NewLeilaoHandler(leiloes, central)
	categoriaHandler := handlers.NewCategoriaHandler(recursos.NovoCategorias(cliente), central)
	pessoaHandler := handlers.NewPessoaHandler(recursos.NovoPessoas(cliente), central)
	perfilHandler := handlers.NewPerfilHandler(recursos.NovoPerfis(cliente), central)
	feedbackHandler := handlers.NewFeedbackHandler(recursos.NovoFeedbacks(cliente), central)
	imagemHandler := handlers.NewImagemHandler(recursos.NovoImagens(cliente), central)
	publicoHandler := handlers.NewPublicoHandler(leiloes)
	healthHandler := handlers.NewHealthHandler(cliente)

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)

	api := r.Group("/api/v1")
	{
		api.POST("/login", sessaoHandler.Login)
		api.POST("/logout", sessaoHandler.Logout)
		api.GET("/sessao", sessaoHandler.Atual)
		api.GET("/avisos", sessaoHandler.Avisos)

		api.POST("/pessoa/recuperar-senha", pessoaHandler.RecuperarSenha)
		api.POST("/pessoa/redefinir-senha", pessoaHandler.RedefinirSenha)

		api.POST("/formularios/:nome/validar", handlers.NewFormularioHandler().Validar)

		publicos := api.Group("/publicos")
		{
			publicos.GET("/leiloes", publicoHandler.Listar)
			publicos.GET("/leiloes/:id", publicoHandler.Detalhar)
		}

		admin := api.Group("")
		admin.Use(middlewares.ExigirSessao(store))
		{
			admin.GET("/leiloes", leilaoHandler.Listar)
			admin.POST("/leiloes/limpar-filtros", leilaoHandler.LimparFiltros)
			admin.GET("/leiloes/meus", leilaoHandler.Meus)
			admin.GET("/leiloes/buscar", leilaoHandler.BuscarPorTitulo)
			admin.GET("/leiloes/status/:status", leilaoHandler.PorStatus)
			admin.GET("/leiloes/:id", leilaoHandler.Detalhar)
			admin.POST("/leiloes", leilaoHandler.Criar)
			admin.PUT("/leiloes/:id", leilaoHandler.Atualizar)
			admin.DELETE("/leiloes/:id", leilaoHandler.Excluir)
			admin.PUT("/leiloes/:id/abrir", leilaoHandler.Abrir)
			admin.PUT("/leiloes/:id/encerrar", leilaoHandler.Encerrar)
			admin.PUT("/leiloes/:id/cancelar", leilaoHandler.Cancelar)

			admin.GET("/categorias", categoriaHandler.Listar)
			admin.GET("/categorias/minhas", categoriaHandler.Minhas)
			admin.GET("/categorias/:id", categoriaHandler.Detalhar)
			admin.POST("/categorias", categoriaHandler.Criar)
			admin.PUT("/categorias/:id", categoriaHandler.Atualizar)
			admin.DELETE("/categorias/:id", categoriaHandler.Excluir)

			admin.GET("/pessoas", pessoaHandler.Listar)
			admin.GET("/pessoas/me", pessoaHandler.Me)
			admin.GET("/pessoas/:id", pessoaHandler.Detalhar)
			admin.POST("/pessoas", pessoaHandler.Criar)
			admin.PUT("/pessoas/:id", pessoaHandler.Atualizar)
			admin.PUT("/pessoas/alterar-senha", pessoaHandler.AlterarSenha)
			admin.POST("/pessoa-perfil", pessoaHandler.AdicionarPerfil)
			admin.DELETE("/pessoa-perfil/:pessoaId/:perfilId", pessoaHandler.RemoverPerfil)

			admin.GET("/perfis", perfilHandler.Listar)
			admin.POST("/perfis", perfilHandler.Criar)
			admin.DELETE("/perfis/:id", perfilHandler.Excluir)

			admin.GET("/feedback/leilao/:id", feedbackHandler.PorLeilao)
			admin.GET("/feedback/pessoa/:id", feedbackHandler.PorPessoa)
			admin.GET("/feedback/pode-avaliar/:id", feedbackHandler.PodeAvaliar)
			admin.POST("/feedback", feedbackHandler.Criar)

			admin.GET("/imagens/leilao/:id", imagemHandler.PorLeilao)
			admin.POST("/imagens/leilao/:id", imagemHandler.Enviar)
			admin.PUT("/imagens/leilao/:id/principal/:imagemId", imagemHandler.DefinirPrincipal)
			admin.DELETE("/imagens/:imagemId", imagemHandler.Excluir)
		}
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
