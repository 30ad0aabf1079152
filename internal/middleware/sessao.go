package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/leilao-digital/app-console-admin/internal/sessao"
)

// ExigirSessao bloqueia as rotas administrativas quando não há sessão válida.
// Um token já vencido derruba a sessão local na hora, sem esperar o 401 do
// backend.
func ExigirSessao(store *sessao.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.Autenticada() {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Faça login para continuar."})
			c.Abort()
			return
		}

		if expiracao := store.Expiracao(); !expiracao.IsZero() && time.Now().After(expiracao) {
			log.Info().Time("expiracao", expiracao).Msg("sessão expirada descartada")
			store.Limpar()
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Sessão expirada. Faça login novamente."})
			c.Abort()
			return
		}

		c.Next()
	}
}
