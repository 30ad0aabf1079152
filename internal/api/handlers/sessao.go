package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/leilao-digital/app-console-admin/internal/avisos"
	"github.com/leilao-digital/app-console-admin/internal/models"
	"github.com/leilao-digital/app-console-admin/internal/recursos"
	"github.com/leilao-digital/app-console-admin/internal/sessao"
)

type SessaoHandler struct {
	autenticacao *recursos.Autenticacao
	store        *sessao.Store
	central      *avisos.Central
}

func NewSessaoHandler(autenticacao *recursos.Autenticacao, store *sessao.Store, central *avisos.Central) *SessaoHandler {
	return &SessaoHandler{autenticacao: autenticacao, store: store, central: central}
}

// Login valida as credenciais no backend e persiste a sessão resultante.
func (h *SessaoHandler) Login(c *gin.Context) {
	var credenciais models.Credenciais
	if err := c.ShouldBindJSON(&credenciais); err != nil {
		responderValidacao(c, err, gin.H{"email": credenciais.Email})
		return
	}

	nova, err := h.autenticacao.Login(c.Request.Context(), credenciais)
	if err != nil {
		responderErro(c, err)
		return
	}

	if err := h.store.Definir(*nova); err != nil {
		log.Error().Err(err).Msg("erro ao persistir sessão")
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Não foi possível salvar a sessão."})
		return
	}

	log.Info().Str("email", credenciais.Email).Msg("login realizado")
	c.JSON(http.StatusOK, h.estadoSessao())
}

// Logout descarta a sessão local. O token do backend expira sozinho.
func (h *SessaoHandler) Logout(c *gin.Context) {
	h.store.Limpar()
	log.Info().Msg("sessão encerrada pelo operador")
	c.JSON(http.StatusOK, gin.H{"autenticada": false})
}

// Atual informa se há sessão válida e quem é o usuário.
func (h *SessaoHandler) Atual(c *gin.Context) {
	c.JSON(http.StatusOK, h.estadoSessao())
}

// Avisos drena a fila de notificações pendentes para o shell exibir.
func (h *SessaoHandler) Avisos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"avisos": h.central.Drenar()})
}

func (h *SessaoHandler) estadoSessao() gin.H {
	atual := h.store.Atual()
	if !atual.Autenticada() {
		return gin.H{"autenticada": false}
	}

	estado := gin.H{
		"autenticada": true,
		"usuario":     atual.Usuario,
	}
	if expiracao := h.store.Expiracao(); !expiracao.IsZero() {
		estado["expiraEm"] = expiracao
	}
	return estado
}
