package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leilao-digital/app-console-admin/internal/avisos"
	"github.com/leilao-digital/app-console-admin/internal/models"
	"github.com/leilao-digital/app-console-admin/internal/recursos"
)

type FeedbackHandler struct {
	feedbacks *recursos.Feedbacks
	central   *avisos.Central
}

func NewFeedbackHandler(feedbacks *recursos.Feedbacks, central *avisos.Central) *FeedbackHandler {
	return &FeedbackHandler{feedbacks: feedbacks, central: central}
}

func (h *FeedbackHandler) PorLeilao(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	pagina, err := h.feedbacks.BuscarPorLeilao(c.Request.Context(), id)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, pagina)
}

func (h *FeedbackHandler) PorPessoa(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	pagina, err := h.feedbacks.BuscarPorPessoa(c.Request.Context(), id)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, pagina)
}

// PodeAvaliar informa se o operador ainda pode avaliar o leilão.
func (h *FeedbackHandler) PodeAvaliar(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	pode, err := h.feedbacks.PodeAvaliar(c.Request.Context(), id)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"podeAvaliar": pode})
}

func (h *FeedbackHandler) Criar(c *gin.Context) {
	var dados models.FeedbackCriacao
	if err := c.ShouldBindJSON(&dados); err != nil {
		responderValidacao(c, err, dados)
		return
	}

	criado, err := h.feedbacks.Inserir(c.Request.Context(), dados)
	if err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Avaliação registrada.")
	c.JSON(http.StatusCreated, criado)
}
