package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/leilao-digital/app-console-admin/internal/avisos"
	"github.com/leilao-digital/app-console-admin/internal/recursos"
)

type ImagemHandler struct {
	imagens *recursos.Imagens
	central *avisos.Central
}

func NewImagemHandler(imagens *recursos.Imagens, central *avisos.Central) *ImagemHandler {
	return &ImagemHandler{imagens: imagens, central: central}
}

func (h *ImagemHandler) PorLeilao(c *gin.Context) {
	leilaoID, ok := idDaRota(c)
	if !ok {
		return
	}

	lista, err := h.imagens.BuscarPorLeilao(c.Request.Context(), leilaoID)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imagens": lista})
}

// Enviar repassa o arquivo recebido do navegador para o backend, preservando
// o nome original.
func (h *ImagemHandler) Enviar(c *gin.Context) {
	leilaoID, ok := idDaRota(c)
	if !ok {
		return
	}

	cabecalho, err := c.FormFile("arquivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Arquivo é obrigatório no campo 'arquivo'."})
		return
	}

	arquivo, err := cabecalho.Open()
	if err != nil {
		log.Error().Err(err).Str("arquivo", cabecalho.Filename).Msg("erro ao abrir upload")
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Não foi possível ler o arquivo enviado."})
		return
	}
	defer arquivo.Close()

	imagem, err := h.imagens.Enviar(c.Request.Context(), leilaoID, cabecalho.Filename, arquivo)
	if err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Imagem enviada com sucesso.")
	c.JSON(http.StatusCreated, imagem)
}

func (h *ImagemHandler) DefinirPrincipal(c *gin.Context) {
	leilaoID, ok := idDaRota(c)
	if !ok {
		return
	}
	imagemID, err := strconv.ParseInt(c.Param("imagemId"), 10, 64)
	if err != nil || imagemID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Identificador de imagem inválido."})
		return
	}

	if err := h.imagens.DefinirPrincipal(c.Request.Context(), leilaoID, imagemID); err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Imagem principal definida.")
	c.Status(http.StatusNoContent)
}

func (h *ImagemHandler) Excluir(c *gin.Context) {
	imagemID, err := strconv.ParseInt(c.Param("imagemId"), 10, 64)
	if err != nil || imagemID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Identificador de imagem inválido."})
		return
	}

	if err := h.imagens.Excluir(c.Request.Context(), imagemID); err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Imagem excluída.")
	c.Status(http.StatusNoContent)
}
