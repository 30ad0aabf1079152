package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leilao-digital/app-console-admin/internal/models"
	"github.com/leilao-digital/app-console-admin/internal/recursos"
	"github.com/leilao-digital/app-console-admin/internal/utils"
)

// PublicoHandler expõe a vitrine de leilões como o visitante deslogado a vê,
// usada na pré-visualização do console.
type PublicoHandler struct {
	leiloes *recursos.Leiloes
}

func NewPublicoHandler(leiloes *recursos.Leiloes) *PublicoHandler {
	return &PublicoHandler{leiloes: leiloes}
}

// Listar devolve a vitrine pública. O parâmetro q refina localmente por
// título, ignorando acentuação e caixa.
func (h *PublicoHandler) Listar(c *gin.Context) {
	consulta := c.Query("q")

	pagina, err := h.leiloes.BuscarPublicos(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		responderErro(c, err)
		return
	}

	if consulta != "" {
		filtrados := make([]models.Leilao, 0, len(pagina.Registros))
		termo := utils.Normalizar(consulta)
		for _, leilao := range pagina.Registros {
			if utils.ContemNormalizado(leilao.Titulo, termo) {
				filtrados = append(filtrados, leilao)
			}
		}
		pagina.Registros = filtrados
		pagina.TotalElementos = int64(len(filtrados))
	}

	c.JSON(http.StatusOK, pagina)
}

// Detalhar devolve o leilão público com um resumo em texto puro da descrição
// detalhada, que o vendedor escreve em markdown.
func (h *PublicoHandler) Detalhar(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	leilao, err := h.leiloes.BuscarPublicoPorID(c.Request.Context(), id)
	if err != nil {
		responderErro(c, err)
		return
	}
	if leilao == nil {
		c.JSON(http.StatusNotFound, gin.H{"erro": "Leilão não encontrado."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leilao": leilao,
		"resumo": utils.ResumirMarkdown(leilao.DescricaoDetalhada, 280),
	})
}
