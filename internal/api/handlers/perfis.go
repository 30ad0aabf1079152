package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/leilao-digital/app-console-admin/internal/avisos"
	"github.com/leilao-digital/app-console-admin/internal/controllers"
	"github.com/leilao-digital/app-console-admin/internal/filtros"
	"github.com/leilao-digital/app-console-admin/internal/models"
	"github.com/leilao-digital/app-console-admin/internal/recursos"
)

type PerfilHandler struct {
	perfis  *recursos.Perfis
	lista   *controllers.ControladorLista[models.Perfil]
	central *avisos.Central
}

func NewPerfilHandler(perfis *recursos.Perfis, central *avisos.Central) *PerfilHandler {
	return &PerfilHandler{
		perfis:  perfis,
		lista:   controllers.NovoControladorLista(perfis.BuscarComFiltros, filtros.FiltroPorNome(), central),
		central: central,
	}
}

// Listar pagina os perfis, com filtro opcional por nome.
func (h *PerfilHandler) Listar(c *gin.Context) {
	pagina, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	valores := map[string]any{"nome": c.Query("nome")}
	h.lista.Consultar(c.Request.Context(), valores, pagina, c.DefaultQuery("sortBy", "id"), c.DefaultQuery("sortDir", "asc"))

	responderLista(c, h.lista)
}

func (h *PerfilHandler) Criar(c *gin.Context) {
	var dados models.PerfilCriacao
	if err := c.ShouldBindJSON(&dados); err != nil {
		responderValidacao(c, err, dados)
		return
	}

	criado, err := h.perfis.Inserir(c.Request.Context(), dados)
	if err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Perfil cadastrado com sucesso.")
	c.JSON(http.StatusCreated, criado)
}

func (h *PerfilHandler) Excluir(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	if err := h.perfis.Excluir(c.Request.Context(), id); err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Perfil excluído.")
	c.Status(http.StatusNoContent)
}
