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

type CategoriaHandler struct {
	categorias *recursos.Categorias
	lista      *controllers.ControladorLista[models.Categoria]
	central    *avisos.Central
}

func NewCategoriaHandler(categorias *recursos.Categorias, central *avisos.Central) *CategoriaHandler {
	return &CategoriaHandler{
		categorias: categorias,
		lista:      controllers.NovoControladorLista(categorias.BuscarComFiltros, filtros.FiltroPorNome(), central),
		central:    central,
	}
}

// Listar pagina as categorias; com o parâmetro busca, usa a rota de busca
// por nome do backend.
func (h *CategoriaHandler) Listar(c *gin.Context) {
	if nome := c.Query("busca"); nome != "" {
		pagina, err := h.categorias.BuscarPorNome(c.Request.Context(), nome)
		if err != nil {
			responderErro(c, err)
			return
		}
		c.JSON(http.StatusOK, pagina)
		return
	}

	pagina, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	valores := map[string]any{"nome": c.Query("nome")}
	h.lista.Consultar(c.Request.Context(), valores, pagina, c.DefaultQuery("sortBy", "nome"), c.DefaultQuery("sortDir", "asc"))

	responderLista(c, h.lista)
}

func (h *CategoriaHandler) Minhas(c *gin.Context) {
	pagina, err := h.categorias.BuscarMinhas(c.Request.Context())
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, pagina)
}

func (h *CategoriaHandler) Detalhar(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	categoria, err := h.categorias.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, categoria)
}

func (h *CategoriaHandler) Criar(c *gin.Context) {
	var dados models.CategoriaCriacao
	if err := c.ShouldBindJSON(&dados); err != nil {
		responderValidacao(c, err, dados)
		return
	}

	criada, err := h.categorias.Inserir(c.Request.Context(), dados)
	if err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Categoria cadastrada com sucesso.")
	c.JSON(http.StatusCreated, criada)
}

func (h *CategoriaHandler) Atualizar(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	var dados models.CategoriaCriacao
	if err := c.ShouldBindJSON(&dados); err != nil {
		responderValidacao(c, err, dados)
		return
	}

	atualizada, err := h.categorias.Atualizar(c.Request.Context(), id, dados)
	if err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Categoria atualizada com sucesso.")
	c.JSON(http.StatusOK, atualizada)
}

func (h *CategoriaHandler) Excluir(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	if err := h.categorias.Excluir(c.Request.Context(), id); err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Categoria excluída.")
	c.Status(http.StatusNoContent)
}
