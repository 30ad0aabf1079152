package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/leilao-digital/app-console-admin/internal/avisos"
	"github.com/leilao-digital/app-console-admin/internal/controllers"
	"github.com/leilao-digital/app-console-admin/internal/filtros"
	"github.com/leilao-digital/app-console-admin/internal/forms"
	"github.com/leilao-digital/app-console-admin/internal/models"
	"github.com/leilao-digital/app-console-admin/internal/recursos"
)

// LeilaoHandler cobre a listagem filtrada, o detalhe e todas as mutações de
// leilão, incluindo as transições de status.
type LeilaoHandler struct {
	leiloes *recursos.Leiloes
	lista   *controllers.ControladorLista[models.Leilao]
	detalhe *controllers.ControladorDetalhe[models.Leilao]
	central *avisos.Central
}

func NewLeilaoHandler(leiloes *recursos.Leiloes, central *avisos.Central) *LeilaoHandler {
	return &LeilaoHandler{
		leiloes: leiloes,
		lista:   controllers.NovoControladorLista(leiloes.BuscarComFiltros, filtros.FiltroLeiloes(), central),
		detalhe: controllers.NovoControladorDetalhe(leiloes.BuscarPorID),
		central: central,
	}
}

// Listar aplica os filtros da query string e devolve a página corrente junto
// com o estado da tela.
func (h *LeilaoHandler) Listar(c *gin.Context) {
	valores := map[string]any{
		"titulo":             c.Query("titulo"),
		"status":             c.Query("status"),
		"categoriaId":        c.Query("categoriaId"),
		"categoriaNome":      c.Query("categoriaNome"),
		"dataHoraInicioFrom": c.Query("dataHoraInicioFrom"),
		"dataHoraInicioTo":   c.Query("dataHoraInicioTo"),
		"dataHoraFimFrom":    c.Query("dataHoraFimFrom"),
		"dataHoraFimTo":      c.Query("dataHoraFimTo"),
		"lanceMinFrom":       comoFloatOuNil(c.Query("lanceMinFrom")),
		"lanceMinTo":         comoFloatOuNil(c.Query("lanceMinTo")),
	}

	pagina, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	ordenarPor := c.DefaultQuery("sortBy", "id")
	direcao := c.DefaultQuery("sortDir", "desc")

	if erros := h.lista.Consultar(c.Request.Context(), valores, pagina, ordenarPor, direcao); len(erros) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Filtros inválidos.", "campos": erros})
		return
	}

	responderLista(c, h.lista)
}

// LimparFiltros zera o conjunto de filtros e recarrega a primeira página.
func (h *LeilaoHandler) LimparFiltros(c *gin.Context) {
	h.lista.LimparFiltros(c.Request.Context())
	responderLista(c, h.lista)
}

// Detalhar devolve o leilão com as ações de status disponíveis para ele.
func (h *LeilaoHandler) Detalhar(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	h.detalhe.Carregar(c.Request.Context(), id)

	switch h.detalhe.Estado() {
	case controllers.EstadoVazio:
		c.JSON(http.StatusNotFound, gin.H{"erro": "Leilão não encontrado."})
	case controllers.EstadoErro:
		responderErro(c, h.detalhe.Erro())
	default:
		registro := h.detalhe.Registro()
		c.JSON(http.StatusOK, gin.H{
			"leilao": registro,
			"acoes": gin.H{
				"podeAbrir":    controllers.PodeAbrir(registro),
				"podeEncerrar": controllers.PodeEncerrar(registro),
				"podeCancelar": controllers.PodeEncerrar(registro),
			},
		})
	}
}

func (h *LeilaoHandler) Criar(c *gin.Context) {
	var dados models.LeilaoCriacao
	if err := c.ShouldBindJSON(&dados); err != nil {
		responderValidacao(c, err, dados)
		return
	}
	if campos := validarLeilao(dados); len(campos) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados inválidos.", "campos": campos, "valores": dados})
		return
	}

	criado, err := h.leiloes.Inserir(c.Request.Context(), dados)
	if err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Leilão cadastrado com sucesso.")
	c.JSON(http.StatusCreated, criado)
}

func (h *LeilaoHandler) Atualizar(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	var dados models.LeilaoCriacao
	if err := c.ShouldBindJSON(&dados); err != nil {
		responderValidacao(c, err, dados)
		return
	}
	if campos := validarLeilao(dados); len(campos) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados inválidos.", "campos": campos, "valores": dados})
		return
	}

	atualizado, err := h.leiloes.Atualizar(c.Request.Context(), id, dados)
	if err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Leilão atualizado com sucesso.")
	c.JSON(http.StatusOK, atualizado)
}

func (h *LeilaoHandler) Excluir(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	if err := h.leiloes.Excluir(c.Request.Context(), id); err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Leilão excluído.")
	c.Status(http.StatusNoContent)
}

func (h *LeilaoHandler) Abrir(c *gin.Context) {
	h.transicao(c, "abrir", "Leilão aberto para lances.")
}

func (h *LeilaoHandler) Encerrar(c *gin.Context) {
	h.transicao(c, "encerrar", "Leilão encerrado.")
}

func (h *LeilaoHandler) Cancelar(c *gin.Context) {
	h.transicao(c, "cancelar", "Leilão cancelado.")
}

func (h *LeilaoHandler) transicao(c *gin.Context, acao, mensagem string) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	var leilao *models.Leilao
	var err error
	ctx := c.Request.Context()

	switch acao {
	case "abrir":
		leilao, err = h.leiloes.Abrir(ctx, id)
	case "encerrar":
		leilao, err = h.leiloes.Encerrar(ctx, id)
	case "cancelar":
		leilao, err = h.leiloes.Cancelar(ctx, id)
	}
	if err != nil {
		log.Warn().Err(err).Int64("id", id).Str("acao", acao).Msg("transição de status recusada")
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, mensagem)
	c.JSON(http.StatusOK, leilao)
}

// Meus lista os leilões criados pelo usuário da sessão.
func (h *LeilaoHandler) Meus(c *gin.Context) {
	pagina, err := h.leiloes.BuscarMeus(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, pagina)
}

// PorStatus lista os leilões que estão em um status específico do ciclo
// de vida, usado nos atalhos do painel.
func (h *LeilaoHandler) PorStatus(c *gin.Context) {
	status := models.StatusLeilao(c.Param("status"))
	if !status.Valido() {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Status desconhecido."})
		return
	}

	pagina, err := h.leiloes.BuscarPorStatus(c.Request.Context(), status)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, pagina)
}

func (h *LeilaoHandler) BuscarPorTitulo(c *gin.Context) {
	titulo := c.Query("titulo")
	if titulo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Termo de busca é obrigatório."})
		return
	}

	pagina, err := h.leiloes.BuscarPorTitulo(c.Request.Context(), titulo)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, pagina)
}

func idDaRota(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Identificador inválido."})
		return 0, false
	}
	return id, true
}

// validarLeilao roda as regras do formulário de leilão sobre o payload já
// decodificado. As tags de binding não expressam regras entre campos, como
// a data de fim ter de ser posterior à de início.
func validarLeilao(dados models.LeilaoCriacao) map[string]string {
	formulario := forms.FormularioLeilao()
	formulario.DefinirValor("titulo", dados.Titulo)
	formulario.DefinirValor("descricao", dados.Descricao)
	formulario.DefinirValor("dataHoraInicio", dados.DataHoraInicio)
	formulario.DefinirValor("dataHoraFim", dados.DataHoraFim)
	formulario.DefinirValor("lanceMinimo", dados.LanceMinimo)
	formulario.DefinirValor("categoriaId", dados.CategoriaID)
	if formulario.ValidarTudo() {
		return nil
	}
	return formulario.Erros()
}

func comoFloatOuNil(valor string) any {
	if valor == "" {
		return nil
	}
	numero, err := strconv.ParseFloat(valor, 64)
	if err != nil {
		return nil
	}
	return numero
}
