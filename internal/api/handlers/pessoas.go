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

type PessoaHandler struct {
	pessoas *recursos.Pessoas
	lista   *controllers.ControladorLista[models.Pessoa]
	central *avisos.Central
}

func NewPessoaHandler(pessoas *recursos.Pessoas, central *avisos.Central) *PessoaHandler {
	return &PessoaHandler{
		pessoas: pessoas,
		lista:   controllers.NovoControladorLista(pessoas.BuscarComFiltros, filtros.FiltroPessoas(), central),
		central: central,
	}
}

func (h *PessoaHandler) Listar(c *gin.Context) {
	valores := map[string]any{
		"nome":  c.Query("nome"),
		"email": c.Query("email"),
		"ativo": comoBoolOuNil(c.Query("ativo")),
	}

	pagina, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	h.lista.Consultar(c.Request.Context(), valores, pagina, c.DefaultQuery("sortBy", "nome"), c.DefaultQuery("sortDir", "asc"))

	responderLista(c, h.lista)
}

func comoBoolOuNil(valor string) any {
	switch valor {
	case "true":
		return true
	case "false":
		return false
	}
	return nil
}

// Me devolve o cadastro do operador logado.
func (h *PessoaHandler) Me(c *gin.Context) {
	pessoa, err := h.pessoas.BuscarMe(c.Request.Context())
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, pessoa)
}

func (h *PessoaHandler) Detalhar(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	pessoa, err := h.pessoas.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, pessoa)
}

func (h *PessoaHandler) Criar(c *gin.Context) {
	var dados models.PessoaCriacao
	if err := c.ShouldBindJSON(&dados); err != nil {
		dados.Senha = ""
		responderValidacao(c, err, dados)
		return
	}

	criada, err := h.pessoas.Inserir(c.Request.Context(), dados)
	if err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Pessoa cadastrada com sucesso.")
	c.JSON(http.StatusCreated, criada)
}

func (h *PessoaHandler) Atualizar(c *gin.Context) {
	id, ok := idDaRota(c)
	if !ok {
		return
	}

	var dados models.PessoaCriacao
	if err := c.ShouldBindJSON(&dados); err != nil {
		dados.Senha = ""
		responderValidacao(c, err, dados)
		return
	}

	atualizada, err := h.pessoas.Atualizar(c.Request.Context(), id, dados)
	if err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Cadastro atualizado com sucesso.")
	c.JSON(http.StatusOK, atualizada)
}

// AlterarSenha troca a senha do operador logado. A senha nunca é ecoada na
// resposta, nem quando a validação falha.
func (h *PessoaHandler) AlterarSenha(c *gin.Context) {
	var dados models.AlterarSenha
	if err := c.ShouldBindJSON(&dados); err != nil {
		responderValidacao(c, err, gin.H{})
		return
	}

	if err := h.pessoas.AlterarSenha(c.Request.Context(), dados); err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Senha alterada com sucesso.")
	c.Status(http.StatusNoContent)
}

// RecuperarSenha é pública: dispara o e-mail de recuperação.
func (h *PessoaHandler) RecuperarSenha(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "E-mail é obrigatório."})
		return
	}

	if err := h.pessoas.RecuperarSenha(c.Request.Context(), email); err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "Se o e-mail existir, as instruções foram enviadas."})
}

// RedefinirSenha é pública: troca a senha usando o código recebido por e-mail.
func (h *PessoaHandler) RedefinirSenha(c *gin.Context) {
	var dados models.RedefinirSenha
	if err := c.ShouldBindJSON(&dados); err != nil {
		responderValidacao(c, err, gin.H{})
		return
	}

	if err := h.pessoas.RedefinirSenha(c.Request.Context(), dados); err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "Senha redefinida com sucesso."})
}

func (h *PessoaHandler) AdicionarPerfil(c *gin.Context) {
	var vinculo models.PessoaPerfil
	if err := c.ShouldBindJSON(&vinculo); err != nil {
		responderValidacao(c, err, vinculo)
		return
	}

	if err := h.pessoas.AdicionarPerfil(c.Request.Context(), vinculo); err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Perfil associado à pessoa.")
	c.Status(http.StatusNoContent)
}

func (h *PessoaHandler) RemoverPerfil(c *gin.Context) {
	pessoaID, err := strconv.ParseInt(c.Param("pessoaId"), 10, 64)
	if err != nil || pessoaID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Identificador de pessoa inválido."})
		return
	}
	perfilID, err := strconv.ParseInt(c.Param("perfilId"), 10, 64)
	if err != nil || perfilID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Identificador de perfil inválido."})
		return
	}

	if err := h.pessoas.RemoverPerfil(c.Request.Context(), pessoaID, perfilID); err != nil {
		responderErro(c, err)
		return
	}

	h.central.Publicar(avisos.TipoSucesso, "Perfil removido da pessoa.")
	c.Status(http.StatusNoContent)
}
