package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leilao-digital/app-console-admin/internal/forms"
)

// FormularioHandler valida formulários em andamento para o shell exibir
// erros campo a campo antes de submeter. Só erros de campos tocados são
// visíveis; a submissão valida tudo.
type FormularioHandler struct {
	fabricas map[string]func() *forms.Formulario
}

func NewFormularioHandler() *FormularioHandler {
	return &FormularioHandler{
		fabricas: map[string]func() *forms.Formulario{
			"leilao":        forms.FormularioLeilao,
			"categoria":     forms.FormularioCategoria,
			"login":         forms.FormularioLogin,
			"alterar-senha": forms.FormularioAlterarSenha,
		},
	}
}

type validacaoRequest struct {
	Valores map[string]any `json:"valores"`
	Tocados []string       `json:"tocados"`
	// Submeter força a validação de todos os campos, tocados ou não.
	Submeter bool `json:"submeter"`
}

func (h *FormularioHandler) Validar(c *gin.Context) {
	fabrica, ok := h.fabricas[c.Param("nome")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"erro": "Formulário desconhecido."})
		return
	}

	var req validacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Corpo inválido."})
		return
	}

	formulario := fabrica()
	for campo, valor := range req.Valores {
		formulario.DefinirValor(campo, valor)
	}
	for _, campo := range req.Tocados {
		formulario.MarcarTocado(campo)
	}

	if req.Submeter {
		formulario.ValidarTudo()
		c.JSON(http.StatusOK, gin.H{
			"valido": formulario.Valido(),
			"erros":  formulario.Erros(),
		})
		return
	}

	visiveis := map[string]string{}
	for campo := range req.Valores {
		if erro := formulario.ErroVisivel(campo); erro != "" {
			visiveis[campo] = erro
		}
	}
	for _, campo := range req.Tocados {
		if erro := formulario.ErroVisivel(campo); erro != "" {
			visiveis[campo] = erro
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"valido": formulario.Valido(),
		"erros":  visiveis,
	})
}
