// Package handlers expõe a superfície HTTP do console: um handler por tela,
// traduzindo requisições do shell do navegador em chamadas aos recursos e
// controladores.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/leilao-digital/app-console-admin/internal/apiclient"
	"github.com/leilao-digital/app-console-admin/internal/controllers"
)

// responderLista serializa o estado corrente de um controlador de listagem.
func responderLista[T any](c *gin.Context, lista *controllers.ControladorLista[T]) {
	if lista.Estado() == controllers.EstadoErro {
		responderErro(c, lista.Erro())
		return
	}

	resposta := gin.H{
		"estado":        lista.Estado(),
		"dados":         lista.Dados(),
		"pagina":        lista.Pagina(),
		"filtrosAtivos": lista.Filtros().Ativos(),
	}
	if lista.Estado() == controllers.EstadoVazio {
		resposta["motivoVazio"] = lista.MotivoVazio()
	}
	c.JSON(http.StatusOK, resposta)
}

// responderErro traduz os erros do cliente da API em status HTTP do console.
// A mensagem do backend é preservada quando existe.
func responderErro(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	mensagem := "Erro inesperado ao falar com a API."

	switch {
	case errors.Is(err, apiclient.ErrNaoEncontrado):
		status = http.StatusNotFound
		mensagem = "Registro não encontrado."
	case errors.Is(err, apiclient.ErrNaoAutorizado):
		status = http.StatusUnauthorized
		mensagem = "Sessão expirada. Faça login novamente."
	case errors.Is(err, apiclient.ErrAcessoNegado):
		status = http.StatusForbidden
		mensagem = "Acesso negado."
	case errors.Is(err, apiclient.ErrRede):
		status = http.StatusBadGateway
		mensagem = "Não foi possível contactar a API de leilões."
	}

	var erroAPI *apiclient.ErroAPI
	if errors.As(err, &erroAPI) {
		if m := erroAPI.Mensagem(); m != "" {
			mensagem = m
		}
	}

	c.JSON(status, gin.H{"erro": mensagem})
}

// responderValidacao devolve 400 com erros por campo e ecoa os valores
// enviados, para que o formulário não perca o que o operador digitou.
func responderValidacao(c *gin.Context, err error, valores any) {
	c.JSON(http.StatusBadRequest, gin.H{
		"erro":    "Dados inválidos.",
		"campos":  detalharValidacao(err),
		"valores": valores,
	})
}

func detalharValidacao(err error) map[string]string {
	campos := map[string]string{}

	var violacoes validator.ValidationErrors
	if !errors.As(err, &violacoes) {
		campos["_geral"] = err.Error()
		return campos
	}

	for _, violacao := range violacoes {
		switch violacao.Tag() {
		case "required":
			campos[violacao.Field()] = "Campo obrigatório"
		case "email":
			campos[violacao.Field()] = "E-mail inválido"
		case "max":
			campos[violacao.Field()] = "Valor acima do tamanho máximo de " + violacao.Param()
		case "min":
			campos[violacao.Field()] = "Valor abaixo do tamanho mínimo de " + violacao.Param()
		case "gt":
			campos[violacao.Field()] = "Deve ser maior que " + violacao.Param()
		case "gte":
			campos[violacao.Field()] = "Deve ser maior ou igual a " + violacao.Param()
		default:
			campos[violacao.Field()] = "Valor inválido"
		}
	}
	return campos
}
