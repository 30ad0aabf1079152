package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Erros sentinela da camada HTTP. Camadas superiores testam com errors.Is.
var (
	ErrNaoEncontrado = errors.New("recurso não encontrado")
	ErrNaoAutorizado = errors.New("sessão não autorizada")
	ErrAcessoNegado  = errors.New("acesso negado")
	ErrServidor      = errors.New("erro interno do servidor")
	ErrRede          = errors.New("falha de comunicação com a API")
)

// ErroAPI carrega o status e o corpo devolvidos pela API em caso de falha.
type ErroAPI struct {
	Status int
	Corpo  []byte
}

func (e *ErroAPI) Error() string {
	if msg := e.Mensagem(); msg != "" {
		return fmt.Sprintf("api respondeu %d: %s", e.Status, msg)
	}
	return fmt.Sprintf("api respondeu %d", e.Status)
}

// Unwrap mapeia o status HTTP para o erro sentinela correspondente.
func (e *ErroAPI) Unwrap() error {
	switch {
	case e.Status == http.StatusNotFound:
		return ErrNaoEncontrado
	case e.Status == http.StatusUnauthorized:
		return ErrNaoAutorizado
	case e.Status == http.StatusForbidden:
		return ErrAcessoNegado
	case e.Status >= http.StatusInternalServerError:
		return ErrServidor
	}
	return nil
}

// Mensagem extrai a mensagem de erro do corpo, quando o backend envia uma.
func (e *ErroAPI) Mensagem() string {
	var corpo struct {
		Mensagem string `json:"mensagem"`
		Erro     string `json:"erro"`
	}
	if err := json.Unmarshal(e.Corpo, &corpo); err == nil {
		if corpo.Mensagem != "" {
			return corpo.Mensagem
		}
		return corpo.Erro
	}
	return ""
}
