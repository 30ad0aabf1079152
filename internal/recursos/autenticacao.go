package recursos

import (
	"context"
	"fmt"

	"github.com/leilao-digital/app-console-admin/internal/apiclient"
	"github.com/leilao-digital/app-console-admin/internal/models"
)

// Autenticacao troca credenciais por uma sessão no backend. O login é a
// única chamada sempre pública: não faz sentido anexar token antes de tê-lo.
type Autenticacao struct {
	cliente *apiclient.Client
}

func NovoAutenticacao(cliente *apiclient.Client) *Autenticacao {
	return &Autenticacao{cliente: cliente}
}

func (a *Autenticacao) Login(ctx context.Context, credenciais models.Credenciais) (*models.Sessao, error) {
	resposta, err := a.cliente.PostPublico(ctx, "/auth/login", credenciais)
	if err != nil {
		return nil, err
	}
	var sessao models.Sessao
	if err := resposta.JSON(&sessao); err != nil {
		return nil, fmt.Errorf("erro ao desserializar resposta: %w", err)
	}
	return &sessao, nil
}
