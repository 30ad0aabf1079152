package recursos

import (
	"context"
	"fmt"
	"net/url"

	"github.com/leilao-digital/app-console-admin/internal/apiclient"
	"github.com/leilao-digital/app-console-admin/internal/models"
)

type Pessoas struct {
	Recurso[models.Pessoa]
}

func NovoPessoas(cliente *apiclient.Client) *Pessoas {
	return &Pessoas{Recurso: novoRecurso[models.Pessoa](cliente, "/pessoa")}
}

// BuscarMe devolve o cadastro do usuário da sessão corrente.
func (p *Pessoas) BuscarMe(ctx context.Context) (*models.Pessoa, error) {
	resposta, err := p.cliente.Get(ctx, "/pessoa/me")
	if err != nil {
		return nil, err
	}
	return decodificar[models.Pessoa](resposta)
}

func (p *Pessoas) AlterarSenha(ctx context.Context, dados models.AlterarSenha) error {
	_, err := p.cliente.Put(ctx, "/pessoa/alterar-senha", dados)
	return err
}

// RecuperarSenha dispara o e-mail de recuperação. A rota é pública: o
// usuário que a aciona não tem sessão.
func (p *Pessoas) RecuperarSenha(ctx context.Context, email string) error {
	params := url.Values{}
	params.Set("email", email)
	_, err := p.cliente.PostPublico(ctx, "/pessoa/recuperar-senha?"+params.Encode(), nil)
	return err
}

func (p *Pessoas) RedefinirSenha(ctx context.Context, dados models.RedefinirSenha) error {
	_, err := p.cliente.PostPublico(ctx, "/pessoa/redefinir-senha", dados)
	return err
}

// AdicionarPerfil associa um perfil de acesso à pessoa.
func (p *Pessoas) AdicionarPerfil(ctx context.Context, vinculo models.PessoaPerfil) error {
	_, err := p.cliente.Post(ctx, "/pessoa-perfil", vinculo)
	return err
}

func (p *Pessoas) RemoverPerfil(ctx context.Context, pessoaID, perfilID int64) error {
	_, err := p.cliente.Delete(ctx, fmt.Sprintf("/pessoa-perfil/%d/%d", pessoaID, perfilID))
	return err
}
