package recursos

import (
	"context"
	"fmt"

	"github.com/leilao-digital/app-console-admin/internal/apiclient"
	"github.com/leilao-digital/app-console-admin/internal/models"
)

type Feedbacks struct {
	Recurso[models.Feedback]
}

func NovoFeedbacks(cliente *apiclient.Client) *Feedbacks {
	return &Feedbacks{Recurso: novoRecurso[models.Feedback](cliente, "/feedback")}
}

func (f *Feedbacks) BuscarPorLeilao(ctx context.Context, leilaoID int64) (models.Pagina[models.Feedback], error) {
	return listarNormalizado[models.Feedback](f.cliente.Get(ctx, fmt.Sprintf("/feedback/leilao/%d", leilaoID)))
}

func (f *Feedbacks) BuscarPorPessoa(ctx context.Context, pessoaID int64) (models.Pagina[models.Feedback], error) {
	return listarNormalizado[models.Feedback](f.cliente.Get(ctx, fmt.Sprintf("/feedback/pessoa/%d", pessoaID)))
}

// PodeAvaliar indica se o usuário da sessão ainda pode avaliar o leilão.
func (f *Feedbacks) PodeAvaliar(ctx context.Context, leilaoID int64) (bool, error) {
	resposta, err := f.cliente.Get(ctx, fmt.Sprintf("/feedback/pode-avaliar/%d", leilaoID))
	if err != nil {
		return false, err
	}
	var pode bool
	if err := resposta.JSON(&pode); err != nil {
		return false, fmt.Errorf("erro ao desserializar resposta: %w", err)
	}
	return pode, nil
}
