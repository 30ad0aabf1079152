package recursos

import (
	"context"
	"fmt"
	"io"

	"github.com/leilao-digital/app-console-admin/internal/apiclient"
	"github.com/leilao-digital/app-console-admin/internal/models"
)

// Imagens acessa o acervo de fotos dos leilões. O envio é multipart com o
// arquivo no campo "arquivo", como o backend espera.
type Imagens struct {
	cliente *apiclient.Client
}

func NovoImagens(cliente *apiclient.Client) *Imagens {
	return &Imagens{cliente: cliente}
}

func (i *Imagens) Enviar(ctx context.Context, leilaoID int64, nomeArquivo string, conteudo io.Reader) (*models.Imagem, error) {
	resposta, err := i.cliente.PostMultipart(ctx, fmt.Sprintf("/imagem/leilao/%d", leilaoID), "arquivo", nomeArquivo, conteudo)
	if err != nil {
		return nil, err
	}
	return decodificar[models.Imagem](resposta)
}

func (i *Imagens) BuscarPorLeilao(ctx context.Context, leilaoID int64) ([]models.Imagem, error) {
	pagina, err := listarNormalizado[models.Imagem](i.cliente.Get(ctx, fmt.Sprintf("/imagem/leilao/%d", leilaoID)))
	if err != nil {
		return []models.Imagem{}, err
	}
	return pagina.Registros, nil
}

// DefinirPrincipal elege a imagem de capa do leilão.
func (i *Imagens) DefinirPrincipal(ctx context.Context, leilaoID, imagemID int64) error {
	_, err := i.cliente.Put(ctx, fmt.Sprintf("/imagem/leilao/%d/principal/%d", leilaoID, imagemID), nil)
	return err
}

func (i *Imagens) Excluir(ctx context.Context, imagemID int64) error {
	_, err := i.cliente.Delete(ctx, fmt.Sprintf("/imagem/%d", imagemID))
	return err
}
