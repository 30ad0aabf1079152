package recursos

import (
	"context"
	"fmt"
	"net/url"

	"github.com/leilao-digital/app-console-admin/internal/apiclient"
	"github.com/leilao-digital/app-console-admin/internal/models"
)

// Leiloes acessa /leiloes e suas rotas auxiliares, incluindo as públicas
// usadas na pré-visualização e as transições de status.
type Leiloes struct {
	Recurso[models.Leilao]
}

func NovoLeiloes(cliente *apiclient.Client) *Leiloes {
	return &Leiloes{Recurso: novoRecurso[models.Leilao](cliente, "/leiloes")}
}

// BuscarComFiltros usa a rota dedicada de filtros do backend, que aceita
// intervalos de data e de lance mínimo além dos campos simples.
func (l *Leiloes) BuscarComFiltros(ctx context.Context, params url.Values) (models.Pagina[models.Leilao], error) {
	caminho := "/leiloes/filtros"
	if len(params) > 0 {
		caminho += "?" + params.Encode()
	}
	return listarNormalizado[models.Leilao](l.cliente.Get(ctx, caminho))
}

func (l *Leiloes) BuscarMeus(ctx context.Context, params url.Values) (models.Pagina[models.Leilao], error) {
	caminho := "/leiloes/meus"
	if len(params) > 0 {
		caminho += "?" + params.Encode()
	}
	return listarNormalizado[models.Leilao](l.cliente.Get(ctx, caminho))
}

func (l *Leiloes) BuscarPorStatus(ctx context.Context, status models.StatusLeilao) (models.Pagina[models.Leilao], error) {
	return listarNormalizado[models.Leilao](l.cliente.Get(ctx, "/leiloes/status/"+string(status)))
}

func (l *Leiloes) BuscarPorTitulo(ctx context.Context, titulo string) (models.Pagina[models.Leilao], error) {
	params := url.Values{}
	params.Set("titulo", titulo)
	return listarNormalizado[models.Leilao](l.cliente.Get(ctx, "/leiloes/buscar?"+params.Encode()))
}

// BuscarPublicos lista a vitrine sem credencial, como o visitante a vê.
func (l *Leiloes) BuscarPublicos(ctx context.Context, params url.Values) (models.Pagina[models.Leilao], error) {
	caminho := "/leiloes/publicos"
	if len(params) > 0 {
		caminho += "?" + params.Encode()
	}
	return listarNormalizado[models.Leilao](l.cliente.GetPublico(ctx, caminho))
}

func (l *Leiloes) BuscarPublicoPorID(ctx context.Context, id int64) (*models.Leilao, error) {
	resposta, err := l.cliente.GetPublico(ctx, fmt.Sprintf("/leiloes/publicos/%d", id))
	if err != nil {
		return nil, err
	}
	return decodificar[models.Leilao](resposta)
}

func (l *Leiloes) Abrir(ctx context.Context, id int64) (*models.Leilao, error) {
	return l.transicao(ctx, id, "abrir")
}

func (l *Leiloes) Encerrar(ctx context.Context, id int64) (*models.Leilao, error) {
	return l.transicao(ctx, id, "encerrar")
}

func (l *Leiloes) Cancelar(ctx context.Context, id int64) (*models.Leilao, error) {
	return l.transicao(ctx, id, "cancelar")
}

func (l *Leiloes) transicao(ctx context.Context, id int64, acao string) (*models.Leilao, error) {
	resposta, err := l.cliente.Put(ctx, fmt.Sprintf("/leiloes/%d/%s", id, acao), nil)
	if err != nil {
		return nil, err
	}
	return decodificar[models.Leilao](resposta)
}
