package recursos

import (
	"context"
	"net/url"

	"github.com/leilao-digital/app-console-admin/internal/apiclient"
	"github.com/leilao-digital/app-console-admin/internal/models"
)

type Categorias struct {
	Recurso[models.Categoria]
}

func NovoCategorias(cliente *apiclient.Client) *Categorias {
	return &Categorias{Recurso: novoRecurso[models.Categoria](cliente, "/categorias")}
}

func (c *Categorias) BuscarPorNome(ctx context.Context, nome string) (models.Pagina[models.Categoria], error) {
	params := url.Values{}
	params.Set("nome", nome)
	return listarNormalizado[models.Categoria](c.cliente.Get(ctx, "/categorias/buscar?"+params.Encode()))
}

// BuscarMinhas lista apenas as categorias criadas pelo usuário da sessão.
func (c *Categorias) BuscarMinhas(ctx context.Context) (models.Pagina[models.Categoria], error) {
	return listarNormalizado[models.Categoria](c.cliente.Get(ctx, "/categorias/minhas"))
}
