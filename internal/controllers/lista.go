package controllers

import (
	"context"
	"net/url"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/leilao-digital/app-console-admin/internal/filtros"
	"github.com/leilao-digital/app-console-admin/internal/models"
)

// Notificador recebe avisos destinados ao operador.
type Notificador interface {
	Publicar(tipo, mensagem string)
}

// BuscaLista é a função de listagem de um recurso, já com os parâmetros
// de filtro e paginação serializados.
type BuscaLista[T any] func(ctx context.Context, params url.Values) (models.Pagina[T], error)

// ControladorLista dirige uma tela de listagem paginada com filtros.
type ControladorLista[T any] struct {
	mu          sync.Mutex
	buscar      BuscaLista[T]
	filtros     *filtros.Conjunto
	notificador Notificador

	pagina     int
	tamanho    int
	ordenarPor string
	direcao    string

	geracao     uint64
	estado      Estado
	motivoVazio MotivoVazio
	dados       models.Pagina[T]
	temDados    bool
	erro        error
}

func NovoControladorLista[T any](buscar BuscaLista[T], conjunto *filtros.Conjunto, notificador Notificador) *ControladorLista[T] {
	return &ControladorLista[T]{
		buscar:      buscar,
		filtros:     conjunto,
		notificador: notificador,
		tamanho:     10,
		ordenarPor:  "id",
		direcao:     "desc",
		estado:      EstadoCarregando,
	}
}

// Carregar dispara uma carga explícita. Se outra carga for disparada antes
// desta responder, a resposta atrasada é descartada: vence a última emitida,
// não a última resolvida.
func (c *ControladorLista[T]) Carregar(ctx context.Context) {
	c.mu.Lock()
	c.estado = EstadoCarregando
	c.geracao++
	minha := c.geracao
	params := c.filtros.QueryPaginada(c.pagina, c.tamanho, c.ordenarPor, c.direcao)
	c.mu.Unlock()

	dados, err := c.buscar(ctx, params)
	c.aplicar(minha, dados, err, false)
}

// Recarregar atualiza os dados em segundo plano. Uma falha aqui não derruba
// a tela: os últimos dados bons permanecem e o operador só recebe um aviso.
func (c *ControladorLista[T]) Recarregar(ctx context.Context) {
	c.mu.Lock()
	c.geracao++
	minha := c.geracao
	params := c.filtros.QueryPaginada(c.pagina, c.tamanho, c.ordenarPor, c.direcao)
	c.mu.Unlock()

	dados, err := c.buscar(ctx, params)
	c.aplicar(minha, dados, err, true)
}

func (c *ControladorLista[T]) aplicar(minha uint64, dados models.Pagina[T], err error, segundoPlano bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if minha != c.geracao {
		log.Debug().Uint64("geracao", minha).Uint64("atual", c.geracao).Msg("resposta atrasada descartada")
		return
	}

	if err != nil {
		if segundoPlano && c.temDados {
			if c.notificador != nil {
				c.notificador.Publicar("erro", "Não foi possível atualizar a lista. Exibindo dados anteriores.")
			}
			c.estado = EstadoSucesso
			return
		}
		c.estado = EstadoErro
		c.erro = err
		return
	}

	c.erro = nil
	c.dados = dados
	c.temDados = true
	if len(dados.Registros) == 0 {
		c.estado = EstadoVazio
		if c.filtros.Ativos() > 0 {
			c.motivoVazio = VazioSemCorrespondencia
		} else {
			c.motivoVazio = VazioSemRegistros
		}
		return
	}
	c.estado = EstadoSucesso
}

// Consultar aplica filtros, paginação e ordenação de uma vez e dispara uma
// única carga. Intervalos inválidos voltam como erros por campo sem buscar.
func (c *ControladorLista[T]) Consultar(ctx context.Context, valores map[string]any, pagina int, ordenarPor, direcao string) map[string]string {
	if pagina < 0 {
		pagina = 0
	}
	if direcao != "asc" && direcao != "desc" {
		direcao = "desc"
	}

	c.mu.Lock()
	for campo, valor := range valores {
		c.filtros.Definir(campo, valor)
	}
	if erros := c.filtros.ValidarIntervalos(); len(erros) > 0 {
		c.mu.Unlock()
		return erros
	}
	c.pagina = pagina
	if ordenarPor != "" {
		c.ordenarPor = ordenarPor
	}
	c.direcao = direcao
	c.mu.Unlock()

	c.Carregar(ctx)
	return nil
}

// AplicarFiltros grava os valores no conjunto e recarrega da primeira
// página. Intervalos inválidos voltam como erros por campo e nada é buscado.
func (c *ControladorLista[T]) AplicarFiltros(ctx context.Context, valores map[string]any) map[string]string {
	c.mu.Lock()
	for campo, valor := range valores {
		c.filtros.Definir(campo, valor)
	}
	if erros := c.filtros.ValidarIntervalos(); len(erros) > 0 {
		c.mu.Unlock()
		return erros
	}
	c.pagina = 0
	c.mu.Unlock()

	c.Carregar(ctx)
	return nil
}

func (c *ControladorLista[T]) LimparFiltros(ctx context.Context) {
	c.mu.Lock()
	c.filtros.Limpar()
	c.pagina = 0
	c.mu.Unlock()

	c.Carregar(ctx)
}

func (c *ControladorLista[T]) IrParaPagina(ctx context.Context, pagina int) {
	if pagina < 0 {
		pagina = 0
	}
	c.mu.Lock()
	c.pagina = pagina
	c.mu.Unlock()

	c.Carregar(ctx)
}

func (c *ControladorLista[T]) DefinirOrdenacao(ctx context.Context, campo, direcao string) {
	if direcao != "asc" && direcao != "desc" {
		direcao = "asc"
	}
	c.mu.Lock()
	c.ordenarPor = campo
	c.direcao = direcao
	c.pagina = 0
	c.mu.Unlock()

	c.Carregar(ctx)
}

func (c *ControladorLista[T]) Estado() Estado {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.estado
}

func (c *ControladorLista[T]) MotivoVazio() MotivoVazio {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.motivoVazio
}

func (c *ControladorLista[T]) Dados() models.Pagina[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dados
}

func (c *ControladorLista[T]) Erro() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.erro
}

func (c *ControladorLista[T]) Pagina() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagina
}

func (c *ControladorLista[T]) Ordenacao() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ordenarPor, c.direcao
}

func (c *ControladorLista[T]) Filtros() *filtros.Conjunto {
	return c.filtros
}
