package controllers

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leilao-digital/app-console-admin/internal/apiclient"
	"github.com/leilao-digital/app-console-admin/internal/filtros"
	"github.com/leilao-digital/app-console-admin/internal/models"
)

type notificadorMemoria struct {
	mu      sync.Mutex
	avisos  []string
	publica int
}

func (n *notificadorMemoria) Publicar(tipo, mensagem string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.publica++
	n.avisos = append(n.avisos, tipo+": "+mensagem)
}

func paginaDe(titulos ...string) models.Pagina[models.Leilao] {
	registros := make([]models.Leilao, 0, len(titulos))
	for i, titulo := range titulos {
		registros = append(registros, models.Leilao{ID: int64(i + 1), Titulo: titulo})
	}
	return models.Pagina[models.Leilao]{Registros: registros, TotalElementos: int64(len(registros))}
}

func TestListaCargaInicialComSucesso(t *testing.T) {
	buscar := func(ctx context.Context, params url.Values) (models.Pagina[models.Leilao], error) {
		assert.Equal(t, "0", params.Get("page"))
		assert.Equal(t, "10", params.Get("size"))
		return paginaDe("Notebook", "Bicicleta"), nil
	}
	controlador := NovoControladorLista(buscar, filtros.FiltroLeiloes(), nil)

	controlador.Carregar(context.Background())

	assert.Equal(t, EstadoSucesso, controlador.Estado())
	assert.Len(t, controlador.Dados().Registros, 2)
	assert.NoError(t, controlador.Erro())
}

func TestListaCargaInicialComErro(t *testing.T) {
	falha := errors.New("api fora do ar")
	buscar := func(ctx context.Context, params url.Values) (models.Pagina[models.Leilao], error) {
		return models.Pagina[models.Leilao]{Registros: []models.Leilao{}}, falha
	}
	controlador := NovoControladorLista(buscar, filtros.FiltroLeiloes(), nil)

	controlador.Carregar(context.Background())

	assert.Equal(t, EstadoErro, controlador.Estado())
	assert.ErrorIs(t, controlador.Erro(), falha)
}

func TestListaVaziaDistingueMotivo(t *testing.T) {
	buscar := func(ctx context.Context, params url.Values) (models.Pagina[models.Leilao], error) {
		return models.Pagina[models.Leilao]{Registros: []models.Leilao{}}, nil
	}

	t.Run("sem registros na base", func(t *testing.T) {
		controlador := NovoControladorLista(buscar, filtros.FiltroLeiloes(), nil)
		controlador.Carregar(context.Background())

		assert.Equal(t, EstadoVazio, controlador.Estado())
		assert.Equal(t, VazioSemRegistros, controlador.MotivoVazio())
	})

	t.Run("nada corresponde aos filtros", func(t *testing.T) {
		conjunto := filtros.FiltroLeiloes()
		conjunto.Definir("titulo", "inexistente")
		controlador := NovoControladorLista(buscar, conjunto, nil)
		controlador.Carregar(context.Background())

		assert.Equal(t, EstadoVazio, controlador.Estado())
		assert.Equal(t, VazioSemCorrespondencia, controlador.MotivoVazio())
	})
}

func TestListaRespostaAtrasadaNaoSobrescreve(t *testing.T) {
	entrou := make(chan struct{})
	liberar := make(chan struct{})
	primeira := true
	var mu sync.Mutex

	buscar := func(ctx context.Context, params url.Values) (models.Pagina[models.Leilao], error) {
		mu.Lock()
		souPrimeira := primeira
		primeira = false
		mu.Unlock()
		if souPrimeira {
			close(entrou)
			<-liberar
			return paginaDe("resposta velha"), nil
		}
		return paginaDe("resposta nova"), nil
	}
	controlador := NovoControladorLista(buscar, filtros.FiltroLeiloes(), nil)

	var espera sync.WaitGroup
	espera.Add(1)
	go func() {
		defer espera.Done()
		controlador.Carregar(context.Background())
	}()

	<-entrou
	controlador.Carregar(context.Background())
	require.Equal(t, "resposta nova", controlador.Dados().Registros[0].Titulo)

	close(liberar)
	espera.Wait()

	assert.Equal(t, "resposta nova", controlador.Dados().Registros[0].Titulo)
	assert.Equal(t, EstadoSucesso, controlador.Estado())
}

func TestListaRecarregarComFalhaPreservaDados(t *testing.T) {
	chamadas := 0
	buscar := func(ctx context.Context, params url.Values) (models.Pagina[models.Leilao], error) {
		chamadas++
		if chamadas == 1 {
			return paginaDe("Notebook"), nil
		}
		return models.Pagina[models.Leilao]{Registros: []models.Leilao{}}, errors.New("timeout")
	}
	notificador := &notificadorMemoria{}
	controlador := NovoControladorLista(buscar, filtros.FiltroLeiloes(), notificador)

	controlador.Carregar(context.Background())
	controlador.Recarregar(context.Background())

	assert.Equal(t, EstadoSucesso, controlador.Estado())
	require.Len(t, controlador.Dados().Registros, 1)
	assert.Equal(t, "Notebook", controlador.Dados().Registros[0].Titulo)
	assert.Equal(t, 1, notificador.publica)
}

func TestListaAplicarFiltrosIntervaloInvalidoNaoBusca(t *testing.T) {
	chamadas := 0
	buscar := func(ctx context.Context, params url.Values) (models.Pagina[models.Leilao], error) {
		chamadas++
		return paginaDe("Notebook"), nil
	}
	controlador := NovoControladorLista(buscar, filtros.FiltroLeiloes(), nil)

	erros := controlador.AplicarFiltros(context.Background(), map[string]any{
		"lanceMinFrom": 500.0,
		"lanceMinTo":   100.0,
	})

	require.NotEmpty(t, erros)
	assert.Contains(t, erros, "lanceMinFrom")
	assert.Zero(t, chamadas)
}

func TestListaAplicarFiltrosVoltaParaPrimeiraPagina(t *testing.T) {
	var ultimaPagina string
	buscar := func(ctx context.Context, params url.Values) (models.Pagina[models.Leilao], error) {
		ultimaPagina = params.Get("page")
		return paginaDe("Notebook"), nil
	}
	controlador := NovoControladorLista(buscar, filtros.FiltroLeiloes(), nil)

	controlador.IrParaPagina(context.Background(), 3)
	require.Equal(t, "3", ultimaPagina)

	erros := controlador.AplicarFiltros(context.Background(), map[string]any{"titulo": "mesa"})

	assert.Nil(t, erros)
	assert.Equal(t, "0", ultimaPagina)
	assert.Equal(t, 0, controlador.Pagina())
}

func TestListaLimparFiltrosRecarrega(t *testing.T) {
	var ultimosParams url.Values
	buscar := func(ctx context.Context, params url.Values) (models.Pagina[models.Leilao], error) {
		ultimosParams = params
		return paginaDe("Notebook"), nil
	}
	conjunto := filtros.FiltroLeiloes()
	controlador := NovoControladorLista(buscar, conjunto, nil)

	controlador.AplicarFiltros(context.Background(), map[string]any{"titulo": "mesa"})
	require.Equal(t, "mesa", ultimosParams.Get("titulo"))

	controlador.LimparFiltros(context.Background())

	assert.Empty(t, ultimosParams.Get("titulo"))
	assert.Zero(t, conjunto.Ativos())
}

func TestDetalheEstados(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		buscar := func(ctx context.Context, id int64) (*models.Leilao, error) {
			return &models.Leilao{ID: id, Titulo: "Bicicleta", Status: models.StatusAtivo}, nil
		}
		controlador := NovoControladorDetalhe(buscar)
		controlador.Carregar(context.Background(), 7)

		assert.Equal(t, EstadoSucesso, controlador.Estado())
		require.NotNil(t, controlador.Registro())
		assert.Equal(t, int64(7), controlador.Registro().ID)
	})

	t.Run("inexistente vira vazio", func(t *testing.T) {
		buscar := func(ctx context.Context, id int64) (*models.Leilao, error) {
			return nil, &apiclient.ErroAPI{Status: 404}
		}
		controlador := NovoControladorDetalhe(buscar)
		controlador.Carregar(context.Background(), 99)

		assert.Equal(t, EstadoVazio, controlador.Estado())
		assert.Nil(t, controlador.Registro())
		assert.NoError(t, controlador.Erro())
	})

	t.Run("falha de rede vira erro", func(t *testing.T) {
		falha := errors.New("conexão recusada")
		buscar := func(ctx context.Context, id int64) (*models.Leilao, error) {
			return nil, falha
		}
		controlador := NovoControladorDetalhe(buscar)
		controlador.Carregar(context.Background(), 7)

		assert.Equal(t, EstadoErro, controlador.Estado())
		assert.ErrorIs(t, controlador.Erro(), falha)
	})
}

func TestPortoesDeStatus(t *testing.T) {
	tests := []struct {
		status       models.StatusLeilao
		podeAbrir    bool
		podeEncerrar bool
	}{
		{models.StatusEmAnalise, true, false},
		{models.StatusInativo, true, false},
		{models.StatusAtivo, false, true},
		{models.StatusEncerrado, false, false},
		{models.StatusCancelado, false, false},
	}

	for _, test := range tests {
		t.Run(string(test.status), func(t *testing.T) {
			leilao := &models.Leilao{Status: test.status}
			assert.Equal(t, test.podeAbrir, PodeAbrir(leilao))
			assert.Equal(t, test.podeEncerrar, PodeEncerrar(leilao))
		})
	}

	assert.False(t, PodeAbrir(nil))
	assert.False(t, PodeEncerrar(nil))
}
