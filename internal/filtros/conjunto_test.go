package filtros

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAtivosIgnoraVazios(t *testing.T) {
	filtro := FiltroLeiloes()
	assert.Equal(t, 0, filtro.Ativos())

	filtro.Definir("status", "ATIVO")
	assert.Equal(t, 1, filtro.Ativos())

	filtro.Definir("titulo", "moedas")
	filtro.Definir("categoriaId", int64(3))
	assert.Equal(t, 3, filtro.Ativos())

	// Voltar a vazio tira da contagem.
	filtro.Definir("titulo", "")
	filtro.Definir("categoriaId", nil)
	assert.Equal(t, 1, filtro.Ativos())
}

func TestQueryOmiteCamposVazios(t *testing.T) {
	filtro := FiltroLeiloes()
	filtro.Definir("status", "ATIVO")
	filtro.Definir("titulo", "moedas raras")

	params := filtro.Query()

	assert.Equal(t, "ATIVO", params.Get("status"))
	assert.Equal(t, "moedas raras", params.Get("titulo"))
	assert.NotContains(t, params, "categoriaId")
	assert.NotContains(t, params, "lanceMinFrom")
	assert.Len(t, params, 2)
}

func TestLimparZeraContagemEQuery(t *testing.T) {
	filtro := FiltroLeiloes()
	filtro.Definir("status", "ATIVO")
	filtro.Definir("lanceMinFrom", 100.0)
	assert.Equal(t, 2, filtro.Ativos())

	filtro.Limpar()

	assert.Equal(t, 0, filtro.Ativos())
	assert.Empty(t, filtro.Query())
	assert.Equal(t, "", filtro.Valor("titulo"))
	assert.Nil(t, filtro.Valor("status"))
}

func TestIntervaloDataInvalido(t *testing.T) {
	filtro := FiltroLeiloes()
	filtro.Definir("dataHoraInicioFrom", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	filtro.Definir("dataHoraInicioTo", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))

	erros := filtro.ValidarIntervalos()
	assert.Contains(t, erros, "dataHoraInicioFrom")

	// Intervalo inválido fica fora da query até a correção.
	params := filtro.Query()
	assert.Empty(t, params.Get("dataHoraInicioFrom"))
	assert.Empty(t, params.Get("dataHoraInicioTo"))

	filtro.Definir("dataHoraInicioTo", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, filtro.ValidarIntervalos())
	assert.NotEmpty(t, filtro.Query().Get("dataHoraInicioFrom"))
}

func TestIntervaloDataLimitesIguaisInvalido(t *testing.T) {
	filtro := FiltroLeiloes()
	mesma := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	filtro.Definir("dataHoraFimFrom", mesma)
	filtro.Definir("dataHoraFimTo", mesma)

	assert.Contains(t, filtro.ValidarIntervalos(), "dataHoraFimFrom")
}

func TestIntervaloNumericoInvalido(t *testing.T) {
	filtro := FiltroLeiloes()
	filtro.Definir("lanceMinFrom", 100.0)
	filtro.Definir("lanceMinTo", 50.0)

	erros := filtro.ValidarIntervalos()
	assert.Equal(t, "O valor mínimo deve ser menor que o valor máximo", erros["lanceMinFrom"])

	params := filtro.Query()
	assert.Empty(t, params.Get("lanceMinFrom"))
	assert.Empty(t, params.Get("lanceMinTo"))
}

func TestIntervaloComUmLadoSoEValido(t *testing.T) {
	filtro := FiltroLeiloes()
	filtro.Definir("lanceMinFrom", 100.0)

	assert.Empty(t, filtro.ValidarIntervalos())
	assert.Equal(t, "100", filtro.Query().Get("lanceMinFrom"))
}

func TestQueryPaginada(t *testing.T) {
	filtro := FiltroPessoas()
	filtro.Definir("nome", "maria")
	filtro.Definir("ativo", true)

	params := filtro.QueryPaginada(2, 20, "nome", "ASC")

	assert.Equal(t, "maria", params.Get("nome"))
	assert.Equal(t, "true", params.Get("ativo"))
	assert.Equal(t, "2", params.Get("page"))
	assert.Equal(t, "20", params.Get("size"))
	assert.Equal(t, "nome", params.Get("sortBy"))
	assert.Equal(t, "ASC", params.Get("sortDir"))
}

func TestSerializacaoDeDatas(t *testing.T) {
	filtro := FiltroLeiloes()
	filtro.Definir("dataHoraInicioFrom", time.Date(2025, 1, 5, 14, 30, 0, 0, time.UTC))

	assert.Equal(t, "2025-01-05T14:30:00Z", filtro.Query().Get("dataHoraInicioFrom"))
}

func TestCamposImediatos(t *testing.T) {
	filtro := FiltroLeiloes()
	assert.True(t, filtro.Imediato("titulo"))
	assert.True(t, filtro.Imediato("status"))
	assert.True(t, filtro.Imediato("categoriaId"))
	assert.False(t, filtro.Imediato("lanceMinFrom"))
}

func TestDefinirCampoNaoDeclaradoEIgnorado(t *testing.T) {
	filtro := FiltroPorNome()
	filtro.Definir("intruso", "x")

	assert.Equal(t, 0, filtro.Ativos())
	assert.Empty(t, filtro.Query())
}
