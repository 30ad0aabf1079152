// Package filtros traduz o estado estruturado de filtros de uma página em
// parâmetros de consulta: contagem de filtros ativos para a interface,
// validação de intervalos (datas e números) e serialização que omite campos
// vazios. Valores nulos ou vazios nunca entram na query nem contam como
// filtro ativo.
package filtros

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// ParIntervalo nomeia os dois campos de um intervalo (de/até).
type ParIntervalo struct {
	De  string
	Ate string
}

// Conjunto é o estado de filtros de uma página. Cada página cria e possui o
// seu; o estado nunca é compartilhado.
type Conjunto struct {
	valores      map[string]any
	vazios       map[string]any
	paresData    []ParIntervalo
	paresNumero  []ParIntervalo
	imediatos    map[string]bool
}

// Opcao configura um Conjunto na criação.
type Opcao func(*Conjunto)

// ComIntervaloData declara um par de campos de data validado em conjunto.
func ComIntervaloData(de, ate string) Opcao {
	return func(c *Conjunto) {
		c.paresData = append(c.paresData, ParIntervalo{De: de, Ate: ate})
	}
}

// ComIntervaloNumerico declara um par numérico min/max validado em conjunto.
func ComIntervaloNumerico(de, ate string) Opcao {
	return func(c *Conjunto) {
		c.paresNumero = append(c.paresNumero, ParIntervalo{De: de, Ate: ate})
	}
}

// ComCamposImediatos marca campos cuja alteração dispara nova consulta sem
// esperar o "Aplicar".
func ComCamposImediatos(campos ...string) Opcao {
	return func(c *Conjunto) {
		for _, campo := range campos {
			c.imediatos[campo] = true
		}
	}
}

// NovoConjunto cria o estado com os valores vazios declarados de cada campo
// ("" para texto, nil para enum, data e número).
func NovoConjunto(vazios map[string]any, opcoes ...Opcao) *Conjunto {
	c := &Conjunto{
		valores:   make(map[string]any, len(vazios)),
		vazios:    vazios,
		imediatos: map[string]bool{},
	}
	for campo, vazio := range vazios {
		c.valores[campo] = vazio
	}
	for _, opcao := range opcoes {
		opcao(c)
	}
	return c
}

func (c *Conjunto) Definir(campo string, valor any) {
	if _, declarado := c.vazios[campo]; !declarado {
		return
	}
	c.valores[campo] = valor
}

func (c *Conjunto) Valor(campo string) any {
	return c.valores[campo]
}

// Imediato informa se o campo dispara consulta a cada alteração.
func (c *Conjunto) Imediato(campo string) bool {
	return c.imediatos[campo]
}

// Ativos conta os campos com valor não nulo e não vazio.
func (c *Conjunto) Ativos() int {
	ativos := 0
	for _, valor := range c.valores {
		if !valorVazio(valor) {
			ativos++
		}
	}
	return ativos
}

// Limpar restaura cada campo ao seu valor vazio declarado. O chamador deve
// reemitir a consulta sem filtros em seguida.
func (c *Conjunto) Limpar() {
	for campo, vazio := range c.vazios {
		c.valores[campo] = vazio
	}
}

// ValidarIntervalos devolve, por campo inicial do par, a mensagem de erro
// dos intervalos inválidos. Um par de datas é inválido quando ambas são
// válidas e o início não é estritamente anterior ao fim; um par numérico,
// quando ambos presentes e min > max.
func (c *Conjunto) ValidarIntervalos() map[string]string {
	erros := map[string]string{}

	for _, par := range c.paresData {
		de, okDe := comoData(c.valores[par.De])
		ate, okAte := comoData(c.valores[par.Ate])
		if okDe && okAte && !de.Before(ate) {
			erros[par.De] = "A data de início deve ser anterior à data de fim"
		}
	}

	for _, par := range c.paresNumero {
		de, okDe := comoNumero(c.valores[par.De])
		ate, okAte := comoNumero(c.valores[par.Ate])
		if okDe && okAte && de > ate {
			erros[par.De] = "O valor mínimo deve ser menor que o valor máximo"
		}
	}

	return erros
}

// Query serializa apenas os campos não vazios. Os dois lados de um intervalo
// inválido são retidos até a correção.
func (c *Conjunto) Query() url.Values {
	suprimidos := map[string]bool{}
	erros := c.ValidarIntervalos()
	for _, par := range append(append([]ParIntervalo{}, c.paresData...), c.paresNumero...) {
		if _, invalido := erros[par.De]; invalido {
			suprimidos[par.De] = true
			suprimidos[par.Ate] = true
		}
	}

	params := url.Values{}
	for campo, valor := range c.valores {
		if valorVazio(valor) || suprimidos[campo] {
			continue
		}
		params.Set(campo, serializar(valor))
	}
	return params
}

// QueryPaginada acrescenta paginação e ordenação à query de filtros.
func (c *Conjunto) QueryPaginada(pagina, tamanho int, ordenarPor, direcao string) url.Values {
	params := c.Query()
	params.Set("page", strconv.Itoa(pagina))
	params.Set("size", strconv.Itoa(tamanho))
	if ordenarPor != "" {
		params.Set("sortBy", ordenarPor)
		params.Set("sortDir", direcao)
	}
	return params
}

func valorVazio(valor any) bool {
	if valor == nil {
		return true
	}
	if s, ok := valor.(string); ok && s == "" {
		return true
	}
	return false
}

func serializar(valor any) string {
	switch v := valor.(type) {
	case string:
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func comoData(valor any) (time.Time, bool) {
	switch v := valor.(type) {
	case time.Time:
		return v, !v.IsZero()
	case string:
		if v == "" {
			return time.Time{}, false
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func comoNumero(valor any) (float64, bool) {
	switch v := valor.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		if v == "" {
			return 0, false
		}
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
