package forms

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Regra valida um valor de campo contra o conjunto completo de valores do
// formulário. Devolve a mensagem de erro, ou vazio quando o valor é válido.
// Regras são funções puras; as de um campo são avaliadas na ordem declarada
// e a primeira falha interrompe a avaliação.
type Regra func(valor any, todos map[string]any) string

var regexEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Obrigatorio falha para nil, string vazia ou só de espaços.
func Obrigatorio(mensagem string) Regra {
	if mensagem == "" {
		mensagem = "Este campo é obrigatório"
	}
	return func(valor any, _ map[string]any) string {
		if valor == nil {
			return mensagem
		}
		if s, ok := valor.(string); ok && strings.TrimSpace(s) == "" {
			return mensagem
		}
		return ""
	}
}

func TamanhoMinimo(min int, mensagem string) Regra {
	if mensagem == "" {
		mensagem = fmt.Sprintf("Deve ter pelo menos %d caracteres", min)
	}
	return func(valor any, _ map[string]any) string {
		if s, ok := valor.(string); ok && s != "" && len([]rune(s)) < min {
			return mensagem
		}
		return ""
	}
}

func TamanhoMaximo(max int, mensagem string) Regra {
	if mensagem == "" {
		mensagem = fmt.Sprintf("Deve ter no máximo %d caracteres", max)
	}
	return func(valor any, _ map[string]any) string {
		if s, ok := valor.(string); ok && len([]rune(s)) > max {
			return mensagem
		}
		return ""
	}
}

// Email aplica uma verificação leve de formato, não o RFC completo.
func Email(mensagem string) Regra {
	if mensagem == "" {
		mensagem = "Email inválido"
	}
	return func(valor any, _ map[string]any) string {
		if s, ok := valor.(string); ok && s != "" && !regexEmail.MatchString(s) {
			return mensagem
		}
		return ""
	}
}

func ValorMinimo(min float64, mensagem string) Regra {
	if mensagem == "" {
		mensagem = fmt.Sprintf("Deve ser maior ou igual a %v", min)
	}
	return func(valor any, _ map[string]any) string {
		if numero, ok := comoNumero(valor); ok && numero < min {
			return mensagem
		}
		return ""
	}
}

func ValorMaximo(max float64, mensagem string) Regra {
	if mensagem == "" {
		mensagem = fmt.Sprintf("Deve ser menor ou igual a %v", max)
	}
	return func(valor any, _ map[string]any) string {
		if numero, ok := comoNumero(valor); ok && numero > max {
			return mensagem
		}
		return ""
	}
}

// DataPosterior exige que o valor seja estritamente posterior à data guardada
// no campo de referência. Campos vazios não geram erro; Obrigatorio cuida
// da presença.
func DataPosterior(campoReferencia, mensagem string) Regra {
	if mensagem == "" {
		mensagem = "Data deve ser posterior à data de comparação"
	}
	return func(valor any, todos map[string]any) string {
		data, ok := comoData(valor)
		if !ok {
			return ""
		}
		referencia, ok := comoData(todos[campoReferencia])
		if !ok {
			return ""
		}
		if !data.After(referencia) {
			return mensagem
		}
		return ""
	}
}

// DataAnterior é o espelho de DataPosterior.
func DataAnterior(campoReferencia, mensagem string) Regra {
	if mensagem == "" {
		mensagem = "Data deve ser anterior à data de comparação"
	}
	return func(valor any, todos map[string]any) string {
		data, ok := comoData(valor)
		if !ok {
			return ""
		}
		referencia, ok := comoData(todos[campoReferencia])
		if !ok {
			return ""
		}
		if !data.Before(referencia) {
			return mensagem
		}
		return ""
	}
}

// Personalizada promove um predicado a regra.
func Personalizada(predicado func(valor any, todos map[string]any) bool, mensagem string) Regra {
	if mensagem == "" {
		mensagem = "Valor inválido"
	}
	return func(valor any, todos map[string]any) string {
		if !predicado(valor, todos) {
			return mensagem
		}
		return ""
	}
}

func comoNumero(valor any) (float64, bool) {
	switch n := valor.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

var layoutsData = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func comoData(valor any) (time.Time, bool) {
	switch v := valor.(type) {
	case time.Time:
		return v, !v.IsZero()
	case string:
		for _, layout := range layoutsData {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
