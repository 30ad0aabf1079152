package utils

import (
	"testing"
)

func TestNormalizar(t *testing.T) {
	tests := []struct {
		nome     string
		entrada  string
		esperado string
	}{
		{
			nome:     "string vazia",
			entrada:  "",
			esperado: "",
		},
		{
			nome:     "sem acentos",
			entrada:  "mesa de jantar",
			esperado: "mesa de jantar",
		},
		{
			nome:     "acentos e caixa alta",
			entrada:  "Eletrônicos",
			esperado: "eletronicos",
		},
		{
			nome:     "cedilha e til",
			entrada:  "Coleção de Canções",
			esperado: "colecao de cancoes",
		},
		{
			nome:     "acento agudo e circunflexo",
			entrada:  "Máquina de Café",
			esperado: "maquina de cafe",
		},
	}

	for _, test := range tests {
		t.Run(test.nome, func(t *testing.T) {
			obtido := Normalizar(test.entrada)
			if obtido != test.esperado {
				t.Errorf("Normalizar(%q) = %q, esperado %q", test.entrada, obtido, test.esperado)
			}
		})
	}
}

func TestContemNormalizado(t *testing.T) {
	tests := []struct {
		nome     string
		texto    string
		termo    string
		esperado bool
	}{
		{"termo vazio casa tudo", "Violão clássico", "", true},
		{"ignora acentos", "Violão clássico", "violao", true},
		{"ignora caixa", "NOTEBOOK Gamer", "notebook", true},
		{"nao casa", "Bicicleta aro 29", "violao", false},
	}

	for _, test := range tests {
		t.Run(test.nome, func(t *testing.T) {
			obtido := ContemNormalizado(test.texto, test.termo)
			if obtido != test.esperado {
				t.Errorf("ContemNormalizado(%q, %q) = %v, esperado %v", test.texto, test.termo, obtido, test.esperado)
			}
		})
	}
}
