package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizar remove acentos e diacríticos e converte para minúsculas.
// Exemplo: "Eletrônicos" -> "eletronicos", "Máquina de Café" -> "maquina de cafe"
func Normalizar(texto string) string {
	if texto == "" {
		return texto
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalizado, _, _ := transform.String(t, texto)

	return strings.ToLower(normalizado)
}

// ContemNormalizado informa se texto contém o termo, comparando sem acentos
// e sem distinção de caixa. O termo deve chegar já normalizado.
func ContemNormalizado(texto, termoNormalizado string) bool {
	if termoNormalizado == "" {
		return true
	}
	return strings.Contains(Normalizar(texto), termoNormalizado)
}
