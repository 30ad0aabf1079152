package models

import "encoding/json"

// Pagina é a forma normalizada de qualquer resposta de listagem da API.
// O backend ora devolve um envelope paginado do Spring Data
// ({content, totalElements, totalPages, number, size}), ora um array puro.
// Toda listagem do console passa por NormalizarPagina, nunca pelo corpo cru.
type Pagina[T any] struct {
	Registros      []T   `json:"registros"`
	TotalElementos int64 `json:"totalElementos"`
	TotalPaginas   int   `json:"totalPaginas"`
	Numero         int   `json:"numero"`
	Tamanho        int   `json:"tamanho"`
}

type envelopePaginado struct {
	Content       json.RawMessage `json:"content"`
	TotalElements *int64          `json:"totalElements"`
	TotalPages    *int            `json:"totalPages"`
	Number        int             `json:"number"`
	Size          int             `json:"size"`
}

// NormalizarPagina extrai a lista de registros e o total de um corpo de
// resposta, independente do formato usado pelo servidor:
//   - envelope com "content" array: registros = content, total = totalElements
//     (ou len(content) quando ausente);
//   - array puro: registros = corpo, total = len(corpo);
//   - qualquer outra coisa: lista vazia, total zero.
func NormalizarPagina[T any](corpo []byte) (Pagina[T], error) {
	var pagina Pagina[T]
	pagina.Registros = []T{}
	pagina.TotalPaginas = 1

	if len(corpo) == 0 {
		return pagina, nil
	}

	var envelope envelopePaginado
	if err := json.Unmarshal(corpo, &envelope); err == nil && len(envelope.Content) > 0 {
		var registros []T
		if err := json.Unmarshal(envelope.Content, &registros); err == nil && registros != nil {
			pagina.Registros = registros
			pagina.TotalElementos = int64(len(registros))
			if envelope.TotalElements != nil {
				pagina.TotalElementos = *envelope.TotalElements
			}
			if envelope.TotalPages != nil {
				pagina.TotalPaginas = *envelope.TotalPages
			}
			pagina.Numero = envelope.Number
			pagina.Tamanho = envelope.Size
			if pagina.Tamanho == 0 {
				pagina.Tamanho = len(registros)
			}
			return pagina, nil
		}
	}

	var registros []T
	if err := json.Unmarshal(corpo, &registros); err == nil && registros != nil {
		pagina.Registros = registros
		pagina.TotalElementos = int64(len(registros))
		pagina.Tamanho = len(registros)
		return pagina, nil
	}

	return pagina, nil
}
