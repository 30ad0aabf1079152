package filtros

// FiltroLeiloes monta o conjunto usado pela listagem de leilões. Título,
// status e categoria reconsultam a cada alteração; os intervalos avançados
// esperam o "Aplicar".
func FiltroLeiloes() *Conjunto {
	return NovoConjunto(
		map[string]any{
			"titulo":             "",
			"status":             nil,
			"categoriaId":        nil,
			"categoriaNome":      "",
			"dataHoraInicioFrom": nil,
			"dataHoraInicioTo":   nil,
			"dataHoraFimFrom":    nil,
			"dataHoraFimTo":      nil,
			"lanceMinFrom":       nil,
			"lanceMinTo":         nil,
		},
		ComIntervaloData("dataHoraInicioFrom", "dataHoraInicioTo"),
		ComIntervaloData("dataHoraFimFrom", "dataHoraFimTo"),
		ComIntervaloNumerico("lanceMinFrom", "lanceMinTo"),
		ComCamposImediatos("titulo", "status", "categoriaId"),
	)
}

// FiltroPessoas monta o conjunto da listagem de pessoas: aplicação manual.
func FiltroPessoas() *Conjunto {
	return NovoConjunto(map[string]any{
		"nome":  "",
		"email": "",
		"ativo": nil,
	})
}

// FiltroPorNome atende categorias e perfis, que filtram só por nome.
func FiltroPorNome() *Conjunto {
	return NovoConjunto(map[string]any{
		"nome": "",
	})
}
