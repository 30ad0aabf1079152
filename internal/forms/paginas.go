package forms

// Formulários das telas do console. Cada fábrica devolve um formulário novo,
// com os valores iniciais e as regras daquela tela.

func FormularioLeilao() *Formulario {
	return NovoFormulario(
		map[string]any{
			"titulo":         "",
			"descricao":      "",
			"dataHoraInicio": "",
			"dataHoraFim":    "",
			"lanceMinimo":    nil,
			"categoriaId":    nil,
		},
		map[string][]Regra{
			"titulo": {
				Obrigatorio("Título é obrigatório"),
				TamanhoMaximo(100, "Título deve ter no máximo 100 caracteres"),
			},
			"descricao": {
				Obrigatorio("Descrição é obrigatória"),
			},
			"dataHoraInicio": {
				Obrigatorio("Data de início é obrigatória"),
			},
			"dataHoraFim": {
				Obrigatorio("Data de fim é obrigatória"),
				DataPosterior("dataHoraInicio", "Data de fim deve ser posterior à de início"),
			},
			"lanceMinimo": {
				ValorMinimo(0, "Lance mínimo não pode ser negativo"),
			},
			"categoriaId": {
				Obrigatorio("Categoria é obrigatória"),
			},
		},
	)
}

func FormularioCategoria() *Formulario {
	return NovoFormulario(
		map[string]any{"nome": "", "observacao": ""},
		map[string][]Regra{
			"nome": {
				Obrigatorio("Nome é obrigatório"),
				TamanhoMaximo(100, "Nome deve ter no máximo 100 caracteres"),
			},
		},
	)
}

func FormularioLogin() *Formulario {
	return NovoFormulario(
		map[string]any{"email": "", "senha": ""},
		map[string][]Regra{
			"email": {
				Obrigatorio("E-mail é obrigatório"),
				Email("E-mail inválido"),
			},
			"senha": {
				Obrigatorio("Senha é obrigatória"),
			},
		},
	)
}

func FormularioAlterarSenha() *Formulario {
	return NovoFormulario(
		map[string]any{"senhaAtual": "", "novaSenha": "", "confirmacao": ""},
		map[string][]Regra{
			"senhaAtual": {
				Obrigatorio("Senha atual é obrigatória"),
			},
			"novaSenha": {
				Obrigatorio("Nova senha é obrigatória"),
				TamanhoMinimo(6, "Nova senha deve ter ao menos 6 caracteres"),
			},
			"confirmacao": {
				Obrigatorio("Confirmação é obrigatória"),
				Personalizada(func(valor any, todos map[string]any) bool {
					return valor == todos["novaSenha"]
				}, "Confirmação não confere com a nova senha"),
			},
		},
	)
}
