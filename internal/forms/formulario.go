// Package forms implementa a validação de formulários do console: regras
// declarativas por campo, rastreamento de campos tocados e validade derivada.
// Erros de validação nunca chegam à camada de rede; eles bloqueiam a
// submissão localmente.
package forms

// Formulario mantém três mapas paralelos por campo (valores, erros, tocados)
// e a validade derivada. Cada instância pertence a uma única página; o estado
// é criado na montagem e descartado no fechamento ou reset.
type Formulario struct {
	iniciais map[string]any
	valores  map[string]any
	erros    map[string]string
	tocados  map[string]bool
	regras   map[string][]Regra
	valido   bool
}

func NovoFormulario(iniciais map[string]any, regras map[string][]Regra) *Formulario {
	f := &Formulario{
		iniciais: copiarValores(iniciais),
		valores:  copiarValores(iniciais),
		erros:    map[string]string{},
		tocados:  map[string]bool{},
		regras:   regras,
	}
	return f
}

// DefinirValor atualiza o campo e o marca como tocado. Se o campo já havia
// sido tocado antes desta edição, o erro é recalculado imediatamente contra
// o conjunto corrente de valores (regras podem referenciar campos irmãos).
func (f *Formulario) DefinirValor(campo string, valor any) {
	jaTocado := f.tocados[campo]

	f.valores[campo] = valor
	f.tocados[campo] = true

	if jaTocado {
		f.erros[campo] = f.validarCampo(campo)
		f.derivarValidade()
	}
}

// MarcarTocado marca o campo (blur) e força o recálculo do seu erro, para
// que a mensagem apareça assim que o usuário sai do campo.
func (f *Formulario) MarcarTocado(campo string) {
	f.tocados[campo] = true
	f.erros[campo] = f.validarCampo(campo)
	f.derivarValidade()
}

// ValidarTudo recalcula os erros de todos os campos declarados e devolve a
// validade resultante. É o portão de submissão.
func (f *Formulario) ValidarTudo() bool {
	for campo := range f.regras {
		f.erros[campo] = f.validarCampo(campo)
	}
	f.derivarValidade()
	return f.valido
}

// Reiniciar restaura os valores iniciais e descarta erros e tocados.
func (f *Formulario) Reiniciar() {
	f.valores = copiarValores(f.iniciais)
	f.erros = map[string]string{}
	f.tocados = map[string]bool{}
	f.valido = false
}

// Valido é verdadeiro quando há pelo menos um campo validado declarado e
// nenhum campo carrega erro.
func (f *Formulario) Valido() bool {
	return f.valido
}

// Erro devolve o erro corrente do campo, tocado ou não.
func (f *Formulario) Erro(campo string) string {
	return f.erros[campo]
}

// ErroVisivel devolve o erro apenas quando o campo já foi tocado. É o que a
// interface exibe; a validação em si não depende de tocados.
func (f *Formulario) ErroVisivel(campo string) string {
	if !f.tocados[campo] {
		return ""
	}
	return f.erros[campo]
}

func (f *Formulario) Tocado(campo string) bool {
	return f.tocados[campo]
}

func (f *Formulario) Valor(campo string) any {
	return f.valores[campo]
}

// Valores devolve uma cópia do conjunto corrente de valores.
func (f *Formulario) Valores() map[string]any {
	return copiarValores(f.valores)
}

// Erros devolve uma cópia dos erros não vazios.
func (f *Formulario) Erros() map[string]string {
	erros := map[string]string{}
	for campo, erro := range f.erros {
		if erro != "" {
			erros[campo] = erro
		}
	}
	return erros
}

// validarCampo avalia as regras do campo na ordem declarada; a primeira
// falha vence e as demais não são avaliadas.
func (f *Formulario) validarCampo(campo string) string {
	for _, regra := range f.regras[campo] {
		if erro := regra(f.valores[campo], f.valores); erro != "" {
			return erro
		}
	}
	return ""
}

func (f *Formulario) derivarValidade() {
	if len(f.regras) == 0 {
		f.valido = false
		return
	}
	for _, erro := range f.erros {
		if erro != "" {
			f.valido = false
			return
		}
	}
	f.valido = true
}

func copiarValores(origem map[string]any) map[string]any {
	destino := make(map[string]any, len(origem))
	for campo, valor := range origem {
		destino[campo] = valor
	}
	return destino
}
