package models

// StatusLeilao representa o ciclo de vida de um leilão no backend.
type StatusLeilao string

const (
	StatusEmAnalise StatusLeilao = "EM_ANALISE"
	StatusInativo   StatusLeilao = "INATIVO"
	StatusAtivo     StatusLeilao = "ATIVO"
	StatusEncerrado StatusLeilao = "ENCERRADO"
	StatusCancelado StatusLeilao = "CANCELADO"
)

// PodeAbrir indica se a ação "abrir" deve ser oferecida na interface.
// A decisão final é sempre do backend.
func (s StatusLeilao) PodeAbrir() bool {
	return s == StatusInativo || s == StatusEmAnalise
}

// PodeEncerrar indica se as ações "encerrar" e "cancelar" devem ser oferecidas.
func (s StatusLeilao) PodeEncerrar() bool {
	return s == StatusAtivo
}

// Valido informa se o valor é um dos status conhecidos do ciclo de vida.
func (s StatusLeilao) Valido() bool {
	switch s {
	case StatusEmAnalise, StatusInativo, StatusAtivo, StatusEncerrado, StatusCancelado:
		return true
	}
	return false
}

// Leilao é o registro principal manipulado pelo console.
type Leilao struct {
	ID                 int64        `json:"id"`
	Titulo             string       `json:"titulo"`
	Descricao          string       `json:"descricao"`
	DescricaoDetalhada string       `json:"descricaoDetalhada,omitempty"`
	DataHoraInicio     DataHora     `json:"dataHoraInicio"`
	DataHoraFim        DataHora     `json:"dataHoraFim"`
	Status             StatusLeilao `json:"status"`
	Observacao         string       `json:"observacao,omitempty"`
	ValorIncremento    float64      `json:"valorIncremento,omitempty"`
	LanceMinimo        float64      `json:"lanceMinimo,omitempty"`
	Categoria          *Categoria   `json:"categoria,omitempty"`
	Vendedor           *Pessoa      `json:"vendedor,omitempty"`
	Imagens            []Imagem     `json:"imagens,omitempty"`
}

// LeilaoCriacao é o payload de criação/alteração de leilão enviado ao backend.
type LeilaoCriacao struct {
	Titulo             string  `json:"titulo" binding:"required,max=100"`
	Descricao          string  `json:"descricao" binding:"required"`
	DescricaoDetalhada string  `json:"descricaoDetalhada,omitempty"`
	DataHoraInicio     string  `json:"dataHoraInicio" binding:"required"`
	DataHoraFim        string  `json:"dataHoraFim" binding:"required"`
	Observacao         string  `json:"observacao,omitempty"`
	ValorIncremento    float64 `json:"valorIncremento" binding:"omitempty,gt=0"`
	LanceMinimo        float64 `json:"lanceMinimo" binding:"omitempty,gte=0"`
	CategoriaID        int64   `json:"categoriaId" binding:"required"`
}
