package models

// Imagem pertence à galeria de um leilão.
type Imagem struct {
	ID               int64    `json:"id"`
	NomeImagem       string   `json:"nomeImagem"`
	DataHoraCadastro DataHora `json:"dataHoraCadastro"`
	Principal        bool     `json:"principal,omitempty"`
}
