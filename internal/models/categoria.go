package models

// Categoria agrupa leilões por tema.
type Categoria struct {
	ID         int64   `json:"id"`
	Nome       string  `json:"nome"`
	Observacao string  `json:"observacao,omitempty"`
	Criador    *Pessoa `json:"criador,omitempty"`
}

// CategoriaCriacao é o payload de criação/alteração de categoria.
type CategoriaCriacao struct {
	Nome       string `json:"nome" binding:"required,max=100"`
	Observacao string `json:"observacao,omitempty"`
}
