package models

// Perfil é um papel de acesso (ADMIN, VENDEDOR, COMPRADOR).
type Perfil struct {
	ID   int64  `json:"id"`
	Tipo string `json:"tipo"`
}

// PerfilCriacao é o payload de criação/alteração de perfil.
type PerfilCriacao struct {
	Tipo string `json:"tipo" binding:"required"`
}
