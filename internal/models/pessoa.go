package models

// Pessoa representa um usuário da plataforma (vendedor, comprador ou admin).
type Pessoa struct {
	ID     int64    `json:"id"`
	Nome   string   `json:"nome"`
	Email  string   `json:"email,omitempty"`
	Ativo  *bool    `json:"ativo,omitempty"`
	Perfis []Perfil `json:"perfis,omitempty"`
}

// PessoaCriacao é o payload de criação/alteração de pessoa.
type PessoaCriacao struct {
	Nome  string `json:"nome" binding:"required,max=150"`
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha,omitempty" binding:"omitempty,min=6"`
}

// AlterarSenha é o payload de troca de senha do usuário logado.
type AlterarSenha struct {
	SenhaAtual string `json:"senhaAtual" binding:"required"`
	NovaSenha  string `json:"novaSenha" binding:"required,min=6"`
}

// RedefinirSenha é o payload da redefinição por código de validação.
type RedefinirSenha struct {
	CodigoValidacao string `json:"codigoValidacao" binding:"required"`
	NovaSenha       string `json:"novaSenha" binding:"required,min=6"`
}

// PessoaPerfil associa uma pessoa a um perfil de acesso.
type PessoaPerfil struct {
	PessoaID int64 `json:"pessoaId" binding:"required"`
	PerfilID int64 `json:"perfilId" binding:"required"`
}
