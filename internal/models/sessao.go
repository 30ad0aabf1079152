package models

// Usuario é o bloco de identidade devolvido pelo endpoint de login.
type Usuario struct {
	ID     int64    `json:"id"`
	Nome   string   `json:"nome"`
	Email  string   `json:"email,omitempty"`
	Perfis []string `json:"perfis,omitempty"`
}

// Sessao é o estado autenticado persistido pelo console. Uma sessão sem token
// nunca é considerada autenticada.
type Sessao struct {
	Token   string  `json:"token"`
	Usuario Usuario `json:"usuario"`
}

// Autenticada informa se a sessão carrega um token utilizável.
func (s *Sessao) Autenticada() bool {
	return s != nil && s.Token != ""
}

// Credenciais é o payload do login.
type Credenciais struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}
