// Package sessao mantém o estado autenticado do console: uma única sessão
// viva por processo, persistida em arquivo e reidratada na inicialização.
// O Store é injetado explicitamente no adaptador HTTP e nos handlers; não
// existe estado global.
package sessao

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/leilao-digital/app-console-admin/internal/models"
)

// Store guarda a sessão corrente. Escritores substituem o valor inteiro de
// forma atômica; leitores nunca observam um par token/usuário pela metade.
type Store struct {
	mu      sync.RWMutex
	arquivo string
	sessao  *models.Sessao
}

func NewStore(arquivo string) *Store {
	return &Store{arquivo: arquivo}
}

// Carregar reidrata a sessão persistida. Arquivo ausente ou corrompido
// equivale a "deslogado"; um registro corrompido é removido e nunca derruba
// a inicialização.
func (s *Store) Carregar() {
	s.mu.Lock()
	defer s.mu.Unlock()

	dados, err := os.ReadFile(s.arquivo)
	if err != nil {
		return
	}

	var sessao models.Sessao
	if err := json.Unmarshal(dados, &sessao); err != nil || sessao.Token == "" {
		log.Warn().Str("arquivo", s.arquivo).Msg("sessão persistida inválida, removendo")
		_ = os.Remove(s.arquivo)
		return
	}

	s.sessao = &sessao
}

// Definir substitui a sessão corrente e a persiste.
func (s *Store) Definir(sessao models.Sessao) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessao = &sessao

	if err := os.MkdirAll(filepath.Dir(s.arquivo), 0o700); err != nil {
		return err
	}
	dados, err := json.Marshal(sessao)
	if err != nil {
		return err
	}
	return os.WriteFile(s.arquivo, dados, 0o600)
}

// Limpar descarta a sessão em memória e o registro persistido.
func (s *Store) Limpar() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessao = nil
	_ = os.Remove(s.arquivo)
}

// Atual devolve uma cópia da sessão corrente, ou nil quando deslogado.
func (s *Store) Atual() *models.Sessao {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.sessao == nil {
		return nil
	}
	copia := *s.sessao
	return &copia
}

// Token implementa apiclient.FonteToken.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.sessao == nil {
		return ""
	}
	return s.sessao.Token
}

// Autenticada informa se há uma sessão com token utilizável.
func (s *Store) Autenticada() bool {
	return s.Token() != ""
}

// Expiracao decodifica o claim exp do token sem validar a assinatura, como
// informação de exibição. A validação real é sempre do backend. Devolve o
// zero value quando o token não é um JWT ou não carrega exp.
func (s *Store) Expiracao() time.Time {
	token := s.Token()
	if token == "" {
		return time.Time{}
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
