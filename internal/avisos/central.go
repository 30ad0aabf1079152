// Package avisos acumula notificações transitórias (sucesso/erro) geradas
// pelo console e pelo interceptador de erros HTTP, até o shell do navegador
// drená-las.
package avisos

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	TipoSucesso = "sucesso"
	TipoErro    = "erro"
	TipoInfo    = "info"
)

type Aviso struct {
	ID       string    `json:"id"`
	Tipo     string    `json:"tipo"`
	Mensagem string    `json:"mensagem"`
	CriadoEm time.Time `json:"criadoEm"`
}

// Central guarda os avisos pendentes. Segura para uso concorrente.
type Central struct {
	mu        sync.Mutex
	pendentes []Aviso
}

func NovaCentral() *Central {
	return &Central{}
}

func (c *Central) Publicar(tipo, mensagem string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pendentes = append(c.pendentes, Aviso{
		ID:       uuid.NewString(),
		Tipo:     tipo,
		Mensagem: mensagem,
		CriadoEm: time.Now(),
	})
}

// Drenar devolve e descarta todos os avisos pendentes.
func (c *Central) Drenar() []Aviso {
	c.mu.Lock()
	defer c.mu.Unlock()

	drenados := c.pendentes
	c.pendentes = nil
	if drenados == nil {
		drenados = []Aviso{}
	}
	return drenados
}
