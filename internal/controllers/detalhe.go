package controllers

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/leilao-digital/app-console-admin/internal/apiclient"
	"github.com/leilao-digital/app-console-admin/internal/models"
)

// BuscaDetalhe resolve um único registro pelo identificador.
type BuscaDetalhe[T any] func(ctx context.Context, id int64) (*T, error)

// ControladorDetalhe dirige uma tela de detalhe de registro único.
type ControladorDetalhe[T any] struct {
	mu     sync.Mutex
	buscar BuscaDetalhe[T]

	geracao  uint64
	estado   Estado
	registro *T
	erro     error
}

func NovoControladorDetalhe[T any](buscar BuscaDetalhe[T]) *ControladorDetalhe[T] {
	return &ControladorDetalhe[T]{buscar: buscar, estado: EstadoCarregando}
}

// Carregar busca o registro. Um registro inexistente vira estado Vazio, não
// Erro: a tela oferece voltar para a lista, não tentar de novo.
func (c *ControladorDetalhe[T]) Carregar(ctx context.Context, id int64) {
	c.mu.Lock()
	c.estado = EstadoCarregando
	c.geracao++
	minha := c.geracao
	c.mu.Unlock()

	registro, err := c.buscar(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()

	if minha != c.geracao {
		log.Debug().Int64("id", id).Msg("detalhe atrasado descartado")
		return
	}

	if err != nil {
		if errors.Is(err, apiclient.ErrNaoEncontrado) {
			c.estado = EstadoVazio
			c.registro = nil
			c.erro = nil
			return
		}
		c.estado = EstadoErro
		c.erro = err
		return
	}

	c.registro = registro
	c.erro = nil
	c.estado = EstadoSucesso
}

func (c *ControladorDetalhe[T]) Estado() Estado {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.estado
}

func (c *ControladorDetalhe[T]) Registro() *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registro
}

func (c *ControladorDetalhe[T]) Erro() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.erro
}

// PodeAbrir informa se a transição de abertura é oferecida para o status
// corrente. O backend continua sendo a autoridade final.
func PodeAbrir(leilao *models.Leilao) bool {
	return leilao != nil && leilao.Status.PodeAbrir()
}

// PodeEncerrar cobre encerrar e cancelar: ambas exigem leilão ativo.
func PodeEncerrar(leilao *models.Leilao) bool {
	return leilao != nil && leilao.Status.PodeEncerrar()
}
