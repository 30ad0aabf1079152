// Package recursos expõe um objeto de acesso por recurso do backend
// (leilões, categorias, pessoas, perfis, feedback, imagens), todos compostos
// sobre o mesmo núcleo genérico de CRUD. Nenhuma operação faz orquestração
// além de uma única chamada HTTP; regras de negócio são do backend.
package recursos

import (
	"context"
	"fmt"
	"net/url"

	"github.com/leilao-digital/app-console-admin/internal/apiclient"
	"github.com/leilao-digital/app-console-admin/internal/models"
)

// Recurso é o núcleo de CRUD tipado sobre um caminho da API. Os recursos
// concretos o embutem por composição.
type Recurso[T any] struct {
	cliente *apiclient.Client
	caminho string
}

func novoRecurso[T any](cliente *apiclient.Client, caminho string) Recurso[T] {
	return Recurso[T]{cliente: cliente, caminho: caminho}
}

// BuscarTodos lista o recurso sem filtros, já normalizado.
func (r *Recurso[T]) BuscarTodos(ctx context.Context) (models.Pagina[T], error) {
	resposta, err := r.cliente.Get(ctx, r.caminho)
	if err != nil {
		return models.Pagina[T]{Registros: []T{}}, err
	}
	return models.NormalizarPagina[T](resposta.Corpo)
}

// BuscarPorID devolve um registro; 404 vira apiclient.ErrNaoEncontrado.
func (r *Recurso[T]) BuscarPorID(ctx context.Context, id int64) (*T, error) {
	resposta, err := r.cliente.Get(ctx, fmt.Sprintf("%s/%d", r.caminho, id))
	if err != nil {
		return nil, err
	}
	var registro T
	if err := resposta.JSON(&registro); err != nil {
		return nil, fmt.Errorf("erro ao desserializar resposta: %w", err)
	}
	return &registro, nil
}

func (r *Recurso[T]) Inserir(ctx context.Context, dados any) (*T, error) {
	resposta, err := r.cliente.Post(ctx, r.caminho, dados)
	if err != nil {
		return nil, err
	}
	return decodificar[T](resposta)
}

func (r *Recurso[T]) Atualizar(ctx context.Context, id int64, dados any) (*T, error) {
	resposta, err := r.cliente.Put(ctx, fmt.Sprintf("%s/%d", r.caminho, id), dados)
	if err != nil {
		return nil, err
	}
	return decodificar[T](resposta)
}

func (r *Recurso[T]) Excluir(ctx context.Context, id int64) error {
	_, err := r.cliente.Delete(ctx, fmt.Sprintf("%s/%d", r.caminho, id))
	return err
}

// BuscarComFiltros lista com os parâmetros já serializados pelo compositor
// de filtros; campos vazios jamais chegam aqui.
func (r *Recurso[T]) BuscarComFiltros(ctx context.Context, params url.Values) (models.Pagina[T], error) {
	caminho := r.caminho
	if len(params) > 0 {
		caminho += "?" + params.Encode()
	}
	resposta, err := r.cliente.Get(ctx, caminho)
	if err != nil {
		return models.Pagina[T]{Registros: []T{}}, err
	}
	return models.NormalizarPagina[T](resposta.Corpo)
}

func decodificar[T any](resposta *apiclient.Resposta) (*T, error) {
	if len(resposta.Corpo) == 0 {
		return nil, nil
	}
	var registro T
	if err := resposta.JSON(&registro); err != nil {
		return nil, fmt.Errorf("erro ao desserializar resposta: %w", err)
	}
	return &registro, nil
}

func listarNormalizado[T any](resposta *apiclient.Resposta, err error) (models.Pagina[T], error) {
	if err != nil {
		return models.Pagina[T]{Registros: []T{}}, err
	}
	return models.NormalizarPagina[T](resposta.Corpo)
}
