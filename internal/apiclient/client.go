// Package apiclient encapsula o acesso HTTP à API remota de leilões:
// URL base, injeção do token da sessão, interceptação global de erros
// (401 derruba a sessão, 403 e 5xx viram avisos transitórios) e spans
// de tracing por chamada.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// FonteToken fornece o token da sessão corrente. Implementada por
// sessao.Store; chamadas públicas nunca a consultam.
type FonteToken interface {
	Token() string
}

// Notificador recebe avisos transitórios visíveis ao usuário.
type Notificador interface {
	Publicar(tipo, mensagem string)
}

// Config parametriza o cliente. FonteToken e os callbacks são injetados
// explicitamente; o cliente não conhece estado global.
type Config struct {
	BaseURL string
	Timeout time.Duration

	FonteToken  FonteToken
	Notificador Notificador

	// AoNaoAutorizado é chamado quando qualquer chamada autenticada recebe
	// 401; o efeito esperado é a destruição da sessão persistida.
	AoNaoAutorizado func()

	HTTPClient *http.Client
}

// Client é o adaptador HTTP compartilhado por todos os recursos.
type Client struct {
	baseURL         string
	http            *http.Client
	fonteToken      FonteToken
	notificador     Notificador
	aoNaoAutorizado func()
}

// Resposta é o retorno normalizado de toda chamada bem-sucedida.
type Resposta struct {
	Status int
	Corpo  []byte
}

// JSON desserializa o corpo da resposta em v.
func (r *Resposta) JSON(v any) error {
	if len(r.Corpo) == 0 {
		return nil
	}
	return json.Unmarshal(r.Corpo, v)
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:         strings.TrimSuffix(cfg.BaseURL, "/"),
		http:            httpClient,
		fonteToken:      cfg.FonteToken,
		notificador:     cfg.Notificador,
		aoNaoAutorizado: cfg.AoNaoAutorizado,
	}
}

func (c *Client) Get(ctx context.Context, path string) (*Resposta, error) {
	return c.do(ctx, http.MethodGet, path, nil, "", true)
}

// GetPublico faz uma leitura sem anexar credenciais, utilizável antes do login.
func (c *Client) GetPublico(ctx context.Context, path string) (*Resposta, error) {
	return c.do(ctx, http.MethodGet, path, nil, "", false)
}

func (c *Client) Post(ctx context.Context, path string, corpo any) (*Resposta, error) {
	return c.doJSON(ctx, http.MethodPost, path, corpo, true)
}

// PostPublico envia um POST sem credenciais (login, recuperação de senha).
func (c *Client) PostPublico(ctx context.Context, path string, corpo any) (*Resposta, error) {
	return c.doJSON(ctx, http.MethodPost, path, corpo, false)
}

func (c *Client) Put(ctx context.Context, path string, corpo any) (*Resposta, error) {
	return c.doJSON(ctx, http.MethodPut, path, corpo, true)
}

func (c *Client) Delete(ctx context.Context, path string) (*Resposta, error) {
	return c.do(ctx, http.MethodDelete, path, nil, "", true)
}

// PostMultipart envia um arquivo como multipart/form-data no campo informado.
func (c *Client) PostMultipart(ctx context.Context, path, campo, nomeArquivo string, conteudo io.Reader) (*Resposta, error) {
	var buf bytes.Buffer
	escritor := multipart.NewWriter(&buf)

	parte, err := escritor.CreateFormFile(campo, nomeArquivo)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar multipart: %w", err)
	}
	if _, err := io.Copy(parte, conteudo); err != nil {
		return nil, fmt.Errorf("erro ao copiar arquivo: %w", err)
	}
	if err := escritor.Close(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar multipart: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, &buf, escritor.FormDataContentType(), true)
}

func (c *Client) doJSON(ctx context.Context, metodo, path string, corpo any, autenticado bool) (*Resposta, error) {
	var leitor io.Reader
	if corpo != nil {
		dados, err := json.Marshal(corpo)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar corpo: %w", err)
		}
		leitor = bytes.NewReader(dados)
	}
	return c.do(ctx, metodo, path, leitor, "application/json", autenticado)
}

func (c *Client) do(ctx context.Context, metodo, path string, corpo io.Reader, contentType string, autenticado bool) (*Resposta, error) {
	ctx, span := otel.Tracer("apiclient").Start(ctx, "api.request")
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", metodo),
		attribute.String("api.path", path),
	)

	req, err := http.NewRequestWithContext(ctx, metodo, c.baseURL+path, corpo)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	if autenticado && c.fonteToken != nil {
		if token := c.fonteToken.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, "transport failure")
		return nil, fmt.Errorf("%w: %v", ErrRede, err)
	}
	defer resp.Body.Close()

	dados, err := io.ReadAll(resp.Body)
	if err != nil {
		span.SetStatus(codes.Error, "read failure")
		return nil, fmt.Errorf("%w: %v", ErrRede, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= 400 {
		span.SetStatus(codes.Error, "api error")
		c.interceptarErro(resp.StatusCode, autenticado)
		return nil, &ErroAPI{Status: resp.StatusCode, Corpo: dados}
	}

	return &Resposta{Status: resp.StatusCode, Corpo: dados}, nil
}

// interceptarErro aplica os efeitos colaterais globais de erro, fora da
// resolução da chamada em si: 401 derruba a sessão, 403 e 5xx publicam
// um aviso sem alterar a sessão.
func (c *Client) interceptarErro(status int, autenticado bool) {
	switch {
	case status == http.StatusUnauthorized:
		if !autenticado {
			return
		}
		if c.aoNaoAutorizado != nil {
			log.Warn().Msg("API devolveu 401, encerrando sessão")
			c.aoNaoAutorizado()
		}
		if c.notificador != nil {
			c.notificador.Publicar("erro", "Sessão expirada. Faça login novamente.")
		}
	case status == http.StatusForbidden:
		if c.notificador != nil {
			c.notificador.Publicar("erro", "Acesso negado.")
		}
	case status >= http.StatusInternalServerError:
		if c.notificador != nil {
			c.notificador.Publicar("erro", "Erro interno do servidor.")
		}
	}
}
