package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fonteTokenFixa struct{ token string }

func (f *fonteTokenFixa) Token() string { return f.token }

type notificadorMemoria struct {
	avisos []string
}

func (n *notificadorMemoria) Publicar(tipo, mensagem string) {
	n.avisos = append(n.avisos, tipo+": "+mensagem)
}

func TestGetAnexaBearerQuandoHaSessao(t *testing.T) {
	var recebido string
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recebido = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer servidor.Close()

	cliente := New(Config{BaseURL: servidor.URL, FonteToken: &fonteTokenFixa{token: "tok123"}})

	resposta, err := cliente.Get(context.Background(), "/leiloes")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resposta.Status)
	assert.Equal(t, "Bearer tok123", recebido)
}

func TestGetPublicoNuncaAnexaCredencial(t *testing.T) {
	var recebido string
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recebido = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer servidor.Close()

	cliente := New(Config{BaseURL: servidor.URL, FonteToken: &fonteTokenFixa{token: "tok123"}})

	_, err := cliente.GetPublico(context.Background(), "/leiloes")
	require.NoError(t, err)
	assert.Empty(t, recebido)
}

func TestSemSessaoNaoAnexaHeader(t *testing.T) {
	var temHeader bool
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, temHeader = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	}))
	defer servidor.Close()

	cliente := New(Config{BaseURL: servidor.URL, FonteToken: &fonteTokenFixa{}})

	_, err := cliente.Get(context.Background(), "/leiloes")
	require.NoError(t, err)
	assert.False(t, temHeader)
}

func TestNaoAutorizadoDerrubaSessao(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer servidor.Close()

	fonte := &fonteTokenFixa{token: "expirado"}
	notificador := &notificadorMemoria{}
	derrubada := false
	cliente := New(Config{
		BaseURL:     servidor.URL,
		FonteToken:  fonte,
		Notificador: notificador,
		AoNaoAutorizado: func() {
			derrubada = true
			fonte.token = ""
		},
	})

	_, err := cliente.Get(context.Background(), "/leiloes")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNaoAutorizado))
	assert.True(t, derrubada)
	assert.Contains(t, notificador.avisos[0], "Sessão expirada")

	// Chamadas seguintes não carregam mais o header Authorization.
	var segundoHeader string
	servidor2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		segundoHeader = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer servidor2.Close()
	cliente2 := New(Config{BaseURL: servidor2.URL, FonteToken: fonte})
	_, err = cliente2.Get(context.Background(), "/leiloes")
	require.NoError(t, err)
	assert.Empty(t, segundoHeader)
}

func TestNaoAutorizadoEmChamadaPublicaNaoDerrubaSessao(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer servidor.Close()

	derrubada := false
	cliente := New(Config{
		BaseURL:         servidor.URL,
		AoNaoAutorizado: func() { derrubada = true },
	})

	_, err := cliente.PostPublico(context.Background(), "/auth/login", map[string]string{"email": "x"})
	require.Error(t, err)
	assert.False(t, derrubada)
}

func TestAcessoNegadoNotificaSemAlterarSessao(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer servidor.Close()

	notificador := &notificadorMemoria{}
	derrubada := false
	cliente := New(Config{
		BaseURL:         servidor.URL,
		FonteToken:      &fonteTokenFixa{token: "tok"},
		Notificador:     notificador,
		AoNaoAutorizado: func() { derrubada = true },
	})

	_, err := cliente.Delete(context.Background(), "/leiloes/1")
	assert.True(t, errors.Is(err, ErrAcessoNegado))
	assert.False(t, derrubada)
	assert.Contains(t, notificador.avisos[0], "Acesso negado")
}

func TestErroServidorNotifica(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer servidor.Close()

	notificador := &notificadorMemoria{}
	cliente := New(Config{BaseURL: servidor.URL, Notificador: notificador})

	_, err := cliente.Get(context.Background(), "/categorias")
	assert.True(t, errors.Is(err, ErrServidor))
	assert.Contains(t, notificador.avisos[0], "Erro interno")
}

func TestNaoEncontrado(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"mensagem": "leilão não encontrado"}`))
	}))
	defer servidor.Close()

	cliente := New(Config{BaseURL: servidor.URL})

	_, err := cliente.Get(context.Background(), "/leiloes/999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNaoEncontrado))

	var erroAPI *ErroAPI
	require.True(t, errors.As(err, &erroAPI))
	assert.Equal(t, "leilão não encontrado", erroAPI.Mensagem())
}

func TestErroDeRede(t *testing.T) {
	cliente := New(Config{BaseURL: "http://127.0.0.1:1"})

	_, err := cliente.Get(context.Background(), "/leiloes")
	assert.True(t, errors.Is(err, ErrRede))
}

func TestPostMultipartUsaCampoArquivo(t *testing.T) {
	var campo, nome, conteudo string
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		for nomeCampo, arquivos := range r.MultipartForm.File {
			campo = nomeCampo
			nome = arquivos[0].Filename
			f, err := arquivos[0].Open()
			require.NoError(t, err)
			defer f.Close()
			dados := make([]byte, arquivos[0].Size)
			f.Read(dados)
			conteudo = string(dados)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer servidor.Close()

	cliente := New(Config{BaseURL: servidor.URL, FonteToken: &fonteTokenFixa{token: "tok"}})

	resposta, err := cliente.PostMultipart(context.Background(), "/imagem/leilao/5", "arquivo", "foto.jpg", strings.NewReader("bytes-da-imagem"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resposta.Status)
	assert.Equal(t, "arquivo", campo)
	assert.Equal(t, "foto.jpg", nome)
	assert.Equal(t, "bytes-da-imagem", conteudo)
}
