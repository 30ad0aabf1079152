package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leilao-digital/app-console-admin/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// backendFalso imita a API de leilões o suficiente para os fluxos do console.
func backendFalso(t *testing.T, viuToken *string) *httptest.Server {
	t.Helper()
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if viuToken != nil {
			*viuToken = r.Header.Get("Authorization")
		}

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/auth/login":
			var credenciais map[string]string
			json.NewDecoder(r.Body).Decode(&credenciais)
			if credenciais["senha"] != "segredo1" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"mensagem": "Credenciais inválidas"})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"token":   "token-do-backend",
				"usuario": map[string]any{"id": 1, "nome": "Ana", "email": credenciais["email"]},
			})
		case r.URL.Path == "/leiloes/filtros":
			json.NewEncoder(w).Encode(map[string]any{
				"content":       []map[string]any{{"id": 1, "titulo": "Notebook", "status": "ATIVO"}},
				"totalElements": 1,
			})
		case r.URL.Path == "/leiloes/publicos":
			json.NewEncoder(w).Encode([]map[string]any{{"id": 2, "titulo": "Violão clássico"}})
		case r.URL.Path == "/leiloes/publicos/7":
			// 200 sem corpo
		case r.URL.Path == "/leiloes/status/ATIVO":
			json.NewEncoder(w).Encode([]map[string]any{{"id": 4, "titulo": "Mesa de jantar", "status": "ATIVO"}})
		case r.Method == http.MethodPost && r.URL.Path == "/leiloes":
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"id": 9, "titulo": "Bicicleta", "status": "EM_ANALISE"})
		case r.Method == http.MethodGet && r.URL.Path == "/perfil":
			if r.URL.Query().Get("nome") == "ADM" {
				json.NewEncoder(w).Encode(map[string]any{
					"content":       []map[string]any{{"id": 3, "tipo": "ADMINISTRADOR"}},
					"totalElements": 1,
				})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{"content": []map[string]any{}, "totalElements": 0})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(servidor.Close)
	return servidor
}

func montarConsole(t *testing.T, backendURL string) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		APIBaseURL:  backendURL,
		APITimeout:  5 * time.Second,
		ServerPort:  "0",
		SessionFile: filepath.Join(t.TempDir(), "sessao.json"),
	}
	return SetupRouter(cfg)
}

func executar(router *gin.Engine, metodo, caminho string, corpo any) *httptest.ResponseRecorder {
	var leitor *bytes.Reader
	if corpo != nil {
		dados, _ := json.Marshal(corpo)
		leitor = bytes.NewReader(dados)
	} else {
		leitor = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(metodo, caminho, leitor)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRotaAdminExigeSessao(t *testing.T) {
	backend := backendFalso(t, nil)
	router := montarConsole(t, backend.URL)

	w := executar(router, http.MethodGet, "/api/v1/leiloes", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Faça login")
}

func TestFluxoLoginEListagem(t *testing.T) {
	var viuToken string
	backend := backendFalso(t, &viuToken)
	router := montarConsole(t, backend.URL)

	login := executar(router, http.MethodPost, "/api/v1/login", map[string]string{
		"email": "ana@example.com",
		"senha": "segredo1",
	})
	require.Equal(t, http.StatusOK, login.Code)
	assert.Contains(t, login.Body.String(), `"autenticada":true`)
	assert.NotContains(t, login.Body.String(), "token-do-backend")

	lista := executar(router, http.MethodGet, "/api/v1/leiloes?titulo=note", nil)
	require.Equal(t, http.StatusOK, lista.Code)
	assert.Equal(t, "Bearer token-do-backend", viuToken)
	assert.Contains(t, lista.Body.String(), "Notebook")
	assert.Contains(t, lista.Body.String(), `"estado":"SUCESSO"`)
}

func TestLoginComCredenciaisRuinsPropagaMensagem(t *testing.T) {
	backend := backendFalso(t, nil)
	router := montarConsole(t, backend.URL)

	w := executar(router, http.MethodPost, "/api/v1/login", map[string]string{
		"email": "ana@example.com",
		"senha": "errada",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Credenciais inválidas")
}

func TestLoginSemSenhaEcoaEmail(t *testing.T) {
	backend := backendFalso(t, nil)
	router := montarConsole(t, backend.URL)

	w := executar(router, http.MethodPost, "/api/v1/login", map[string]string{
		"email": "ana@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ana@example.com")
	assert.Contains(t, w.Body.String(), "Campo obrigatório")
}

func TestVitrinePublicaSemSessao(t *testing.T) {
	backend := backendFalso(t, nil)
	router := montarConsole(t, backend.URL)

	w := executar(router, http.MethodGet, "/api/v1/publicos/leiloes", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Violão clássico")
}

func TestVitrinePublicaRefinaPorTituloSemAcentos(t *testing.T) {
	backend := backendFalso(t, nil)
	router := montarConsole(t, backend.URL)

	w := executar(router, http.MethodGet, "/api/v1/publicos/leiloes?q=violao", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Violão clássico")

	w = executar(router, http.MethodGet, "/api/v1/publicos/leiloes?q=bicicleta", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Violão clássico")
}

func TestVitrineDetalheComCorpoVazioVira404(t *testing.T) {
	backend := backendFalso(t, nil)
	router := montarConsole(t, backend.URL)

	w := executar(router, http.MethodGet, "/api/v1/publicos/leiloes/7", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Leilão não encontrado")
}

func TestListagemDePerfisFiltraPorNome(t *testing.T) {
	backend := backendFalso(t, nil)
	router := montarConsole(t, backend.URL)

	login := executar(router, http.MethodPost, "/api/v1/login", map[string]string{
		"email": "ana@example.com",
		"senha": "segredo1",
	})
	require.Equal(t, http.StatusOK, login.Code)

	w := executar(router, http.MethodGet, "/api/v1/perfis?nome=ADM", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ADMINISTRADOR")
	assert.Contains(t, w.Body.String(), `"estado":"SUCESSO"`)

	w = executar(router, http.MethodGet, "/api/v1/perfis", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"estado":"VAZIO"`)
}

func TestLeiloesPorStatus(t *testing.T) {
	backend := backendFalso(t, nil)
	router := montarConsole(t, backend.URL)

	login := executar(router, http.MethodPost, "/api/v1/login", map[string]string{
		"email": "ana@example.com",
		"senha": "segredo1",
	})
	require.Equal(t, http.StatusOK, login.Code)

	w := executar(router, http.MethodGet, "/api/v1/leiloes/status/ATIVO", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mesa de jantar")

	w = executar(router, http.MethodGet, "/api/v1/leiloes/status/QUALQUER", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Status desconhecido")
}

func TestCriarLeilaoComDataFimAnteriorAoInicio(t *testing.T) {
	backend := backendFalso(t, nil)
	router := montarConsole(t, backend.URL)

	login := executar(router, http.MethodPost, "/api/v1/login", map[string]string{
		"email": "ana@example.com",
		"senha": "segredo1",
	})
	require.Equal(t, http.StatusOK, login.Code)

	payload := map[string]any{
		"titulo":         "Bicicleta",
		"descricao":      "Aro 29, pouco uso",
		"dataHoraInicio": "2026-09-10T10:00:00",
		"dataHoraFim":    "2026-09-09T10:00:00",
		"categoriaId":    1,
	}
	w := executar(router, http.MethodPost, "/api/v1/leiloes", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Data de fim deve ser posterior à de início")

	payload["dataHoraFim"] = "2026-09-12T10:00:00"
	w = executar(router, http.MethodPost, "/api/v1/leiloes", payload)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Bicicleta")
}

func TestFiltroComIntervaloInvalido(t *testing.T) {
	backend := backendFalso(t, nil)
	router := montarConsole(t, backend.URL)

	login := executar(router, http.MethodPost, "/api/v1/login", map[string]string{
		"email": "ana@example.com",
		"senha": "segredo1",
	})
	require.Equal(t, http.StatusOK, login.Code)

	w := executar(router, http.MethodGet, "/api/v1/leiloes?lanceMinFrom=500&lanceMinTo=100", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "lanceMinFrom")
}

func TestValidacaoDeFormularioEmAndamento(t *testing.T) {
	backend := backendFalso(t, nil)
	router := montarConsole(t, backend.URL)

	w := executar(router, http.MethodPost, "/api/v1/formularios/leilao/validar", map[string]any{
		"valores": map[string]any{"titulo": ""},
		"tocados": []string{"titulo"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Título é obrigatório")
	assert.Contains(t, w.Body.String(), `"valido":false`)
}

func TestValidacaoDeFormularioNaSubmissao(t *testing.T) {
	backend := backendFalso(t, nil)
	router := montarConsole(t, backend.URL)

	w := executar(router, http.MethodPost, "/api/v1/formularios/categoria/validar", map[string]any{
		"valores":  map[string]any{"nome": "Eletrônicos"},
		"submeter": true,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valido":true`)
}

func TestLogoutDerrubaSessao(t *testing.T) {
	backend := backendFalso(t, nil)
	router := montarConsole(t, backend.URL)

	login := executar(router, http.MethodPost, "/api/v1/login", map[string]string{
		"email": "ana@example.com",
		"senha": "segredo1",
	})
	require.Equal(t, http.StatusOK, login.Code)

	logout := executar(router, http.MethodPost, "/api/v1/logout", nil)
	require.Equal(t, http.StatusOK, logout.Code)

	w := executar(router, http.MethodGet, "/api/v1/leiloes", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
