package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techtitans/estoque-front/internal/application/resolver"
	"github.com/techtitans/estoque-front/internal/application/usecase"
	"github.com/techtitans/estoque-front/internal/infrastructure/backend"
	"github.com/techtitans/estoque-front/internal/infrastructure/memory"
	apphttp "github.com/techtitans/estoque-front/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret     = "test-secret-key-for-unit-tests"
	testCookieName = "tt_session"
)

// fakeBackend simula o backend Flask: login de chefe/funcionário, consulta de
// empresa e CRUD de produtos/funcionários com respostas fixas.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		switch body["cpf"] {
		case "11122233344":
			_, _ = w.Write([]byte(`{"message":"ok","user":{"cpf":"11122233344","name":"João","user_type":"chefe"}}`))
		case "55566677788":
			_, _ = w.Write([]byte(`{"message":"ok","user":{"cpf":"55566677788","name":"Maria","user_type":"funcionario","company_id":7}}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Usuário não encontrado"}`))
		}
	})
	mux.HandleFunc("/company/7", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":7,"name":"Acme"}`))
	})
	mux.HandleFunc("/employees/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"employees":[{"cpf":"99988877766","company_id":1}]}`))
		case http.MethodPost:
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			_, _ = w.Write([]byte(`{"message":"ok","employee":{"cpf":"` + body["cpf"] + `","company_id":1}}`))
		case http.MethodDelete:
			_, _ = w.Write([]byte(`{"message":"ok"}`))
		}
	})
	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"products":[{"id":1,"name":"Açúcar","quantity":10,"value":5.5},{"id":2,"name":"Café","quantity":3,"value":22}]}`))
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"message":"ok","product":{"id":3,"name":"Sal","quantity":5,"value":3},"updated":false}`))
		default:
			_, _ = w.Write([]byte(`{"message":"ok"}`))
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// buildApp monta a aplicação completa com sessões em memória e o backend falso.
func buildApp(t *testing.T) *fiber.App {
	t.Helper()
	srv := fakeBackend(t)
	sessions := memory.NewSessionRepository()
	client := backend.New(srv.URL)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     usecase.NewAuthUseCase(client, sessions),
		CompanyUC:  usecase.NewCompanyUseCase(sessions),
		EmployeeUC: usecase.NewEmployeeUseCase(client),
		ProductUC:  usecase.NewProductUseCase(client),
		Resolver:   resolver.New(client, nil),
		Sessions:   sessions,
		Session: apphttp.SessionConfig{
			Secret:     testSecret,
			CookieName: testCookieName,
			ExpMinutes: 60,
		},
	})
	return app
}

// login faz POST /login e devolve o cookie de sessão.
func login(t *testing.T, app *fiber.App, cpf, password string) *http.Cookie {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/login", `{"cpf":"`+cpf+`","password":"`+password+`"}`, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "login deve aceitar as credenciais de teste")

	for _, cookie := range resp.Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}
	t.Fatal("login não devolveu o cookie de sessão")
	return nil
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string, cookie *http.Cookie) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ValidacaoDeCamposAntesDaRede(t *testing.T) {
	app := buildApp(t)

	resp := doJSON(t, app, http.MethodPost, "/login", `{"cpf":"123","password":"fraca"}`, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok, "resposta deve trazer erros por campo")
	assert.Equal(t, "CPF deve ter exatamente 11 números", errs["cpf"])
	assert.Equal(t, "Senha deve conter pelo menos uma letra maiúscula", errs["password"])
}

// Credencial rejeitada vira sempre a mensagem genérica, sem revelar se o CPF
// existe ou se a senha está errada.
func TestLogin_CredencialRejeitadaMensagemGenerica(t *testing.T) {
	app := buildApp(t)

	resp := doJSON(t, app, http.MethodPost, "/login", `{"cpf":"00000000000","password":"Senha123!"}`, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "CPF ou senha incorretos, tente novamente", body["message"])
}

func TestLogin_ChefeRecebeCookieERedirect(t *testing.T) {
	app := buildApp(t)

	resp := doJSON(t, app, http.MethodPost, "/login", `{"cpf":"111.222.333-44","password":"Senha123!"}`, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "/dashboard", body["redirect"])

	var found bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == testCookieName {
			found = true
			assert.True(t, cookie.HttpOnly)
			assert.NotEmpty(t, cookie.Value)
		}
	}
	assert.True(t, found, "login deve gravar o cookie de sessão")
}

func TestLogin_FuncionarioRedirect(t *testing.T) {
	app := buildApp(t)

	resp := doJSON(t, app, http.MethodPost, "/login", `{"cpf":"55566677788","password":"Senha123!"}`, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/employee-dashboard", decodeBody(t, resp)["redirect"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard: redirects de contexto
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_SemSessaoVaiParaLogin(t *testing.T) {
	app := buildApp(t)

	for _, path := range []string{"/dashboard", "/stock", "/employee-management", "/employees"} {
		resp := doJSON(t, app, http.MethodGet, path, "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusFound, resp.StatusCode, "%s sem sessão deve redirecionar", path)
		assert.Equal(t, "/", resp.Header.Get("Location"))
	}
}

// Chefe logado mas sem empresa selecionada: páginas de gestão voltam ao dashboard.
func TestGuard_ChefeSemSelecaoVoltaAoDashboard(t *testing.T) {
	app := buildApp(t)
	cookie := login(t, app, "11122233344", "Senha123!")

	resp := doJSON(t, app, http.MethodGet, "/stock", "", cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

// Funcionário em página de chefe vai para o próprio dashboard, e vice-versa.
func TestGuard_TipoErradoTrocaDeDashboard(t *testing.T) {
	app := buildApp(t)

	chefe := login(t, app, "11122233344", "Senha123!")
	resp := doJSON(t, app, http.MethodGet, "/employee-dashboard", "", chefe)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	funcionario := login(t, app, "55566677788", "Senha123!")
	resp = doJSON(t, app, http.MethodGet, "/dashboard", "", funcionario)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/employee-dashboard", resp.Header.Get("Location"))
}

// Funcionário resolve a empresa do próprio cadastro via backend.
func TestGuard_FuncionarioResolveEmpresa(t *testing.T) {
	app := buildApp(t)
	cookie := login(t, app, "55566677788", "Senha123!")

	resp := doJSON(t, app, http.MethodGet, "/employee-dashboard", "", cookie)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Empresa: Acme", body["title"])
}

// As telas de estoque e gestão também servem o funcionário: a empresa vem do
// próprio cadastro (company_id), sem passar pelo dashboard do chefe.
func TestGuard_FuncionarioAcessaEstoque(t *testing.T) {
	app := buildApp(t)
	cookie := login(t, app, "55566677788", "Senha123!")

	resp := doJSON(t, app, http.MethodGet, "/stock", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode, "funcionário deve carregar o estoque")
	body := decodeBody(t, resp)
	resp.Body.Close()
	assert.Equal(t, "Estoque - Acme", body["title"])

	resp = doJSON(t, app, http.MethodGet, "/add-products", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	resp.Body.Close()
	assert.Equal(t, "Produtos - Acme", body["title"])

	// As operações de produto valem com a empresa resolvida do cadastro.
	resp = doJSON(t, app, http.MethodGet, "/stock/products?search=", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	resp.Body.Close()
	assert.Len(t, body["products"].([]any), 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fluxo do chefe: dashboard → empresas → seleção → páginas
// ──────────────────────────────────────────────────────────────────────────────

func TestFluxoChefe_DashboardEEmpresas(t *testing.T) {
	app := buildApp(t)
	cookie := login(t, app, "11122233344", "Senha123!")

	// Primeira carga semeia "Empresa 1".
	resp := doJSON(t, app, http.MethodGet, "/dashboard", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	resp.Body.Close()
	companies := body["companies"].([]any)
	require.Len(t, companies, 1)
	assert.Equal(t, true, body["can_add"])

	// Adiciona até o limite.
	for i := 0; i < 2; i++ {
		resp = doJSON(t, app, http.MethodPost, "/companies", "", cookie)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		body = decodeBody(t, resp)
		resp.Body.Close()
	}
	assert.Equal(t, false, body["can_add"], "com 3 empresas o botão some")

	// A quarta é rejeitada.
	resp = doJSON(t, app, http.MethodPost, "/companies", "", cookie)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body = decodeBody(t, resp)
	resp.Body.Close()
	assert.Equal(t, "Máximo de 3 empresas permitidas", body["message"])

	// Seleciona a segunda e acessa uma página de gestão.
	resp = doJSON(t, app, http.MethodPost, "/companies/1/select", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/stock", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	resp.Body.Close()
	assert.Equal(t, "Estoque - Empresa 2", body["title"])
}

func TestRenameCompany_NomeVazioRejeitado(t *testing.T) {
	app := buildApp(t)
	cookie := login(t, app, "11122233344", "Senha123!")

	resp := doJSON(t, app, http.MethodGet, "/dashboard", "", cookie) // semeia
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/companies/0", `{"name":"   "}`, cookie)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errs := decodeBody(t, resp)["errors"].(map[string]any)
	assert.Equal(t, "Nome da empresa não pode estar vazio", errs["name"])
}

func TestDeleteCompany_UltimaRejeitada(t *testing.T) {
	app := buildApp(t)
	cookie := login(t, app, "11122233344", "Senha123!")

	resp := doJSON(t, app, http.MethodGet, "/dashboard", "", cookie) // semeia
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/companies/0", "", cookie)
	defer resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], "última empresa")
}

// ──────────────────────────────────────────────────────────────────────────────
// Estoque e produtos
// ──────────────────────────────────────────────────────────────────────────────

func selecionaEmpresa(t *testing.T, app *fiber.App, cookie *http.Cookie) {
	t.Helper()
	resp := doJSON(t, app, http.MethodGet, "/dashboard", "", cookie)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/companies/0/select", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestStockProducts_BuscaEEstatisticas(t *testing.T) {
	app := buildApp(t)
	cookie := login(t, app, "11122233344", "Senha123!")
	selecionaEmpresa(t, app, cookie)

	// Busca sem acento encontra "Açúcar"; estatísticas sobre a lista completa.
	resp := doJSON(t, app, http.MethodGet, "/stock/products?search=acucar", "", cookie)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	products := body["products"].([]any)
	require.Len(t, products, 1)

	stats := body["stats"].(map[string]any)
	assert.Equal(t, float64(2), stats["total_products"])
	assert.Equal(t, float64(13), stats["total_quantity"])
	// 10*5.5 + 3*22 = 121 (serializado como string pelo decimal)
	assert.Equal(t, "121", stats["total_value"])
}

func TestAddProduct_ValidacaoDeCampos(t *testing.T) {
	app := buildApp(t)
	cookie := login(t, app, "11122233344", "Senha123!")
	selecionaEmpresa(t, app, cookie)

	resp := doJSON(t, app, http.MethodPost, "/products", `{"name":"","quantity":"-1","value":"abc"}`, cookie)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errs := decodeBody(t, resp)["errors"].(map[string]any)
	assert.Equal(t, "Nome do produto é obrigatório", errs["name"])
	assert.Equal(t, "Quantidade deve ser um número maior ou igual a zero", errs["quantity"])
	assert.Equal(t, "Valor deve ser um número maior ou igual a zero", errs["value"])
}

// Quantity aceita número ou string no corpo JSON.
func TestAddProduct_QuantidadeComoNumero(t *testing.T) {
	app := buildApp(t)
	cookie := login(t, app, "11122233344", "Senha123!")
	selecionaEmpresa(t, app, cookie)

	resp := doJSON(t, app, http.MethodPost, "/products", `{"name":"Sal","quantity":5,"value":3}`, cookie)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Produto adicionado com sucesso!", body["message"])
	assert.Equal(t, false, body["updated"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Funcionários
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployees_ListaComCPFFormatado(t *testing.T) {
	app := buildApp(t)
	cookie := login(t, app, "11122233344", "Senha123!")
	selecionaEmpresa(t, app, cookie)

	resp := doJSON(t, app, http.MethodGet, "/employees", "", cookie)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	employees := body["employees"].([]any)
	require.Len(t, employees, 1)
	first := employees[0].(map[string]any)
	assert.Equal(t, "999.888.777-66", first["cpf_formatted"])
	assert.Equal(t, "Empresa 1", first["company_name"])
}

func TestCreateEmployee_ValidacaoDeCampos(t *testing.T) {
	app := buildApp(t)
	cookie := login(t, app, "11122233344", "Senha123!")
	selecionaEmpresa(t, app, cookie)

	resp := doJSON(t, app, http.MethodPost, "/employees", `{"cpf":"123","password":"semforça"}`, cookie)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errs := decodeBody(t, resp)["errors"].(map[string]any)
	assert.Contains(t, errs, "cpf")
	assert.Contains(t, errs, "password")
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

// Depois do logout a sessão some por inteiro: o mesmo cookie não vale mais.
func TestLogout_DestroiSessaoInteira(t *testing.T) {
	app := buildApp(t)
	cookie := login(t, app, "11122233344", "Senha123!")

	resp := doJSON(t, app, http.MethodPost, "/logout", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/dashboard", "", cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}
