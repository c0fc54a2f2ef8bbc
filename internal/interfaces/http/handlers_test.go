package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercogestor-api/internal/application/analytics"
	"github.com/jhoicas/mercogestor-api/internal/application/auth"
	"github.com/jhoicas/mercogestor-api/internal/application/usecase"
	"github.com/jhoicas/mercogestor-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/mercogestor-api/internal/interfaces/http"
	"github.com/jhoicas/mercogestor-api/pkg/logger"
)

var fixedNow = time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

// newTestApp monta a API completa sobre o armazenamento em memória.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	clock := func() time.Time { return fixedNow }
	s := memory.NewStore()
	cascade := usecase.DefaultCascadePolicy()
	loader := analytics.NewLoader(s.Products(), s.Movements())

	app := apphttp.NewApp(apphttp.AppConfig{Name: "mercogestor-test"}, logger.Nop())
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC: usecase.NewCategoryUseCase(s.Categories(), s.Products(), cascade, nil),
		ProductUC: usecase.NewProductUseCase(s.Products(), s.Categories(), s.Movements(),
			usecase.ProductOptions{Cascade: cascade, Clock: clock}, nil),
		MovementUC:  usecase.NewMovementUseCase(s.Movements(), s.Products()),
		UserUC:      usecase.NewUserUseCase(s.Users()),
		AuthUC:      auth.NewAuthUseCase(s.Credentials(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 5, Issuer: testIssuer}),
		AlertsUC:    analytics.NewAlertsUseCase(loader, 10, clock),
		ReportUC:    analytics.NewReportUseCase(loader, clock),
		DashboardUC: analytics.NewDashboardUseCase(loader, 10, clock),
		JWTSecret:   testJWTSecret,
	})
	return app
}

// call faz a requisição e decodifica o corpo JSON.
func call(t *testing.T, app *fiber.App, method, path string, body any, authHeader string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			r = strings.NewReader(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			r = bytes.NewReader(b)
		}
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestCategories_Fluxo(t *testing.T) {
	app := newTestApp(t)

	status, body := call(t, app, http.MethodGet, "/api/categories", nil, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{}, body["categories"], "lista vazia, não erro")

	status, body = call(t, app, http.MethodPost, "/api/categories", map[string]any{}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])

	status, body = call(t, app, http.MethodPost, "/api/categories", map[string]any{"categoria": "Grãos"}, "")
	require.Equal(t, http.StatusCreated, status)
	catID, _ := body["categoryId"].(string)
	require.NotEmpty(t, catID)

	status, _ = call(t, app, http.MethodPost, "/api/categories", map[string]any{"categoria": "Grãos"}, "")
	assert.Equal(t, http.StatusConflict, status)

	status, body = call(t, app, http.MethodPut, "/api/categories/"+catID, map[string]any{}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "NO_FIELDS", body["code"])

	status, _ = call(t, app, http.MethodPut, "/api/categories/nao-existe", map[string]any{"categoria": "X"}, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = call(t, app, http.MethodPost, "/api/products",
		map[string]any{"nome": "Arroz", "unidade": "kg", "minimo": 10, "categoria": "Grãos"}, "")
	require.Equal(t, http.StatusCreated, status)
	productID := body["productId"].(string)

	status, body = call(t, app, http.MethodDelete, "/api/categories/"+catID, nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["produtosAtualizados"])
	assert.Equal(t, false, body["pendentes"])
	deleted := body["deletedCategory"].(map[string]any)
	assert.Equal(t, "Grãos", deleted["categoria"])

	_, body = call(t, app, http.MethodGet, "/api/products/"+productID, nil, "")
	assert.Equal(t, "", body["product"].(map[string]any)["categoria"])
}

func TestProducts_CenarioArroz(t *testing.T) {
	app := newTestApp(t)

	// Números chegam como número ou como texto numérico.
	status, body := call(t, app, http.MethodPost, "/api/products",
		map[string]any{"nome": "Arroz", "unidade": "kg", "minimo": "10", "preco": "abc"}, "")
	require.Equal(t, http.StatusCreated, status, body)
	id := body["productId"].(string)

	for _, mv := range []map[string]any{
		{"productId": id, "tipo": "in", "quantidade": 40, "dataISO": "2024-05-01T10:00:00Z", "validadeLote": "2024-05-20"},
		{"productId": id, "tipo": "out", "quantidade": "18", "dataISO": "2024-05-02", "motivo": "sale"},
	} {
		status, body = call(t, app, http.MethodPost, "/api/movements", mv, "")
		require.Equal(t, http.StatusCreated, status, body)
	}

	_, body = call(t, app, http.MethodGet, "/api/products", nil, "")
	products := body["products"].([]any)
	require.Len(t, products, 1)
	p := products[0].(map[string]any)
	assert.Equal(t, float64(22), p["estoque"])
	assert.Equal(t, "ok", p["status"])
	assert.Nil(t, p["preco"], "preço inválido é tratado como ausente")

	status, _ = call(t, app, http.MethodPost, "/api/movements",
		map[string]any{"productId": id, "tipo": "out", "quantidade": 5, "dataISO": "2024-05-03"}, "")
	require.Equal(t, http.StatusCreated, status)
	status, body = call(t, app, http.MethodPut, "/api/products/"+id, map[string]any{"minimo": 20}, "")
	require.Equal(t, http.StatusOK, status)
	product := body["product"].(map[string]any)
	assert.Equal(t, float64(17), product["estoque"])
	assert.Equal(t, "low", product["status"])

	status, body = call(t, app, http.MethodGet, "/api/products/"+id+"/stock", nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "2024-05-20", body["proximaValidade"])

	_, body = call(t, app, http.MethodGet, "/api/alerts/low-stock", nil, "")
	assert.Len(t, body["items"], 1)

	_, body = call(t, app, http.MethodGet, "/api/alerts/expiration?dias=abc", nil, "")
	assert.Equal(t, float64(1), body["dias"])
	assert.Empty(t, body["items"])

	_, body = call(t, app, http.MethodGet, "/api/alerts/expiration", nil, "")
	assert.Equal(t, float64(10), body["dias"])
	assert.Len(t, body["items"], 1)

	status, body = call(t, app, http.MethodDelete, "/api/products/"+id, nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(3), body["movimentosRemovidos"])

	_, body = call(t, app, http.MethodGet, "/api/movements", nil, "")
	assert.Equal(t, []any{}, body["movements"])
}

func TestProducts_Erros(t *testing.T) {
	app := newTestApp(t)

	status, body := call(t, app, http.MethodPost, "/api/products", map[string]any{"nome": "Arroz", "unidade": "kg"}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])

	status, body = call(t, app, http.MethodPost, "/api/products", map[string]any{"nome": "Arroz", "unidade": "kg", "minimo": 0, "categoria": "Inexistente"}, "")
	require.Equal(t, http.StatusCreated, status)
	id := body["productId"].(string)

	status, body = call(t, app, http.MethodPut, "/api/products/"+id, map[string]any{"categoria": "Outra"}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "CATEGORY_NOT_FOUND", body["code"])

	status, body = call(t, app, http.MethodPut, "/api/products/"+id, map[string]any{"preco": "x"}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "NO_FIELDS", body["code"])

	status, _ = call(t, app, http.MethodGet, "/api/products/nao-existe", nil, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = call(t, app, http.MethodPost, "/api/products", `{"nome": "Feijão",`, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
}

func TestMovements_ProdutoInexistente(t *testing.T) {
	app := newTestApp(t)

	status, body := call(t, app, http.MethodPost, "/api/movements",
		map[string]any{"productId": "nao-existe", "tipo": "in", "quantidade": 5, "dataISO": "2024-05-01"}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "PRODUCT_NOT_FOUND", body["code"])

	_, body = call(t, app, http.MethodGet, "/api/movements", nil, "")
	assert.Equal(t, []any{}, body["movements"])
	assert.NotEmpty(t, body["message"])
}

func TestMovements_FiltrosEItem(t *testing.T) {
	app := newTestApp(t)
	_, body := call(t, app, http.MethodPost, "/api/products", map[string]any{"nome": "Leite", "unidade": "l", "minimo": 1}, "")
	id := body["productId"].(string)
	var movementID string
	for i, mv := range []map[string]any{
		{"productId": id, "tipo": "in", "quantidade": 10, "dataISO": "2024-01-01"},
		{"productId": id, "tipo": "out", "quantidade": 2, "dataISO": "2024-01-03T12:00:00Z"},
	} {
		status, body := call(t, app, http.MethodPost, "/api/movements", mv, "")
		require.Equal(t, http.StatusCreated, status)
		if i == 1 {
			movementID = body["movementId"].(string)
		}
	}

	_, body = call(t, app, http.MethodGet, "/api/movements?tipo=out&inicio=2024-01-02&fim=2024-01-03", nil, "")
	assert.Len(t, body["movements"], 1)

	status, body := call(t, app, http.MethodGet, "/api/movements?tipo=x", nil, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = call(t, app, http.MethodGet, "/api/movements/"+movementID, nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "out", body["movement"].(map[string]any)["tipo"])

	status, body = call(t, app, http.MethodPut, "/api/movements/"+movementID, map[string]any{"quantidade": 3}, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(3), body["movement"].(map[string]any)["quantidade"])

	status, _ = call(t, app, http.MethodDelete, "/api/movements/"+movementID, nil, "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = call(t, app, http.MethodGet, "/api/movements/"+movementID, nil, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func register(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	creds := map[string]any{"email": email, "password": "segredo1"}
	status, _ := call(t, app, http.MethodPost, "/api/auth/register", creds, "")
	require.Equal(t, http.StatusCreated, status)
	status, body := call(t, app, http.MethodPost, "/api/auth/login", creds, "")
	require.Equal(t, http.StatusOK, status)
	return "Bearer " + body["token"].(string)
}

func TestUsers_Permissoes(t *testing.T) {
	app := newTestApp(t)

	status, _ := call(t, app, http.MethodPost, "/api/users", map[string]any{"nome": "Ana"}, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	ana := register(t, app, "ana@loja.com")
	bia := register(t, app, "bia@loja.com")

	status, body := call(t, app, http.MethodPost, "/api/users", map[string]any{"nome": "Ana", "role": "admin"}, ana)
	require.Equal(t, http.StatusCreated, status)
	anaID := body["userId"].(string)
	status, body = call(t, app, http.MethodPost, "/api/users", map[string]any{"nome": "Bia", "role": "admin"}, bia)
	require.Equal(t, http.StatusCreated, status)
	biaID := body["userId"].(string)

	status, _ = call(t, app, http.MethodPost, "/api/users", map[string]any{"nome": "Ana"}, ana)
	assert.Equal(t, http.StatusConflict, status)

	_, body = call(t, app, http.MethodGet, "/api/users/"+biaID, nil, "")
	assert.Equal(t, "operador", body["user"].(map[string]any)["role"])
	assert.Equal(t, "bia@loja.com", body["user"].(map[string]any)["email"])

	status, body = call(t, app, http.MethodPut, "/api/users/"+anaID, map[string]any{"nome": "X"}, bia)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body["code"])

	status, body = call(t, app, http.MethodPut, "/api/users/"+biaID, map[string]any{"nome": "Beatriz", "role": "admin"}, bia)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "operador", body["user"].(map[string]any)["role"], "papel enviado por não admin é ignorado")

	status, body = call(t, app, http.MethodPut, "/api/users/"+biaID, map[string]any{"role": "visualizador"}, ana)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "visualizador", body["user"].(map[string]any)["role"])

	status, _ = call(t, app, http.MethodDelete, "/api/users/"+biaID, nil, ana)
	assert.Equal(t, http.StatusOK, status)

	_, body = call(t, app, http.MethodGet, "/api/users", nil, "")
	assert.Len(t, body["users"], 1)
}

func TestAuth_Erros(t *testing.T) {
	app := newTestApp(t)
	register(t, app, "ana@loja.com")

	status, body := call(t, app, http.MethodPost, "/api/auth/register", map[string]any{"email": "ana@loja.com", "password": "outra123"}, "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["code"])

	status, body = call(t, app, http.MethodPost, "/api/auth/login", map[string]any{"email": "ana@loja.com", "password": "errada"}, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"])
}

func TestReportsEDashboard(t *testing.T) {
	app := newTestApp(t)
	_, body := call(t, app, http.MethodPost, "/api/products", map[string]any{"nome": "Arroz", "unidade": "kg", "minimo": 1}, "")
	id := body["productId"].(string)
	call(t, app, http.MethodPost, "/api/movements", map[string]any{"productId": id, "tipo": "in", "quantidade": 10, "dataISO": "2024-05-01"}, "")
	call(t, app, http.MethodPost, "/api/movements", map[string]any{"productId": id, "tipo": "out", "quantidade": 4, "dataISO": "2024-05-09"}, "")

	status, body := call(t, app, http.MethodGet, "/api/reports/summary?agrupar=month&de=2024-04-01&ate=2024-05-31", nil, "")
	require.Equal(t, http.StatusOK, status)
	series := body["series"].(map[string]any)
	assert.Equal(t, []any{"2024-04", "2024-05"}, series["labels"])
	kpis := body["kpis"].(map[string]any)
	assert.Equal(t, float64(6), kpis["saldo"])

	status, body = call(t, app, http.MethodGet, "/api/reports/summary?agrupar=week", nil, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])

	status, body = call(t, app, http.MethodGet, "/api/dashboard", nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["totalProdutos"])
	assert.Equal(t, float64(6), body["totalEstoque"])
	assert.Len(t, body["top"], 1)
}

func TestRotaDesconhecida_EnvelopeJSON(t *testing.T) {
	app := newTestApp(t)
	status, body := call(t, app, http.MethodGet, "/api/nada", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NOT_FOUND", body["code"])

	status, body = call(t, app, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestErrorHandler_500NaoVazaDetalhe(t *testing.T) {
	var logs bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "error", Out: &logs})
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("dial tcp 10.0.0.1:5432: connection refused")
	})

	status, body := call(t, app, http.MethodGet, "/boom", nil, "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body["code"])
	assert.NotContains(t, body["error"], "5432")

	// A causa fica só no log, marcada com o componente.
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &entry))
	assert.Equal(t, "http", entry["component"])
	assert.Equal(t, "/boom", entry["path"])
	assert.Contains(t, entry["error"], "connection refused")
}
