package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-gateway/internal/application/analytics"
	"github.com/jhoicas/wms-gateway/internal/application/inventory"
	"github.com/jhoicas/wms-gateway/internal/domain"
	"github.com/jhoicas/wms-gateway/internal/domain/entity"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
	"github.com/jhoicas/wms-gateway/internal/infrastructure/pdf"
	"github.com/jhoicas/wms-gateway/internal/infrastructure/wms/wmstest"
	apphttp "github.com/jhoicas/wms-gateway/internal/interfaces/http"
	"github.com/jhoicas/wms-gateway/pkg/config"
	"github.com/jhoicas/wms-gateway/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = func() time.Time { return time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC) }

var testWMS = config.WMSConfig{BaseURL: "https://wms.example.com/acme", User: "api", Password: "s3cret"}

// buildTestApp construye la app completa sobre un repositorio falso, con el
// mismo codec JSON que cmd/api.
func buildTestApp(repo *wmstest.Repo, debugEnv bool) *fiber.App {
	qb := query.NewBuilder(query.DefaultCodes())
	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:         "wms-gateway",
		WMS:             testWMS,
		DebugEnvEnabled: debugEnv,
		Lookup:          inventory.NewLookupUseCase(repo, qb),
		Replenishment:   inventory.NewReplenishmentUseCase(repo, qb, fixedNow),
		KPI:             analytics.NewKPIUseCase(repo, qb, fixedNow),
		PDF:             pdf.NewMarotoReportGenerator(),
	})
	return app
}

// get ejecuta la petición y decodifica el cuerpo JSON.
func get(t *testing.T, app *fiber.App, target string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	if json.Valid(raw) {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp, body
}

// ──────────────────────────────────────────────────────────────────────────────
// Sistema
// ──────────────────────────────────────────────────────────────────────────────

func TestHome(t *testing.T) {
	resp, body := get(t, buildTestApp(wmstest.New(), false), "/")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["message"])
}

func TestHealth(t *testing.T) {
	_, body := get(t, buildTestApp(wmstest.New(), false), "/health")
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "wms-gateway", body["service"])
}

func TestDebugEnv_EnmascaraPassword(t *testing.T) {
	_, body := get(t, buildTestApp(wmstest.New(), true), "/debug-env")
	assert.Equal(t, testWMS.BaseURL, body["WMS_BASE_URL"])
	assert.Equal(t, "api", body["WMS_USER"])
	assert.Equal(t, "******", body["WMS_PASSWORD"])
}

func TestDebugEnv_DeshabilitadoPorDefecto(t *testing.T) {
	resp, _ := get(t, buildTestApp(wmstest.New(), false), "/debug-env")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRequestID_SePropaga(t *testing.T) {
	app := buildTestApp(wmstest.New(), false)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(apphttp.HeaderRequestID), 36, "se genera un UUID si no viene")
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas directas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOrder_ParametrosFaltantes(t *testing.T) {
	repo := wmstest.New()
	resp, body := get(t, buildTestApp(repo, false), "/getOrder?from_date=2024-05-01")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "los errores viajan con HTTP 200")
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, string(domain.KindValidation), body["kind"])
	assert.Empty(t, repo.Calls(), "no se consulta el WMS con parámetros inválidos")
}

func TestGetOrder_SinDatos(t *testing.T) {
	repo := wmstest.New()
	_, body := get(t, buildTestApp(repo, false), "/getOrder?from_date=2024-05-01&to_date=2024-05-02&facility_code=F01")

	assert.Equal(t, "success", body["status"])
	assert.Equal(t, true, body["noData"])
	assert.Equal(t, []any{}, body["rows"])
	require.Len(t, repo.Calls(), 1)
}

func TestGetOnhand_Filas(t *testing.T) {
	repo := wmstest.New().On(query.EntityInventory, entity.Row{"item_id__code": "A", "curr_qty": "4"})
	_, body := get(t, buildTestApp(repo, false), "/getOnhand?items=A,%20B&facility=F01")

	assert.Equal(t, false, body["noData"])
	rows, ok := body["rows"].([]any)
	require.True(t, ok)
	assert.Len(t, rows, 1)

	calls := repo.CallsFor(query.EntityInventory)
	require.Len(t, calls, 1)
	assert.Equal(t, "A,B", calls[0].Get("item_id__code__in"))
}

func TestExistMoveReq_ErrorUpstream(t *testing.T) {
	repo := wmstest.New().Fail(query.EntityMovementRequest, &domain.Error{
		Kind: domain.KindUpstreamStatus, Message: "WMS returned HTTP 401", HTTPStatus: 401, Body: "unauthorized",
	})
	resp, body := get(t, buildTestApp(repo, false), "/existMoveReq?items=A&facility=F01")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "upstream_status", body["kind"])
	assert.EqualValues(t, 401, body["httpStatus"])
	assert.Equal(t, "unauthorized", body["body"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Reposición y KPIs
// ──────────────────────────────────────────────────────────────────────────────

func TestReplenSummary(t *testing.T) {
	repo := wmstest.New().On(query.EntityOrderDetail,
		entity.Row{"item_id__code": "A", "ord_qty": "5"},
		entity.Row{"item_id__code": "A", "ord_qty": "3"},
	)
	_, body := get(t, buildTestApp(repo, false), "/replenSummary?days=3&facility=F01")

	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "2024-05-11", body["from_date"])
	assert.Equal(t, "2024-05-14", body["to_date"])
	rows := body["rows"].([]any)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 8, rows[0].(map[string]any)["ordered_qty"])
}

func TestReplenSummaryPDF(t *testing.T) {
	repo := wmstest.New().On(query.EntityOrderDetail, entity.Row{"item_id__code": "A", "ord_qty": "5"})
	app := buildTestApp(repo, false)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/replenSummary/pdf?days=1&facility=F01", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestKPI_DaysNoNumerico(t *testing.T) {
	for _, path := range []string{
		"/replenSummary", "/replenSummary/pdf", "/shippingKPI", "/receivingKPI",
		"/flowKPI", "/onTimeReceivingKPI", "/dockToStockKPI",
	} {
		t.Run(path, func(t *testing.T) {
			repo := wmstest.New()
			_, body := get(t, buildTestApp(repo, false), path+"?days=abc&facility=F01")

			assert.Equal(t, "error", body["status"])
			assert.Equal(t, "validation", body["kind"])
			assert.Contains(t, body["message"], "days")
			assert.Empty(t, repo.Calls())
		})
	}
}

func TestShippingKPI(t *testing.T) {
	repo := wmstest.New().On(query.EntityHistory,
		entity.Row{"item_code": "A", "adj_qty": "-5", "lpn_nbr": "L1", "order_nbr": "O1"},
	)
	_, body := get(t, buildTestApp(repo, false), "/shippingKPI?days=1&facility=F01")

	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "2024-05-09T15:30:00Z", body["from_date"])
	summary := body["summary"].(map[string]any)
	assert.EqualValues(t, 5, summary["units"])
	assert.EqualValues(t, 1, summary["orders"])
}

func TestFlowKPI(t *testing.T) {
	_, body := get(t, buildTestApp(wmstest.New(), false), "/flowKPI?days=2&facility=F01")

	summary := body["summary"].(map[string]any)
	assert.Contains(t, summary, "shipping")
	assert.Contains(t, summary, "receiving")
}

func TestDockToStockKPI_ErrorTransporte(t *testing.T) {
	repo := wmstest.New().Fail(query.EntityHistory, &domain.Error{
		Kind: domain.KindTransport, Message: "WMS request timed out after 30s",
	})
	_, body := get(t, buildTestApp(repo, false), "/dockToStockKPI?days=2&facility=F01")

	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "transport", body["kind"])
	assert.Equal(t, "WMS request timed out after 30s", body["message"])
	assert.NotContains(t, body, "httpStatus")
}

func TestKPI_DaysFueraDeRango(t *testing.T) {
	repo := wmstest.New()
	_, body := get(t, buildTestApp(repo, false), "/shippingKPI?days=200000&facility=F01")

	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "validation", body["kind"])
	assert.Equal(t, "days must be <= 3650, got 200000", body["message"])
	assert.Empty(t, repo.Calls())
}

func TestReplenSummary_CantidadesComoNumerosJSON(t *testing.T) {
	repo := wmstest.New().
		On(query.EntityOrderDetail,
			entity.Row{"item_id__code": "A", "ord_qty": "5"},
			entity.Row{"item_id__code": "A", "ord_qty": "3"},
			entity.Row{"item_id__code": "B", "ord_qty": "2"},
		).
		On(query.EntityInventory, entity.Row{"item_id__code": "B", "curr_qty": "1.5"})

	resp, err := buildTestApp(repo, false).Test(
		httptest.NewRequest(http.MethodGet, "/replenSummary?days=7&facility=F01", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"status": "success",
		"from_date": "2024-05-11",
		"to_date": "2024-05-18",
		"rows": [
			{"item":"A","ordered_qty":8,"onhand_qty":0,"pending_mo_qty":0},
			{"item":"B","ordered_qty":2,"onhand_qty":1.5,"pending_mo_qty":0}
		]
	}`, string(raw))
}
