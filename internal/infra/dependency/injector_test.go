package dependency_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/print-shop/ledger/config"
	"github.com/print-shop/ledger/internal/infra/dependency"
	"github.com/print-shop/ledger/internal/integration/entrypoint/dto"
	"github.com/print-shop/ledger/internal/testsupport"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Redis: config.RedisConfig{
			LockKey: "ledger:test-lock",
			LockTTL: 5 * time.Second,
		},
		Ledger: config.LedgerConfig{
			Timezone:    "UTC",
			LockTimeout: time.Second,
		},
		Report: config.ReportConfig{
			TopExpenses:       5,
			ExportMaxRequests: 1,
			ExportRateWindow:  time.Minute,
		},
	}
}

type api struct {
	t      *testing.T
	engine *gin.Engine
}

func newAPI(t *testing.T, cfg *config.Config) *api {
	t.Helper()

	ledger := testsupport.NewLedger(t)
	inj, err := dependency.NewInjector(context.Background(), cfg, ledger.DB, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = inj.Close() })

	return &api{t: t, engine: inj.Router.Setup(cfg.Server.Environment)}
}

func (a *api) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (a *api) createCategory(name, categoryType string, requiresEmployee bool) dto.CategoryResponse {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/v1/categories", map[string]any{
		"name":              name,
		"type":              categoryType,
		"requires_employee": requiresEmployee,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.CategoryResponse](a.t, w)
}

func (a *api) createSource(name, categoryID string) dto.SourceResponse {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/v1/sources", map[string]any{
		"name":        name,
		"category_id": categoryID,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.SourceResponse](a.t, w)
}

func (a *api) record(body map[string]any) *httptest.ResponseRecorder {
	a.t.Helper()
	return a.do(http.MethodPost, "/api/v1/transactions", body)
}

func TestHealthReportsLockBackend(t *testing.T) {
	a := newAPI(t, testConfig())

	w := a.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string]string](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, "mutex", body["lock_backend"])
}

func TestInjectorUsesRedisLockWhenConfigured(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Redis.URL = "redis://" + mr.Addr()
	a := newAPI(t, cfg)

	w := a.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "redis", decode[map[string]string](t, w)["lock_backend"])

	cat := a.createCategory("Printing", "income", false)
	assert.NotEmpty(t, cat.ID)
	assert.False(t, mr.Exists("ledger:test-lock"), "lock must be released after the write")
}

func TestInjectorRejectsUnknownTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Ledger.Timezone = "Mars/Olympus_Mons"

	_, err := dependency.NewInjector(context.Background(), cfg, testsupport.NewLedger(t).DB, slog.Default())
	assert.Error(t, err)
}

func TestLedgerFlowOverHTTP(t *testing.T) {
	a := newAPI(t, testConfig())

	printing := a.createCategory("Printing", "income", false)
	supplies := a.createCategory("Supplies", "expense", false)
	salaries := a.createCategory("Salaries", "expense", true)
	counter := a.createSource("Counter", printing.ID)
	paperCo := a.createSource("Paper Co", supplies.ID)
	payroll := a.createSource("Payroll", salaries.ID)

	employeeID := "0190b3a0-0000-7000-8000-000000000001"
	for _, body := range []map[string]any{
		{"type": "income", "category_id": printing.ID, "source_id": counter.ID, "amount": "5000", "date": "2024-05-02"},
		{"type": "expense", "category_id": supplies.ID, "source_id": paperCo.ID, "amount": "1200.50", "date": "2024-05-03", "description": "A3 paper"},
		{"type": "expense", "category_id": salaries.ID, "source_id": payroll.ID, "amount": 800, "date": "2024-05-05", "employee_id": employeeID},
		{"type": "expense", "category_id": supplies.ID, "source_id": paperCo.ID, "amount": "99.99", "date": "2024-06-01"},
	} {
		w := a.record(body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// Listing by month
	w := a.do(http.MethodGet, "/api/v1/transactions?year=2024&month=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[dto.TransactionListResponse](t, w)
	require.Equal(t, 3, list.Count)
	assert.Equal(t, "2024-05-05", list.Transactions[0].Date)
	assert.Equal(t, "800.00", list.Transactions[0].Amount)
	assert.Equal(t, "2024-05-02", list.Transactions[2].Date)

	// Listing by year and all time
	w = a.do(http.MethodGet, "/api/v1/transactions?year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, decode[dto.TransactionListResponse](t, w).Count)
	w = a.do(http.MethodGet, "/api/v1/transactions?scope=all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, decode[dto.TransactionListResponse](t, w).Count)

	// Monthly summary
	w = a.do(http.MethodGet, "/api/v1/reports/summary?year=2024&month=5&top=2", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	summary := decode[dto.SummaryResponse](t, w)
	assert.Equal(t, "5000.00", summary.TotalIncome)
	assert.Equal(t, "2000.50", summary.TotalExpenses)
	assert.Equal(t, "2999.50", summary.NetProfit)
	assert.Equal(t, 3, summary.TransactionCount)
	require.Len(t, summary.TopExpenses, 2)
	assert.Equal(t, "Supplies", summary.TopExpenses[0].CategoryName)
	assert.Equal(t, "Paper Co", summary.TopExpenses[0].SourceName)
	require.Len(t, summary.ExpensesByEmployee, 1)
	assert.Equal(t, employeeID, summary.ExpensesByEmployee[0].EmployeeID)
	assert.Equal(t, "May 2024", summary.Scope.Label)

	// Active periods, newest first
	w = a.do(http.MethodGet, "/api/v1/reports/periods", nil)
	require.Equal(t, http.StatusOK, w.Code)
	periods := decode[dto.PeriodListResponse](t, w)
	require.Len(t, periods.Periods, 2)
	assert.Equal(t, 6, periods.Periods[0].Month)
	assert.Equal(t, 5, periods.Periods[1].Month)

	// Export, then throttled
	w = a.do(http.MethodGet, "/api/v1/reports/summary/export?scope=all", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ledger-summary-all.xlsx")
	assert.NotZero(t, w.Body.Len())
	w = a.do(http.MethodGet, "/api/v1/reports/summary/export?scope=all", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestErrorKindsMapToStatusCodes(t *testing.T) {
	a := newAPI(t, testConfig())

	printing := a.createCategory("Printing", "income", false)
	counter := a.createSource("Counter", printing.ID)
	w := a.record(map[string]any{
		"type": "income", "category_id": printing.ID, "source_id": counter.ID, "amount": "10", "date": "2024-05-02",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("conflict carries the referencing count", func(t *testing.T) {
		w := a.do(http.MethodDelete, "/api/v1/categories/"+printing.ID, nil)
		require.Equal(t, http.StatusConflict, w.Code)
		body := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, "CAT-030002", body.Code)
		assert.Equal(t, "conflict", body.Kind)
		assert.Equal(t, int64(2), body.ReferencingCount)
	})

	t.Run("type change of a referenced category", func(t *testing.T) {
		w := a.do(http.MethodPatch, "/api/v1/categories/"+printing.ID, map[string]any{"type": "expense"})
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "CAT-030001", decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("referential integrity", func(t *testing.T) {
		w := a.do(http.MethodPost, "/api/v1/sources", map[string]any{
			"name": "Ghost", "category_id": "0190b3a0-0000-7000-8000-00000000dead",
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "referential_integrity", decode[dto.ErrorResponse](t, w).Kind)
	})

	t.Run("validation", func(t *testing.T) {
		w := a.record(map[string]any{
			"type": "income", "category_id": printing.ID, "source_id": counter.ID, "amount": "10.005", "date": "2024-05-02",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "validation", decode[dto.ErrorResponse](t, w).Kind)
	})

	t.Run("not found", func(t *testing.T) {
		w := a.do(http.MethodGet, "/api/v1/transactions/0190b3a0-0000-7000-8000-00000000beef", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "not_found", decode[dto.ErrorResponse](t, w).Kind)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := a.do(http.MethodGet, "/api/v1/sources/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("scope combined with a period", func(t *testing.T) {
		w := a.do(http.MethodGet, "/api/v1/reports/summary?scope=all&year=2024", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "RPT-010005", decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("summary without a year", func(t *testing.T) {
		w := a.do(http.MethodGet, "/api/v1/reports/summary?month=5", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "RPT-010001", decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("top out of range", func(t *testing.T) {
		w := a.do(http.MethodGet, "/api/v1/reports/summary?scope=all&top=101", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "RPT-010007", decode[dto.ErrorResponse](t, w).Code)
	})
}

func TestCategoryAndSourceLifecycleOverHTTP(t *testing.T) {
	a := newAPI(t, testConfig())

	supplies := a.createCategory("Supplies", "expense", false)
	ink := a.createCategory("Ink", "expense", false)
	src := a.createSource("Paper Co", supplies.ID)

	w := a.do(http.MethodPatch, "/api/v1/categories/"+ink.ID, map[string]any{"parent_category_id": supplies.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, decode[dto.CategoryResponse](t, w).ParentCategoryID)

	w = a.do(http.MethodGet, "/api/v1/categories?type=expense", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[dto.CategoryListResponse](t, w).Categories, 2)

	w = a.do(http.MethodGet, "/api/v1/sources?category_id="+supplies.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[dto.SourceListResponse](t, w).Sources, 1)

	// Unreferenced sources can move between categories.
	w = a.do(http.MethodPatch, "/api/v1/sources/"+src.ID, map[string]any{"category_id": ink.ID, "is_active": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[dto.SourceResponse](t, w)
	assert.Equal(t, ink.ID, updated.CategoryID)
	assert.False(t, updated.IsActive)

	w = a.do(http.MethodDelete, "/api/v1/sources/"+src.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = a.do(http.MethodGet, "/api/v1/sources/"+src.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
