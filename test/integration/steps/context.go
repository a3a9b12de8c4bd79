// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/print-shop/ledger/config"
	"github.com/print-shop/ledger/internal/infra/dependency"
	"github.com/print-shop/ledger/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Ids saved by name, substituted into paths and bodies as {{name}}
	ids map[string]string

	// Infra
	db       *mock.Db
	redis    *mock.Redis
	injector *dependency.Injector
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		mock.NewDb("ledger_features")
		mock.NewRedis()
	})
}

func scenarioConfig(redisURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Redis: config.RedisConfig{
			URL:     redisURL,
			LockKey: "ledger:features-lock",
			LockTTL: 5 * time.Second,
		},
		Ledger: config.LedgerConfig{
			Timezone:    "UTC",
			LockTimeout: 2 * time.Second,
		},
		Report: config.ReportConfig{
			TopExpenses:       5,
			ExportMaxRequests: 2,
			ExportRateWindow:  time.Minute,
		},
	}
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			ids:            make(map[string]string),
			db:             mock.NewDb("ledger_features"),
			redis:          mock.NewRedis(),
		}

		if err := tc.db.ClearDB(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(tc.redis); err != nil {
			return ctx, err
		}

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		inj, err := dependency.NewInjector(ctx, scenarioConfig(tc.redis.URL()), tc.db.DbConn, logger)
		if err != nil {
			return ctx, fmt.Errorf("failed to wire ledger: %w", err)
		}
		tc.injector = inj
		tc.server = httptest.NewServer(inj.Router.Setup("test"))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.injector != nil {
				_ = tc.injector.Close()
			}
		}
		return ctx, nil
	})

	// Register step definitions
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerLedgerSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the ledger API is running$`, theLedgerAPIIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, iSaveTheResponseFieldAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, theResponseHeaderShouldContain)
	ctx.Step(`^the response should match json:$`, theResponseShouldMatchJSON)
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
}

// expand replaces {{name}} placeholders with saved ids.
func (tc *TestContext) expand(s string) string {
	for name, id := range tc.ids {
		s = strings.ReplaceAll(s, "{{"+name+"}}", id)
	}
	return s
}

func (tc *TestContext) send(method, endpoint string, body io.Reader) (*http.Response, []byte, error) {
	req, err := http.NewRequest(method, tc.server.URL+tc.expand(endpoint), body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp, raw, nil
}

// Step implementations

func theLedgerAPIIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	resp, raw, err := tc.send(method, endpoint, nil)
	if err != nil {
		return ctx, err
	}
	tc.response, tc.responseBody = resp, raw
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	resp, raw, err := tc.send(method, endpoint, bytes.NewBufferString(tc.expand(body.Content)))
	if err != nil {
		return ctx, err
	}
	tc.response, tc.responseBody = resp, raw
	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func iSaveTheResponseFieldAs(ctx context.Context, field, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return ctx, err
	}
	tc.ids[name] = fmt.Sprintf("%v", value)
	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	expected = tc.expand(expected)
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

// lookupField resolves a dotted path such as "top_expenses.0.transaction.amount".
func lookupField(body []byte, path string) (any, error) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response", path)
			}
			current = value
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("index '%s' out of range in '%s'", part, path)
			}
			current = node[i]
		default:
			return nil, fmt.Errorf("field '%s' not found in response", path)
		}
	}
	return current, nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return err
	}

	actual := "null"
	if value != nil {
		actual = fmt.Sprintf("%v", value)
	}
	if expected = tc.expand(expected); actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := lookupField(tc.responseBody, field)
	return err
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok && value != nil {
		return fmt.Errorf("field '%s' is not a list", field)
	}
	if len(items) != expected {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, expected, len(items))
	}
	return nil
}

func theResponseHeaderShouldContain(ctx context.Context, header, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if actual := tc.response.Header.Get(header); !strings.Contains(actual, expected) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func theResponseShouldMatchJSON(ctx context.Context, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var expected, actual any

	if err := json.Unmarshal([]byte(tc.expand(body.Content)), &expected); err != nil {
		return fmt.Errorf("failed to parse expected JSON: %w", err)
	}

	if err := json.Unmarshal(tc.responseBody, &actual); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	expectedJSON, _ := json.Marshal(expected)
	actualJSON, _ := json.Marshal(actual)

	if string(expectedJSON) != string(actualJSON) {
		return fmt.Errorf("expected JSON:\n%s\nactual JSON:\n%s", string(expectedJSON), string(actualJSON))
	}

	return nil
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, expected int, table string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	n, err := tc.db.Count(table)
	if err != nil {
		return err
	}
	if n != int64(expected) {
		return fmt.Errorf("expected %d rows in %s, got %d", expected, table, n)
	}
	return nil
}
