package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// registerLedgerSteps registers fixture steps that build ledger state
// through the API.
func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^an? "(income|expense)" category "([^"]*)" exists$`, aCategoryExists)
	ctx.Step(`^an? "(income|expense)" category "([^"]*)" exists under "([^"]*)"$`, aChildCategoryExists)
	ctx.Step(`^an "expense" category "([^"]*)" requiring an employee exists$`, anEmployeeCategoryExists)
	ctx.Step(`^a source "([^"]*)" exists for category "([^"]*)"$`, aSourceExists)
	ctx.Step(`^the following transactions are recorded:$`, theFollowingTransactionsAreRecorded)
}

// create posts body to endpoint, expects 201 and saves the new id as name.
func (tc *TestContext) create(endpoint, name string, body map[string]any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, respBody, err := tc.send(http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("creating %q: expected status 201, got %d. Body: %s", name, resp.StatusCode, string(respBody))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &created); err != nil {
		return fmt.Errorf("creating %q: %w", name, err)
	}
	if name != "" {
		tc.ids[name] = created.ID
	}
	return nil
}

func (tc *TestContext) idOf(name string) (string, error) {
	id, ok := tc.ids[name]
	if !ok {
		return "", fmt.Errorf("nothing named %q was created", name)
	}
	return id, nil
}

func aCategoryExists(ctx context.Context, categoryType, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.create("/api/v1/categories", name, map[string]any{"name": name, "type": categoryType})
}

func aChildCategoryExists(ctx context.Context, categoryType, name, parent string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	parentID, err := tc.idOf(parent)
	if err != nil {
		return err
	}
	return tc.create("/api/v1/categories", name, map[string]any{
		"name":               name,
		"type":               categoryType,
		"parent_category_id": parentID,
	})
}

func anEmployeeCategoryExists(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.create("/api/v1/categories", name, map[string]any{
		"name":              name,
		"type":              "expense",
		"requires_employee": true,
	})
}

func aSourceExists(ctx context.Context, name, category string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	categoryID, err := tc.idOf(category)
	if err != nil {
		return err
	}
	return tc.create("/api/v1/sources", name, map[string]any{"name": name, "category_id": categoryID})
}

// theFollowingTransactionsAreRecorded reads a table with the columns
// name, type, category, source, amount and date. The name column is optional.
func theFollowingTransactionsAreRecorded(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if len(table.Rows) < 2 {
		return fmt.Errorf("transaction table has no rows")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[header[i]] = cell.Value
		}

		categoryID, err := tc.idOf(values["category"])
		if err != nil {
			return err
		}
		sourceID, err := tc.idOf(values["source"])
		if err != nil {
			return err
		}

		body := map[string]any{
			"type":        values["type"],
			"category_id": categoryID,
			"source_id":   sourceID,
			"amount":      json.Number(values["amount"]),
			"date":        values["date"],
		}
		if err := tc.create("/api/v1/transactions", values["name"], body); err != nil {
			return err
		}
	}
	return nil
}
