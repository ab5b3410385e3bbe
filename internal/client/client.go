// Package client provides an HTTP client for the rems REST API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/evcraddock/rems/internal/expense"
	"github.com/evcraddock/rems/internal/mockdata"
	"github.com/evcraddock/rems/internal/payment"
	"github.com/evcraddock/rems/internal/property"
	"github.com/evcraddock/rems/internal/task"
	"github.com/evcraddock/rems/internal/tenant"
)

// Client is an HTTP client for the rems API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch returns the raw JSON collection for t.
func (c *Client) Fetch(ctx context.Context, t mockdata.Type) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.getData(ctx, t, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// FetchProperties returns a sample property collection.
func (c *Client) FetchProperties(ctx context.Context) ([]*property.Property, error) {
	var props []*property.Property
	if err := c.getData(ctx, mockdata.Properties, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// FetchTenants returns a sample tenant collection.
func (c *Client) FetchTenants(ctx context.Context) ([]*tenant.Tenant, error) {
	var tenants []*tenant.Tenant
	if err := c.getData(ctx, mockdata.Tenants, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// FetchPayments returns a sample payment collection.
func (c *Client) FetchPayments(ctx context.Context) ([]*payment.Payment, error) {
	var payments []*payment.Payment
	if err := c.getData(ctx, mockdata.Payments, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// FetchExpenses returns a sample expense collection.
func (c *Client) FetchExpenses(ctx context.Context) ([]*expense.Expense, error) {
	var expenses []*expense.Expense
	if err := c.getData(ctx, mockdata.Expenses, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// FetchTasks returns a sample task collection.
func (c *Client) FetchTasks(ctx context.Context) ([]*task.Task, error) {
	var tasks []*task.Task
	if err := c.getData(ctx, mockdata.Tasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Dataset fetches one collection of every entity type. Each collection
// comes from a separate request, so they are independently generated.
func (c *Client) Dataset(ctx context.Context) (*mockdata.Dataset, error) {
	var ds mockdata.Dataset
	var err error

	if ds.Properties, err = c.FetchProperties(ctx); err != nil {
		return nil, fmt.Errorf("fetching properties: %w", err)
	}
	if ds.Tenants, err = c.FetchTenants(ctx); err != nil {
		return nil, fmt.Errorf("fetching tenants: %w", err)
	}
	if ds.Payments, err = c.FetchPayments(ctx); err != nil {
		return nil, fmt.Errorf("fetching payments: %w", err)
	}
	if ds.Expenses, err = c.FetchExpenses(ctx); err != nil {
		return nil, fmt.Errorf("fetching expenses: %w", err)
	}
	if ds.Tasks, err = c.FetchTasks(ctx); err != nil {
		return nil, fmt.Errorf("fetching tasks: %w", err)
	}
	return &ds, nil
}

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/health", &resp); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return fmt.Errorf("unexpected health status %q", resp.Status)
	}
	return nil
}

// getData requests the collection for t.
func (c *Client) getData(ctx context.Context, t mockdata.Type, result interface{}) error {
	q := url.Values{"type": {string(t)}}
	return c.get(ctx, "/api/data?"+q.Encode(), result)
}

// get performs a GET request and decodes the response.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// do executes an HTTP request and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
