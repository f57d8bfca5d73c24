package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const restTimeout = 10 * time.Second

// RESTConfig holds the connection settings for a remote row store.
type RESTConfig struct {
	// URL is the base endpoint, e.g. https://xyz.supabase.co/rest/v1
	URL string
	// APIKey is sent as the apikey header.
	APIKey string
	// Token is the bearer token identifying the current user.
	Token string
}

// RESTClient talks to a PostgREST-style row store over HTTPS.
type RESTClient struct {
	client *http.Client
	cfg    RESTConfig
}

// NewREST returns a client for the remote row store.
func NewREST(cfg RESTConfig) *RESTClient {
	return &RESTClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: restTimeout,
		},
	}
}

func (c *RESTClient) endpoint(table string, q Query) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(c.cfg.URL, "/") + "/" + table)
	if err != nil {
		return "", err
	}

	values := u.Query()

	for _, f := range q.Filters {
		values.Set(f.Column, fmt.Sprintf("eq.%v", f.Value))
	}

	if q.OrderBy != "" {
		direction := "asc"
		if q.Descending {
			direction = "desc"
		}

		values.Set("order", q.OrderBy+"."+direction)
	}

	u.RawQuery = values.Encode()

	return u.String(), nil
}

func (c *RESTClient) do(
	ctx context.Context,
	op, method, endpoint, table string,
	body io.Reader,
	prefer string,
) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, persistErr(op, table, err)
	}

	req.Header.Set("apikey", c.cfg.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, persistErr(op, table, err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, persistErr(op, table, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &PersistenceError{
			Op:      op,
			Table:   table,
			Message: backendMessage(respBody, resp.StatusCode),
		}
	}

	return respBody, nil
}

// backendMessage extracts the error message the backend returned, or
// falls back to the HTTP status.
func backendMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err == nil &&
		payload.Message != "" {
		return payload.Message
	}

	return http.StatusText(status)
}

func (c *RESTClient) Select(
	ctx context.Context,
	table string,
	q Query,
	dest any,
) error {
	endpoint, err := c.endpoint(table, q)
	if err != nil {
		return persistErr("select", table, err)
	}

	body, err := c.do(ctx, "select", http.MethodGet, endpoint, table, nil, "")
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return decodeErr("select", table, err)
	}

	return nil
}

func (c *RESTClient) Insert(
	ctx context.Context,
	table string,
	rows, dest any,
) error {
	endpoint, err := c.endpoint(table, Query{})
	if err != nil {
		return persistErr("insert", table, err)
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return persistErr("insert", table, err)
	}

	prefer := "return=minimal"
	if dest != nil {
		prefer = "return=representation"
	}

	body, err := c.do(
		ctx,
		"insert",
		http.MethodPost,
		endpoint,
		table,
		bytes.NewReader(payload),
		prefer,
	)
	if err != nil {
		return err
	}

	if dest == nil {
		return nil
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return decodeErr("insert", table, err)
	}

	return nil
}

func (c *RESTClient) Update(
	ctx context.Context,
	table string,
	patch map[string]any,
	filters ...Filter,
) error {
	endpoint, err := c.endpoint(table, Query{Filters: filters})
	if err != nil {
		return persistErr("update", table, err)
	}

	payload, err := json.Marshal(patch)
	if err != nil {
		return persistErr("update", table, err)
	}

	_, err = c.do(
		ctx,
		"update",
		http.MethodPatch,
		endpoint,
		table,
		bytes.NewReader(payload),
		"return=minimal",
	)

	return err
}

func (c *RESTClient) Upsert(
	ctx context.Context,
	table string,
	rows any,
) error {
	endpoint, err := c.endpoint(table, Query{})
	if err != nil {
		return persistErr("upsert", table, err)
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return persistErr("upsert", table, err)
	}

	_, err = c.do(
		ctx,
		"upsert",
		http.MethodPost,
		endpoint,
		table,
		bytes.NewReader(payload),
		"resolution=merge-duplicates,return=minimal",
	)

	return err
}

func (c *RESTClient) Delete(
	ctx context.Context,
	table string,
	filters ...Filter,
) error {
	endpoint, err := c.endpoint(table, Query{Filters: filters})
	if err != nil {
		return persistErr("delete", table, err)
	}

	_, err = c.do(
		ctx,
		"delete",
		http.MethodDelete,
		endpoint,
		table,
		nil,
		"return=minimal",
	)

	return err
}

func (c *RESTClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}
