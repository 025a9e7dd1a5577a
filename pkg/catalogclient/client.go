package catalogclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Skotchmaster/storefront/internal/transport"
)

// Client talks to the storefront REST API. The admin session cookie lives in
// the client's cookie jar, so one Client is one browser-like session.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu           sync.Mutex
	translations map[string]string
}

func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
			Jar:     jar,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		translations: make(map[string]string),
	}
}

// APIError is a non-2xx answer. Fields is set for validation failures.
type APIError struct {
	Status  int
	Message string
	Fields  []transport.FieldError
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("status %d: %s", e.Status, transport.FieldErrors(e.Fields).Error())
	}
	return fmt.Sprintf("status %d: %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if w, ok := out.(io.Writer); ok {
		_, err := io.Copy(w, resp.Body)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var body struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Error) == 0 {
		return apiErr
	}
	var msg string
	if json.Unmarshal(body.Error, &msg) == nil {
		apiErr.Message = msg
		return apiErr
	}
	if json.Unmarshal(body.Error, &apiErr.Fields) == nil {
		apiErr.Message = "validation failed"
	}
	return apiErr
}

func (c *Client) Login(ctx context.Context, password string) error {
	return c.do(ctx, http.MethodPost, "/api/admin/login", transport.LoginRequest{Password: password}, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/admin/logout", nil, nil)
}

func (c *Client) IsAdmin(ctx context.Context) (bool, error) {
	var resp transport.SessionResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/session", nil, &resp); err != nil {
		return false, err
	}
	return resp.IsAdmin, nil
}

// Translate resolves texts positionally. Answers are memoized per client and
// only strings not seen before are sent to the server.
func (c *Client) Translate(ctx context.Context, texts []string) ([]string, error) {
	out := make([]string, len(texts))
	if len(texts) == 0 {
		return out, nil
	}

	c.mu.Lock()
	var misses []string
	queued := make(map[string]bool)
	for _, t := range texts {
		if _, ok := c.translations[t]; !ok && !queued[t] {
			queued[t] = true
			misses = append(misses, t)
		}
	}
	c.mu.Unlock()

	if len(misses) > 0 {
		var resp transport.TranslateResponse
		if err := c.do(ctx, http.MethodPost, "/api/translate", map[string][]string{"texts": misses}, &resp); err != nil {
			return nil, err
		}
		if len(resp.Translations) != len(misses) {
			return nil, fmt.Errorf("translate: got %d results for %d texts", len(resp.Translations), len(misses))
		}
		c.mu.Lock()
		for i, m := range misses {
			c.translations[m] = resp.Translations[i]
		}
		c.mu.Unlock()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, t := range texts {
		out[i] = c.translations[t]
	}
	return out, nil
}

func escape(s string) string { return url.PathEscape(s) }
