// Package apiclient is the single configured HTTP client used by every
// entity service to talk to the hospital REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 512

	acceptJSON     = "application/json"
	acceptDocument = "application/pdf, */*"
)

// Client issues JSON requests against a base URL. One call, one request:
// there is no retry, cache or de-duplication.
type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout. The timeout is applied to a
// copy, so a client passed through WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) Get(ctx context.Context, path string, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, acceptJSON, nil, out)
	return err
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	_, err := c.do(ctx, http.MethodPost, path, acceptJSON, in, out)
	return err
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	_, err := c.do(ctx, http.MethodPut, path, acceptJSON, in, out)
	return err
}

func (c *Client) Patch(ctx context.Context, path string, in, out any) error {
	_, err := c.do(ctx, http.MethodPatch, path, acceptJSON, in, out)
	return err
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, acceptJSON, nil, nil)
	return err
}

// GetBytes fetches a binary document and returns its body and content type.
func (c *Client) GetBytes(ctx context.Context, path string) ([]byte, string, error) {
	resp, err := c.do(ctx, http.MethodGet, path, acceptDocument, nil, nil)
	if err != nil {
		return nil, "", err
	}
	return resp.body, resp.contentType, nil
}

type response struct {
	body        []byte
	contentType string
}

func (c *Client) do(ctx context.Context, method, path, accept string, in, out any) (*response, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", accept)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := c.http.Do(req)
	log := zerolog.Ctx(ctx)
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("path", path).Msg("api call failed")
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", res.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("api call")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{Method: method, Path: path, Status: res.StatusCode, Message: extractMessage(raw)}
	}
	if out != nil {
		if err := decode(path, raw, out); err != nil {
			return nil, err
		}
	}
	return &response{body: raw, contentType: res.Header.Get("Content-Type")}, nil
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// decode unmarshals raw into out. A slice target only accepts a bare JSON
// array (or null); any other shape is a SchemaError.
func decode(path string, raw []byte, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	if wantsSlice(out) && trimmed[0] != '[' {
		if string(trimmed) == "null" {
			return nil
		}
		return &SchemaError{Path: path, Want: "array", Got: kindOf(trimmed)}
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return &SchemaError{Path: path, Want: reflect.TypeOf(out).Elem().String(), Got: err.Error()}
	}
	return nil
}

func wantsSlice(out any) bool {
	t := reflect.TypeOf(out)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Slice
}

func kindOf(b []byte) string {
	switch b[0] {
	case '{':
		return "object"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// extractMessage pulls "message" (or "error") out of a JSON error body and
// falls back to the trimmed raw text.
func extractMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
		return ""
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	return msg
}
