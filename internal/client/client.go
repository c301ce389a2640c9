package client

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

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/quizdesk/internal/model"
)

const DefaultBaseURL = "http://localhost:8000"

// Reply is the success body shared by every backend endpoint.
type Reply struct {
	Message  string `json:"message"`
	GameCode string `json:"game_code,omitempty"`
}

type Client struct {
	baseURL string
	client  *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client = &http.Client{Timeout: timeout}
	}
}

func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{baseURL: baseURL, client: &http.Client{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) RegisterAdmin(ctx context.Context, admin model.AdminCredentials) (*Reply, error) {
	return c.do(ctx, http.MethodPost, "/admin/register", admin)
}

func (c *Client) CreateCategory(ctx context.Context, category model.CategoryDraft) (*Reply, error) {
	return c.do(ctx, http.MethodPost, "/category/", category)
}

func (c *Client) CreateSet(ctx context.Context, set model.SetDraft) (*Reply, error) {
	return c.do(ctx, http.MethodPost, "/set/", set)
}

func (c *Client) CreateCard(ctx context.Context, card model.CardDraft) (*Reply, error) {
	if card.Hashtags == nil {
		card.Hashtags = []string{}
	}
	return c.do(ctx, http.MethodPost, "/card/", card)
}

func (c *Client) StartGame(ctx context.Context, game model.GameDraft) (*Reply, error) {
	return c.do(ctx, http.MethodPost, "/game/start", game)
}

// GenerateQR requests the QR resource for a game code. Only the message of
// the reply is decoded.
func (c *Client) GenerateQR(ctx context.Context, code string) (*Reply, error) {
	return c.do(ctx, http.MethodGet, "/game/"+url.PathEscape(code)+"/qr", nil)
}

// Ping reports whether the backend answers HTTP at all. Any status counts.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/openapi.json", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) (*Reply, error) {
	endpoint := c.baseURL + path
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", path, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Status: resp.StatusCode, Err: err}
	}
	logutil.GetLogger(ctx).Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newStatusError(method, path, resp.StatusCode, raw)
	}
	out := &Reply{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	// A 2xx is a success whatever the body is; the qr endpoint may answer
	// with an image instead of json.
	if err := json.Unmarshal(raw, out); err != nil {
		logutil.GetLogger(ctx).Warn("backend reply is not json",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("content_type", resp.Header.Get("Content-Type")),
			zap.Error(err),
		)
		return &Reply{}, nil
	}
	return out, nil
}
