package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xxxsen/quizdesk/internal/model"
)

type capturedRequest struct {
	Method string
	Path   string
	Body   map[string]interface{}
}

func newBackend(t *testing.T, status int, reply string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Method = r.Method
		captured.Path = r.URL.EscapedPath()
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			require.NoError(t, json.Unmarshal(raw, &captured.Body))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func TestClientRequestBodies(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name   string
		call   func(c *Client) (*Reply, error)
		method string
		path   string
		body   map[string]interface{}
	}{
		{
			name: "register admin",
			call: func(c *Client) (*Reply, error) {
				return c.RegisterAdmin(ctx, model.AdminCredentials{Username: "root", Password: "pw"})
			},
			method: http.MethodPost,
			path:   "/admin/register",
			body:   map[string]interface{}{"username": "root", "password": "pw"},
		},
		{
			name: "create category",
			call: func(c *Client) (*Reply, error) {
				return c.CreateCategory(ctx, model.CategoryDraft{Name: "History", Color: "#ff0000"})
			},
			method: http.MethodPost,
			path:   "/category/",
			body:   map[string]interface{}{"name": "History", "color": "#ff0000"},
		},
		{
			name: "create set",
			call: func(c *Client) (*Reply, error) {
				return c.CreateSet(ctx, model.SetDraft{Name: "Wars", CategoryID: 3})
			},
			method: http.MethodPost,
			path:   "/set/",
			body:   map[string]interface{}{"name": "Wars", "categoryId": float64(3)},
		},
		{
			name: "create card",
			call: func(c *Client) (*Reply, error) {
				return c.CreateCard(ctx, model.CardDraft{Number: 7, Description: "Who?", Hashtags: []string{"a", "b"}, SetID: 2})
			},
			method: http.MethodPost,
			path:   "/card/",
			body: map[string]interface{}{
				"number":      float64(7),
				"description": "Who?",
				"hashtags":    []interface{}{"a", "b"},
				"setId":       float64(2),
			},
		},
		{
			name: "start game",
			call: func(c *Client) (*Reply, error) {
				return c.StartGame(ctx, model.GameDraft{HostID: 4})
			},
			method: http.MethodPost,
			path:   "/game/start",
			body:   map[string]interface{}{"hostId": float64(4)},
		},
		{
			name: "generate qr",
			call: func(c *Client) (*Reply, error) {
				return c.GenerateQR(ctx, "ABC123")
			},
			method: http.MethodGet,
			path:   "/game/ABC123/qr",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, captured := newBackend(t, http.StatusOK, `{"message":"OK"}`)
			reply, err := tc.call(New(srv.URL))
			require.NoError(t, err)
			require.Equal(t, "OK", AlertText(reply, err))
			require.Equal(t, tc.method, captured.Method)
			require.Equal(t, tc.path, captured.Path)
			require.Equal(t, tc.body, captured.Body)
		})
	}
}

func TestClientCreateCardSendsEmptyHashtags(t *testing.T) {
	srv, captured := newBackend(t, http.StatusOK, `{"message":"ok"}`)
	_, err := New(srv.URL).CreateCard(context.Background(), model.CardDraft{Number: 1, SetID: 1})
	require.NoError(t, err)
	require.Equal(t, []interface{}{}, captured.Body["hashtags"])
}

func TestClientStartGameReturnsCode(t *testing.T) {
	srv, _ := newBackend(t, http.StatusOK, `{"message":"started","game_code":"ABC123"}`)
	reply, err := New(srv.URL).StartGame(context.Background(), model.GameDraft{HostID: 1})
	require.NoError(t, err)
	require.Equal(t, "started", reply.Message)
	require.Equal(t, "ABC123", reply.GameCode)
}

func TestClientGenerateQREscapesCode(t *testing.T) {
	srv, captured := newBackend(t, http.StatusOK, `{"message":"ok"}`)
	_, err := New(srv.URL).GenerateQR(context.Background(), "a b/c")
	require.NoError(t, err)
	require.Equal(t, "/game/a%20b%2Fc/qr", captured.Path)
}

func TestClientFailureDetail(t *testing.T) {
	srv, _ := newBackend(t, http.StatusBadRequest, `{"detail":"bad input"}`)
	reply, err := New(srv.URL).CreateSet(context.Background(), model.SetDraft{})
	require.Error(t, err)
	require.Nil(t, reply)
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.StatusBadRequest, reqErr.Status)
	require.Equal(t, "bad input", AlertText(reply, err))
}

func TestClientFailureValidationList(t *testing.T) {
	srv, _ := newBackend(t, http.StatusUnprocessableEntity,
		`{"detail":[{"loc":["body","name"],"msg":"field required","type":"value_error.missing"},{"loc":["body","color"],"msg":"str type expected","type":"type_error.str"}]}`)
	_, err := New(srv.URL).CreateCategory(context.Background(), model.CategoryDraft{})
	require.Equal(t, "field required; str type expected", AlertText(nil, err))
}

func TestClientFailureWithoutBody(t *testing.T) {
	srv, _ := newBackend(t, http.StatusInternalServerError, "")
	_, err := New(srv.URL).RegisterAdmin(context.Background(), model.AdminCredentials{})
	require.Error(t, err)
	require.Equal(t, FallbackAlert, AlertText(nil, err))
}

func TestClientFailureNonJSONBody(t *testing.T) {
	srv, _ := newBackend(t, http.StatusBadGateway, "<html>bad gateway</html>")
	_, err := New(srv.URL).StartGame(context.Background(), model.GameDraft{HostID: 1})
	require.Equal(t, FallbackAlert, AlertText(nil, err))
}

func TestClientSuccessWithImageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "\x89PNG\r\n\x1a\n")
	}))
	t.Cleanup(srv.Close)

	reply, err := New(srv.URL).GenerateQR(context.Background(), "ABC123")
	require.NoError(t, err)
	require.Equal(t, &Reply{}, reply)
	require.Equal(t, "", AlertText(reply, err))
}

func TestClientNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()
	_, err := New(baseURL).CreateCard(context.Background(), model.CardDraft{})
	require.Error(t, err)
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Zero(t, reqErr.Status)
	require.Equal(t, FallbackAlert, AlertText(nil, err))
}

func TestClientPing(t *testing.T) {
	srv, captured := newBackend(t, http.StatusNotFound, `{"detail":"Not Found"}`)
	require.NoError(t, New(srv.URL+"/").Ping(context.Background()))
	require.Equal(t, "/openapi.json", captured.Path)
}

func TestNewDefaultsBaseURL(t *testing.T) {
	require.Equal(t, DefaultBaseURL, New("  ").BaseURL())
	require.Equal(t, "http://host:1", New("http://host:1/").BaseURL())
}
