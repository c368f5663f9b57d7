package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/stretchr/testify/require"
)

const TestToken = "test-token"

// NewApp creates an app that doesn't need any environment variables.
func NewApp(t *testing.T, token string) *fiber.App {
	t.Helper()

	app, err := internal.NewApp(&config.ServerConfig{
		ServerHost: "localhost",
		ServerPort: "0",
		Token:      token,
		MaxGames:   10,
		Bot:        config.DefaultBot,
	})
	require.NoError(t, err)

	return app
}

// Request sends a request to the app. The body is encoded as JSON unless it is nil.
func Request(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("x-token", token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	t.Cleanup(func() {
		resp.Body.Close()
	})

	return resp
}

// Decode reads a JSON response body into v.
func Decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// Serve runs the app on a random local port and returns its address.
func Serve(t *testing.T, app *fiber.App) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = app.Listener(ln)
	}()

	t.Cleanup(func() {
		_ = app.Shutdown()
	})

	return ln.Addr().String()
}
