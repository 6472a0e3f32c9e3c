package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stridehq/stride/internal/services"
	"github.com/stridehq/stride/internal/store"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	recordStore, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := recordStore.Initialize(); err != nil {
		t.Fatalf("initialize store: %v", err)
	}

	settings := services.NewSettingsService(store.NewCollections(recordStore).Settings)
	if err := settings.EnsurePassphrase(); err != nil {
		t.Fatalf("seed passphrase: %v", err)
	}

	handler := NewHandler(recordStore, testSecret, time.UTC, nil, false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func jsonRequest(method string, target string, payload any) *http.Request {
	body := []byte(nil)
	if payload != nil {
		body, _ = json.Marshal(payload)
	}
	request := httptest.NewRequest(method, target, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	return request
}

func rawJSONRequest(method string, target string, body []byte) *http.Request {
	request := httptest.NewRequest(method, target, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	return request
}

func doRequest(t *testing.T, app *fiber.App, request *http.Request) *http.Response {
	t.Helper()
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", request.Method, request.URL, err)
	}
	return response
}

func readBody(t *testing.T, response *http.Response) []byte {
	t.Helper()
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return body
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	if err := json.Unmarshal(readBody(t, response), target); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

// loginCookie signs in with the default passphrase and returns the session
// cookie to attach to later requests.
func loginCookie(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()

	response := doRequest(t, app, jsonRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"passphrase": services.DefaultPassphrase,
	}))
	readBody(t, response)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("no session cookie in login response")
	return nil
}

func authedRequest(t *testing.T, app *fiber.App, method string, target string, payload any) *http.Request {
	t.Helper()
	request := jsonRequest(method, target, payload)
	request.AddCookie(loginCookie(t, app))
	return request
}
