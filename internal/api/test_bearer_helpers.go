package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func doBearerRequest(t *testing.T, app *fiber.App, method string, path string, token string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(method, path, nil)
	request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}
