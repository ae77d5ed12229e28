package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/babycare/store-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_DuplicateUser(t *testing.T) {
	code, body := renderError(t, domain.ErrUserExists)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if body["success"] != false || body["message"] != "User already exists" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestHTTPErrorHandler_InvalidCredentials(t *testing.T) {
	code, body := renderError(t, domain.ErrInvalidCredentials)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if body["message"] != "Invalid email or password" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", domain.ErrUserExists)
	code, _ := renderError(t, wrapped)
	if code != http.StatusBadRequest {
		t.Fatalf("expected wrapped domain error to map, got %d", code)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if body["message"] != "invalid payload" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["message"] != "internal server error" {
		t.Fatalf("internal details must not leak: %+v", body)
	}
}

func TestHTTPErrorHandler_InvalidIDIsInternal(t *testing.T) {
	// Malformed identifiers are not a dedicated error category; they surface
	// as a generic server failure.
	code, _ := renderError(t, domain.ErrInvalidID)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
}
