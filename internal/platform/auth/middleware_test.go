package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var testSecret = []byte("test-secret")

func callWithToken(t *testing.T, token string) (Caller, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var caller Caller
	handler := func(c echo.Context) error {
		caller, _ = CallerFromContext(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	}
	err := Middleware(testSecret)(handler)(c)
	return caller, err
}

func TestMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	token, err := IssueToken(testSecret, userID, "p1@example.com", RolePatient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	caller, err := callWithToken(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if caller.ID != userID {
		t.Errorf("expected caller id %s, got %s", userID, caller.ID)
	}
	if caller.Email != "p1@example.com" {
		t.Errorf("expected email p1@example.com, got %s", caller.Email)
	}
	if caller.Role != RolePatient {
		t.Errorf("expected role patient, got %s", caller.Role)
	}
}

func TestMiddleware_MissingAndMalformedRejectedAlike(t *testing.T) {
	for name, header := range map[string]string{
		"absent":     "",
		"not bearer": "Basic abc123",
		"garbage":    "Bearer not.a.token",
	} {
		_, err := callWithToken(t, header)
		he, ok := err.(*echo.HTTPError)
		if !ok {
			t.Fatalf("%s: expected HTTPError, got %v", name, err)
		}
		if he.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", name, he.Code)
		}
		if he.Message != "invalid token" {
			t.Errorf("%s: expected uniform message, got %v", name, he.Message)
		}
	}
}

func TestMiddleware_WrongSecret(t *testing.T) {
	token, err := IssueToken([]byte("other-secret"), uuid.New(), "p1@example.com", RolePatient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = callWithToken(t, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestMiddleware_UnknownRoleClaim(t *testing.T) {
	// Correctly signed token whose role claim is outside the closed set.
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "x@example.com",
		Role:  "superuser",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = callWithToken(t, "Bearer "+signed)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %v", err)
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		Email: "x@example.com",
		Role:  "patient",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = callWithToken(t, "Bearer "+signed)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}
