package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func postJSON(t *testing.T, h echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestSignupHandler(t *testing.T) {
	h := NewHandler(newTestService())

	rec := postJSON(t, h.Signup, "/signup", `{"name":"A","email":"a@example.com","password":"pw","role":"patient"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "user registered successfully") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestSignupHandler_MissingField(t *testing.T) {
	h := NewHandler(newTestService())

	rec := postJSON(t, h.Signup, "/signup", `{"email":"a@example.com","password":"pw","role":"patient"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestSignupHandler_BadRole(t *testing.T) {
	h := NewHandler(newTestService())

	rec := postJSON(t, h.Signup, "/signup", `{"name":"A","email":"a@example.com","password":"pw","role":"admin"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestSignupHandler_DuplicateEmail(t *testing.T) {
	svc := newTestService()
	h := NewHandler(svc)
	if _, err := svc.Register(context.Background(), "A", "a@example.com", "pw", "patient"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := postJSON(t, h.Signup, "/signup", `{"name":"B","email":"a@example.com","password":"pw","role":"patient"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestLoginHandler(t *testing.T) {
	svc := newTestService()
	h := NewHandler(svc)
	if _, err := svc.Register(context.Background(), "A", "a@example.com", "pw", "caretaker"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := postJSON(t, h.Login, "/login", `{"email":"a@example.com","password":"pw"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token"`) {
		t.Errorf("expected a token in the body, got %s", rec.Body.String())
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	svc := newTestService()
	h := NewHandler(svc)
	if _, err := svc.Register(context.Background(), "A", "a@example.com", "pw", "patient"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, body := range []string{
		`{"email":"a@example.com","password":"nope"}`,
		`{"email":"ghost@example.com","password":"pw"}`,
	} {
		rec := postJSON(t, h.Login, "/login", body)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 for %s, got %d", body, rec.Code)
		}
	}
}
