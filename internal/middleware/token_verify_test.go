package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tradetalent/backend/internal/respond"
)

type fakeVerifier struct {
	email string
	err   error
}

func (f fakeVerifier) Verify(_ context.Context, _ string) (string, error) {
	return f.email, f.err
}

func runGate(t *testing.T, verifier fakeVerifier, authHeader string) (*httptest.ResponseRecorder, bool, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	seenEmail := ""
	handler := TokenVerify(verifier)(func(c echo.Context) error {
		called = true
		seenEmail = UserEmail(c)
		return respond.Message(c, http.StatusOK, "ok")
	})
	if err := handler(c); err != nil {
		t.Fatalf("gate returned error: %v", err)
	}
	return rec, called, seenEmail
}

func TestGateMissingHeader(t *testing.T) {
	rec, called, _ := runGate(t, fakeVerifier{email: "a@b.com"}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler invoked without Authorization header")
	}
}

func TestGateMalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Bearer ", "justatoken"} {
		rec, called, _ := runGate(t, fakeVerifier{email: "a@b.com"}, header)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
		if called {
			t.Errorf("header %q: handler invoked", header)
		}
	}
}

func TestGateInvalidToken(t *testing.T) {
	rec, called, _ := runGate(t, fakeVerifier{err: errors.New("token expired")}, "Bearer bad-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler invoked with invalid token")
	}
}

func TestGateValidToken(t *testing.T) {
	rec, called, email := runGate(t, fakeVerifier{email: "a@b.com"}, "Bearer good-token")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !called {
		t.Fatal("handler not invoked with valid token")
	}
	if email != "a@b.com" {
		t.Errorf("handler saw email %q, want a@b.com", email)
	}
}
