package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrms/internal/domain/auth"
)

func testTokens() *auth.TokenService {
	return auth.NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func claimsEcho(t *testing.T, expectAuthed bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := GetClaims(r.Context())
		if ok != expectAuthed {
			t.Errorf("authenticated = %v, want %v", ok, expectAuthed)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthAttachesClaims(t *testing.T) {
	tokens := testTokens()
	pair, err := tokens.IssuePair(42, "admin@example.com")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	handler := Auth(tokens)(claimsEcho(t, true))
	r := httptest.NewRequest(http.MethodGet, "/api/employees/", nil)
	r.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	handler.ServeHTTP(httptest.NewRecorder(), r)
}

func TestAuthIgnoresBadTokens(t *testing.T) {
	tokens := testTokens()
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", "Bearer"},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := Auth(tokens)(claimsEcho(t, false))
			r := httptest.NewRequest(http.MethodGet, "/api/employees/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			handler.ServeHTTP(httptest.NewRecorder(), r)
		})
	}
}

func TestAuthRejectsRefreshTokenAsAccess(t *testing.T) {
	tokens := testTokens()
	pair, err := tokens.IssuePair(42, "admin@example.com")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	handler := Auth(tokens)(claimsEcho(t, false))
	r := httptest.NewRequest(http.MethodGet, "/api/employees/", nil)
	r.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	handler.ServeHTTP(httptest.NewRecorder(), r)
}

func TestRequireAuth(t *testing.T) {
	tokens := testTokens()
	pair, err := tokens.IssuePair(7, "admin@example.com")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	protected := Auth(tokens)(RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	t.Run("without token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("with token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
		r.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		protected.ServeHTTP(rec, r)
		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
		}
	})
}
