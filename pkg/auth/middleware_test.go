package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(UserIDKey).(int)
		role, _ := r.Context().Value(RoleKey).(string)
		assert.Equal(t, 42, userID)
		assert.Equal(t, "guest", role)
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(next)

	tests := []struct {
		name         string
		header       func() string
		expectedCode int
	}{
		{
			name: "Valid bearer token",
			header: func() string {
				token, _ := jwtService.GenerateJWT(42, "guest", time.Now().Add(time.Hour))
				return "Bearer " + token
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			header:       func() string { return "" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Wrong scheme",
			header:       func() string { return "Basic abcdef" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Garbage token",
			header:       func() string { return "Bearer not.a.token" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Expired token",
			header: func() string {
				token, _ := jwtService.GenerateJWT(42, "guest", time.Now().Add(-time.Hour))
				return "Bearer " + token
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/loyalty/balance", nil)
			if h := tt.header(); h != "" {
				r.Header.Set("Authorization", h)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	jwtService := &JWTService{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(RequireRole(RoleAdmin)(next))

	t.Run("Admin allowed", func(t *testing.T) {
		token, _ := jwtService.GenerateJWT(1, RoleAdmin, time.Now().Add(time.Hour))
		r := httptest.NewRequest(http.MethodPost, "/api/loyalty/events", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Guest forbidden", func(t *testing.T) {
		token, _ := jwtService.GenerateJWT(1, "guest", time.Now().Add(time.Hour))
		r := httptest.NewRequest(http.MethodPost, "/api/loyalty/events", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
