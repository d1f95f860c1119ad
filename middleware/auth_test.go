package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/prediction-pool/models"
)

var testSecret = []byte("test-secret")

func echoUser(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := GetUsernameFromContext(r.Context())
		require.NoError(t, err)
		role, err := GetUserRoleFromContext(r.Context())
		require.NoError(t, err)
		_, _ = w.Write([]byte(username + ":" + string(role)))
	})
}

func TestAuthenticate(t *testing.T) {
	valid, err := GenerateToken(testSecret, &models.User{Username: "ana", Role: models.RoleUser}, time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken(testSecret, &models.User{Username: "ana", Role: models.RoleUser}, -time.Minute)
	require.NoError(t, err)
	otherKey, err := GenerateToken([]byte("other"), &models.User{Username: "ana", Role: models.RoleUser}, time.Hour)
	require.NoError(t, err)
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "user"}).SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: "ana:user"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "wrong key", header: "Bearer " + otherKey, wantStatus: http.StatusUnauthorized},
		{name: "no subject", header: "Bearer " + noSubject, wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me/predictions", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Authenticate(testSecret)(echoUser(t)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		role       models.UserRole
		anonymous  bool
		wantStatus int
	}{
		{name: "admin allowed", role: models.RoleAdmin, wantStatus: http.StatusOK},
		{name: "participant forbidden", role: models.RoleUser, wantStatus: http.StatusForbidden},
		{name: "unknown role", role: "owner", wantStatus: http.StatusUnauthorized},
		{name: "no claims", anonymous: true, wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/matches", nil)
			if !tt.anonymous {
				req = req.WithContext(WithClaims(req.Context(), "someone", tt.role))
			}
			rec := httptest.NewRecorder()
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

			Authorize(models.RoleAdmin)(next).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
