package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tokoadmin/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) ResolveUserID(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func TestAuthRequired(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setupMock  func(*mockResolver)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Unauthenticated",
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Unauthenticated",
		},
		{
			name:       "empty bearer token",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Unauthenticated",
		},
		{
			name:   "rejected token",
			header: "Bearer forged",
			setupMock: func(m *mockResolver) {
				m.On("ResolveUserID", "forged").Return("", errors.New("invalid token")).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Unauthenticated",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(m *mockResolver) {
				m.On("ResolveUserID", "good").Return("user-1", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "user-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := new(mockResolver)
			if tt.setupMock != nil {
				tt.setupMock(resolver)
			}

			app := fiber.New()
			app.Get("/", middleware.AuthRequired(resolver), func(c *fiber.Ctx) error {
				return c.SendString(middleware.UserID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantBody, string(body))
			resolver.AssertExpectations(t)
		})
	}
}
