package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/auth"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(m *testMocks)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			body: map[string]string{
				"name":     "Test User",
				"email":    "test@example.com",
				"password": "password123",
			},
			mockSetup: func(m *testMocks) {
				m.users.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate Email",
			body: map[string]string{
				"name":     "Test User",
				"email":    "exists@example.com",
				"password": "password123",
			},
			mockSetup: func(m *testMocks) {
				m.users.On("Create", mock.Anything, mock.Anything).
					Return(models.NewConflictError("Email already exists"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Email already exists",
		},
		{
			name: "Missing Name",
			body: map[string]string{
				"email":    "test@example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid Email",
			body: map[string]string{
				"name":     "Test User",
				"email":    "not-an-email",
				"password": "password123",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid email",
		},
		{
			name: "Short Password",
			body: map[string]string{
				"name":     "Test User",
				"email":    "test@example.com",
				"password": "12345",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Password must be at least 6 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestServer()
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}
			app := fiber.New()
			app.Post("/signup", s.Signup)

			resp := postJSON(t, app, "/signup", tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body := decodeBody(t, resp)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			}
			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, "Test User", body["name"])
				assert.Equal(t, "test@example.com", body["email"])
				assert.NotContains(t, body, "password")
			}
			m.users.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	digest, err := auth.HashPassword("password123")
	require.NoError(t, err)
	stored := &models.User{ID: 7, Name: "Test User", Email: "test@example.com", Password: digest}

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(m *testMocks)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			body: map[string]string{"email": "test@example.com", "password": "password123"},
			mockSetup: func(m *testMocks) {
				m.users.On("GetByEmail", mock.Anything, "test@example.com").Return(stored, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Unknown Email",
			body: map[string]string{"email": "ghost@example.com", "password": "password123"},
			mockSetup: func(m *testMocks) {
				m.users.On("GetByEmail", mock.Anything, "ghost@example.com").
					Return(nil, models.NewNotFoundError("User not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "User not found",
		},
		{
			name: "Wrong Password",
			body: map[string]string{"email": "test@example.com", "password": "hunter2hunter2"},
			mockSetup: func(m *testMocks) {
				m.users.On("GetByEmail", mock.Anything, "test@example.com").Return(stored, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid credentials",
		},
		{
			name:           "Invalid Email Format",
			body:           map[string]string{"email": "nope", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid email",
		},
		{
			name:           "Missing Password",
			body:           map[string]string{"email": "test@example.com"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestServer()
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}
			app := fiber.New()
			app.Post("/login", s.Login)

			resp := postJSON(t, app, "/login", tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body := decodeBody(t, resp)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			}
			if tt.expectedStatus == http.StatusOK {
				token, ok := body["token"].(string)
				require.True(t, ok)
				userID, verr := s.tokens.Validate(token)
				assert.NoError(t, verr)
				assert.Equal(t, uint(7), userID)
			}
			m.users.AssertExpectations(t)
		})
	}
}
