package tests

import (
	"net/http"
	"testing"

	"github.com/lealre/recitation-backend/internal/auth"
	"github.com/lealre/recitation-backend/internal/services/users"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	t.Run("Signing up successfully", func(t *testing.T) {
		resetDB(t)

		newUser := users.NewUserRequest{
			Name:     "Test User",
			Email:    "test@email.com",
			Password: "testpass123",
		}

		resp := doRequest(t, http.MethodPost, "/auth/signup", "", newUser)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		respBody := decodeBody[users.User](t, resp)
		require.NotEmpty(t, respBody.Id, "id should not be empty")
		require.Equal(t, newUser.Name, respBody.Name)
		require.Equal(t, newUser.Email, respBody.Email)
		require.True(t, respBody.IsActive)
		require.NotEmpty(t, respBody.CreatedAt, "createdAt should not be empty")
	})

	t.Run("Signing up with validation cases", func(t *testing.T) {
		resetDB(t)

		addUser(t, users.NewUserRequest{
			Name:     "First User",
			Email:    "taken@email.com",
			Password: "testpass123",
		})

		cases := []struct {
			user               users.NewUserRequest
			statusCodeExpected int
			testErrorMessage   string
		}{
			{
				user: users.NewUserRequest{
					Name:     "Second User",
					Email:    "taken@email.com",
					Password: "testpass123",
				},
				statusCodeExpected: http.StatusConflict,
				testErrorMessage:   "Failed validating duplicated email",
			},
			{
				user: users.NewUserRequest{
					Name:     "Second User",
					Email:    "TAKEN@email.com",
					Password: "testpass123",
				},
				statusCodeExpected: http.StatusConflict,
				testErrorMessage:   "Failed validating case-insensitive duplicated email",
			},
			{
				user: users.NewUserRequest{
					Email:    "noname@email.com",
					Password: "testpass123",
				},
				statusCodeExpected: http.StatusBadRequest,
				testErrorMessage:   "Failed validating missing name",
			},
			{
				user: users.NewUserRequest{
					Name:     "Short Password",
					Email:    "short@email.com",
					Password: "short",
				},
				statusCodeExpected: http.StatusBadRequest,
				testErrorMessage:   "Failed validating password size",
			},
		}

		for _, c := range cases {
			resp := doRequest(t, http.MethodPost, "/auth/signup", "", c.user)
			require.Equal(t, c.statusCodeExpected, resp.StatusCode, c.testErrorMessage)
			resp.Body.Close()
		}
	})
}

func TestLogin(t *testing.T) {
	t.Run("Logging in successfully", func(t *testing.T) {
		resetDB(t)

		newUser := users.NewUserRequest{
			Name:     "Login User",
			Email:    "login@email.com",
			Password: "testpass123",
		}
		created, _ := addUser(t, newUser)

		resp := doRequest(t, http.MethodPost, "/auth/login", "", auth.LoginRequest{
			Email:    newUser.Email,
			Password: newUser.Password,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		respBody := decodeBody[auth.LoginResponse](t, resp)
		require.NotEmpty(t, respBody.AccessToken)
		require.Equal(t, created.Id, respBody.UserId)
		require.Equal(t, newUser.Name, respBody.Name)
	})

	t.Run("Logging in with wrong password", func(t *testing.T) {
		resetDB(t)

		newUser := users.NewUserRequest{
			Name:     "Login User",
			Email:    "login@email.com",
			Password: "testpass123",
		}
		addUser(t, newUser)

		resp := doRequest(t, http.MethodPost, "/auth/login", "", auth.LoginRequest{
			Email:    newUser.Email,
			Password: "wrongpass",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("Logging in with unknown email", func(t *testing.T) {
		resetDB(t)

		resp := doRequest(t, http.MethodPost, "/auth/login", "", auth.LoginRequest{
			Email:    "nobody@email.com",
			Password: "testpass123",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestGetMe(t *testing.T) {
	t.Run("Getting the authenticated user", func(t *testing.T) {
		resetDB(t)

		created, token := addUser(t, users.NewUserRequest{
			Name:     "Me User",
			Email:    "me@email.com",
			Password: "testpass123",
		})

		resp := doRequest(t, http.MethodGet, "/users/me", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		respBody := decodeBody[users.User](t, resp)
		require.Equal(t, created.Id, respBody.Id)
		require.NotNil(t, respBody.LastLoginAt, "lastLoginAt should be set after login")
	})

	t.Run("Rejecting a request without a token", func(t *testing.T) {
		resetDB(t)

		resp := doRequest(t, http.MethodGet, "/users/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})
}
