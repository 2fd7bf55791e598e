package tests

import (
	"net/http"
	"testing"

	"github.com/lealre/recitation-backend/internal/auth"
	"github.com/lealre/recitation-backend/internal/services/users"
	"github.com/stretchr/testify/require"
)

// addUser signs up a user through the API and logs them in, returning the
// created user and a bearer token.
func addUser(t *testing.T, user users.NewUserRequest) (users.User, string) {
	t.Helper()

	resp := doRequest(t, http.MethodPost, "/auth/signup", "", user)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	respBody := decodeBody[users.User](t, resp)

	token := getUserToken(t, auth.LoginRequest{
		Email:    user.Email,
		Password: user.Password,
	})

	return respBody, token
}

func getUserToken(t *testing.T, authUser auth.LoginRequest) string {
	t.Helper()

	resp := doRequest(t, http.MethodPost, "/auth/login", "", authUser)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	respBodyAuth := decodeBody[auth.LoginResponse](t, resp)

	return respBodyAuth.AccessToken
}
