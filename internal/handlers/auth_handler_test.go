package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	t.Run("returns a token and hides the password hash", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/auth/signup", gin.H{
			"name":     "Loki Stark",
			"email":    "loki@example.com",
			"phone":    "5551234",
			"password": "secret123",
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			Token    string         `json:"token"`
			Customer map[string]any `json:"customer"`
		}
		decode(t, w, &body)
		assert.NotEmpty(t, body.Token)
		assert.Equal(t, "loki@example.com", body.Customer["email"])
		assert.NotContains(t, body.Customer, "passwordHash")
		assert.NotContains(t, body.Customer, "password_hash")
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/auth/signup", gin.H{
			"name":     "Loki Again",
			"email":    "loki@example.com",
			"phone":    "5551234",
			"password": "secret123",
		}, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		decode(t, w, &body)
		assert.Equal(t, "email_exists", body.Error)
		assert.Equal(t, "Email exists", body.Message)
	})

	t.Run("short password", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/auth/signup", gin.H{
			"name":     "Thor Stark",
			"email":    "thor@example.com",
			"phone":    "5551234",
			"password": "abc",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "Loki Stark", "loki@example.com")

	t.Run("valid credentials", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/auth/login", gin.H{
			"email":    "loki@example.com",
			"password": "secret123",
		}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Token string `json:"token"`
		}
		decode(t, w, &body)
		assert.NotEmpty(t, body.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/auth/login", gin.H{
			"email":    "loki@example.com",
			"password": "wrongpass",
		}, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		var body struct {
			Error string `json:"error"`
		}
		decode(t, w, &body)
		assert.Equal(t, "invalid_credentials", body.Error)
	})

	t.Run("unknown email", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/auth/login", gin.H{
			"email":    "nobody@example.com",
			"password": "secret123",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAutoProvisionedCustomerCannotUseDefaultPassword(t *testing.T) {
	env := newTestEnv(t)
	env.placeOrder(t, "walkin@example.com", "s1")

	w := env.request(t, http.MethodPost, "/auth/login", gin.H{
		"email":    "walkin@example.com",
		"password": "defaultpass",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
