package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	router := setupTest(t)

	w := performRequest(router, http.MethodPost, "/api/register", "", map[string]interface{}{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	requireStatus(t, w, http.StatusCreated)

	body := decodeBody(t, w)
	require.NotEmpty(t, body["token"])

	// Duplicate email is rejected
	w = performRequest(router, http.MethodPost, "/api/register", "", map[string]interface{}{
		"username": "alice2",
		"email":    "alice@example.com",
		"password": "password123",
	})
	requireStatus(t, w, http.StatusBadRequest)

	// Duplicate username is rejected too, not surfaced as a server error
	w = performRequest(router, http.MethodPost, "/api/register", "", map[string]interface{}{
		"username": "alice",
		"email":    "alice2@example.com",
		"password": "password123",
	})
	requireStatus(t, w, http.StatusBadRequest)

	w = performRequest(router, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "password123",
	})
	requireStatus(t, w, http.StatusOK)
	assert.NotEmpty(t, decodeBody(t, w)["token"])

	w = performRequest(router, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestRegisterValidation(t *testing.T) {
	router := setupTest(t)

	// Password too short
	w := performRequest(router, http.MethodPost, "/api/register", "", map[string]interface{}{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "short",
	})
	requireStatus(t, w, http.StatusBadRequest)

	// Malformed email
	w = performRequest(router, http.MethodPost, "/api/register", "", map[string]interface{}{
		"username": "alice",
		"email":    "not-an-email",
		"password": "password123",
	})
	requireStatus(t, w, http.StatusBadRequest)
}
