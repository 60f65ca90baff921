package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	r, _ := setupTest(t)

	createCuenta(t, r, "gestor1", "Secreta123!")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "gestor1",
		"password": "Secreta123!",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "gestor1", decodeData(t, w)["username"])
	assert.NotEmpty(t, w.Result().Cookies())
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	r, _ := setupTest(t)

	createCuenta(t, r, "gestor1", "Secreta123!")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "gestor1",
		"password": "equivocada",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "no-existe",
		"password": "Secreta123!",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentAccount(t *testing.T) {
	r, _ := setupTest(t)

	createCuenta(t, r, "gestor1", "Secreta123!")

	login := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "gestor1",
		"password": "Secreta123!",
	})
	require.Equal(t, http.StatusOK, login.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, cookie := range login.Result().Cookies() {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "gestor1", decodeData(t, w)["username"])
}

func TestCurrentAccountSinSesion(t *testing.T) {
	r, _ := setupTest(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
