package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	m := NewSessionManager("test-secret", time.Minute, false)

	token, err := m.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestSessionTokenExpired(t *testing.T) {
	m := NewSessionManager("test-secret", -time.Minute, false)

	token, err := m.Issue(42)
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.Error(t, err)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	issuer := NewSessionManager("secret-a", time.Minute, false)
	verifier := NewSessionManager("secret-b", time.Minute, false)

	token, err := issuer.Issue(1)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestSessionTokenTampered(t *testing.T) {
	m := NewSessionManager("test-secret", time.Minute, false)

	token, err := m.Issue(1)
	require.NoError(t, err)

	_, err = m.Validate(token + "x")
	assert.Error(t, err)
}

func TestSignInSetsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewSessionManager("test-secret", time.Minute, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	require.NoError(t, m.SignIn(c, 7))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	userID, err := m.Validate(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)
}

func TestSignOutClearsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewSessionManager("test-secret", time.Minute, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	m.SignOut(c)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
