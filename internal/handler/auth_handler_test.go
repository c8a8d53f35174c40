package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []gin.H{
		{},
		{"username": "alice"},
		{"password": "pw1"},
	} {
		w := env.do(t, http.MethodPost, "/api/register", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "Thiếu username hoặc password", resp["message"])
	}
}

func TestRegister_ThenDuplicate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/register", gin.H{"username": "alice", "password": "pw1", "role": "user"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Đăng ký thành công", resp["message"])

	w = env.do(t, http.MethodPost, "/api/register", gin.H{"username": "alice", "password": "other", "role": "user"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp = decodeBody(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Tài khoản đã tồn tại", resp["message"])
}

func TestRegister_DoesNotLogIn(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/register", gin.H{"username": "alice", "password": "pw1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Result().Cookies())

	w = env.do(t, http.MethodGet, "/api/check-auth", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["loggedIn"])
}

func TestLogin_WorkedExample(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1", "user")

	// Unknown account folds into 400.
	w := env.do(t, http.MethodPost, "/api/user_login", gin.H{"username": "bob", "password": "pw1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Tài khoản không tồn tại", decodeBody(t, w)["message"])

	// Wrong password is the only 401.
	w = env.do(t, http.MethodPost, "/api/user_login", gin.H{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Sai mật khẩu", resp["message"])

	// Missing fields win over credential checks.
	w = env.do(t, http.MethodPost, "/api/user_login", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Thiếu username hoặc password", decodeBody(t, w)["message"])

	w = env.do(t, http.MethodPost, "/api/user_login", gin.H{"username": "alice", "password": "pw1"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Đăng nhập thành công", resp["message"])
	user := resp["user"].(map[string]any)
	assert.Equal(t, float64(1), user["id"])
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "user", user["role"])

	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.NotEmpty(t, cookie.Value)
}

func TestCheckAuth_LoginLogoutCycle(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1", "user")
	cookie := env.login(t, "alice", "pw1")

	// Both aliases answer identically.
	for _, path := range []string{"/api/check-auth", "/api/check_login"} {
		w := env.do(t, http.MethodGet, path, nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, true, resp["loggedIn"])
		user := resp["user"].(map[string]any)
		assert.Equal(t, float64(1), user["id"])
		assert.Equal(t, "alice", user["username"])
		assert.Equal(t, "user", user["role"])
	}

	w := env.do(t, http.MethodPost, "/api/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Đăng xuất thành công", resp["message"])

	// The old cookie value is revoked server-side.
	w = env.do(t, http.MethodGet, "/api/check-auth", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody(t, w)
	assert.Equal(t, false, resp["loggedIn"])
	assert.NotContains(t, resp, "user")
}

func TestLogout_WithoutSessionSucceeds(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/register", gin.H{"username": "eve", "password": "pw1", "role": "superuser"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Role không hợp lệ", decodeBody(t, w)["message"])
}
