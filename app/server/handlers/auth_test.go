package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"frc-link/app/server/constants"
	"frc-link/app/server/models"
	"frc-link/app/server/sessions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUp(t *testing.T) {
	env := newTestEnv(t, nil)

	c, rec := env.request(t, http.MethodPost, map[string]interface{}{
		"team_num": 1234,
		"email":    "captain@team1234.org",
		"password": "longenough",
	})
	require.NoError(t, env.app.AuthSignUp(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, env.db.First(&user, "email = ?", "captain@team1234.org").Error)
	assert.Equal(t, 1234, user.TeamNum)
	assert.False(t, user.IsAdmin)
	assert.NotEmpty(t, user.Salt)
	assert.NotContains(t, user.Passhash, "longenough")
}

func TestSignUpTeamNumAsString(t *testing.T) {
	env := newTestEnv(t, nil)

	// team_num 允许以字符串形式到达
	c, rec := env.request(t, http.MethodPost, map[string]interface{}{
		"team_num": "254",
		"email":    "captain@team254.org",
		"password": "longenough",
	})
	require.NoError(t, env.app.AuthSignUp(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, env.db.First(&user, "email = ?", "captain@team254.org").Error)
	assert.Equal(t, 254, user.TeamNum)
}

func TestSignUpValidation(t *testing.T) {
	env := newTestEnv(t, nil)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing params", map[string]interface{}{"email": "a@b.co"}},
		{"bad team number", map[string]interface{}{"team_num": "not-a-number", "email": "a@b.co", "password": "longenough"}},
		{"bad email", map[string]interface{}{"team_num": 1, "email": "not an email", "password": "longenough"}},
		{"short password", map[string]interface{}{"team_num": 1, "email": "a@b.co", "password": "short"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := env.request(t, http.MethodPost, tc.body)
			require.NoError(t, env.app.AuthSignUp(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSignUpDuplicates(t *testing.T) {
	env := newTestEnv(t, nil)
	env.createUser(t, 1234, "captain@team1234.org", "longenough", false)

	// 重复邮箱
	c, rec := env.request(t, http.MethodPost, map[string]interface{}{
		"team_num": 5678,
		"email":    "captain@team1234.org",
		"password": "longenough",
	})
	require.NoError(t, env.app.AuthSignUp(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	// 同队伍第二个普通账号
	c, rec = env.request(t, http.MethodPost, map[string]interface{}{
		"team_num": 1234,
		"email":    "other@team1234.org",
		"password": "longenough",
	})
	require.NoError(t, env.app.AuthSignUp(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSignInWithEmail(t *testing.T) {
	env := newTestEnv(t, nil)
	env.createUser(t, 1234, "captain@team1234.org", "longenough", false)

	c, rec := env.request(t, http.MethodPost, map[string]interface{}{
		"identifier": "captain@team1234.org",
		"password":   "longenough",
	})
	require.NoError(t, env.app.AuthSignIn(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// 成功登录必须带回会话 cookie ，且能解析出队伍授权范围
	var sessionCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	assert.True(t, sessionCookie.HttpOnly)

	session, err := env.app.sess.Get(context.Background(), sessionCookie.Value)
	require.NoError(t, err)
	assert.Equal(t, 1234, session.TeamNum)
	assert.False(t, session.IsAdmin)
}

func TestSignInWithTeamNumber(t *testing.T) {
	env := newTestEnv(t, nil)
	env.createUser(t, 254, "captain@team254.org", "longenough", false)

	c, rec := env.request(t, http.MethodPost, map[string]interface{}{
		"identifier": "254",
		"password":   "longenough",
	})
	require.NoError(t, env.app.AuthSignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignInLegacyEmailField(t *testing.T) {
	env := newTestEnv(t, nil)
	env.createUser(t, 33, "bees@team33.org", "longenough", false)

	c, rec := env.request(t, http.MethodPost, map[string]interface{}{
		"email":    "bees@team33.org",
		"password": "longenough",
	})
	require.NoError(t, env.app.AuthSignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignInFailures(t *testing.T) {
	env := newTestEnv(t, nil)
	env.createUser(t, 1234, "captain@team1234.org", "longenough", false)

	cases := []struct {
		name string
		body map[string]interface{}
		code int
	}{
		{"wrong password", map[string]interface{}{"identifier": "captain@team1234.org", "password": "wrongwrong"}, http.StatusUnauthorized},
		{"unknown email", map[string]interface{}{"identifier": "nobody@here.org", "password": "longenough"}, http.StatusNotFound},
		{"unknown team", map[string]interface{}{"identifier": "9999", "password": "longenough"}, http.StatusNotFound},
		{"missing identifier", map[string]interface{}{"password": "longenough"}, http.StatusBadRequest},
		{"missing password", map[string]interface{}{"identifier": "captain@team1234.org"}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := env.request(t, http.MethodPost, tc.body)
			require.NoError(t, env.app.AuthSignIn(c))
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestSignInSeasonScoped(t *testing.T) {
	env := newTestEnv(t, nil)
	user := env.createUser(t, 118, "old@team118.org", "longenough", false)

	// 普通账号只在创建的自然年内有效
	lastYear := time.Now().AddDate(-1, 0, 0)
	require.NoError(t, env.db.Model(user).Update("created_at", lastYear).Error)

	c, rec := env.request(t, http.MethodPost, map[string]interface{}{
		"identifier": "old@team118.org",
		"password":   "longenough",
	})
	require.NoError(t, env.app.AuthSignIn(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSignInAdminNotSeasonScoped(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := env.createUser(t, 0, "system@admin.local", "longenough", true)

	lastYear := time.Now().AddDate(-1, 0, 0)
	require.NoError(t, env.db.Model(admin).Update("created_at", lastYear).Error)

	c, rec := env.request(t, http.MethodPost, map[string]interface{}{
		"identifier": "system@admin.local",
		"password":   "longenough",
	})
	require.NoError(t, env.app.AuthSignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignOut(t *testing.T) {
	env := newTestEnv(t, nil)
	user := env.createUser(t, 1234, "captain@team1234.org", "longenough", false)
	cookie := env.sessionCookie(t, user)

	c, rec := env.request(t, http.MethodPost, nil, cookie)
	require.NoError(t, env.app.AuthSignOut(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	_, err := env.app.sess.Get(context.Background(), cookie.Value)
	assert.ErrorIs(t, err, sessions.ErrNotFound)
}

func TestSignOutWithoutSession(t *testing.T) {
	env := newTestEnv(t, nil)

	c, rec := env.request(t, http.MethodPost, nil)
	require.NoError(t, env.app.AuthSignOut(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
