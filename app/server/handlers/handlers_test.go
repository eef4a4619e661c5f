package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"frc-link/app/server/auth"
	"frc-link/app/server/constants"
	"frc-link/app/server/models"
	"frc-link/app/server/sessions"
	"frc-link/app/tba"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEnv struct {
	app *App
	e   *echo.Echo
	db  *gorm.DB
}

// newTestEnv 组装一个完整的测试环境：内存库、miniredis 会话目录和可编排的上游
func newTestEnv(t *testing.T, tbaHandler http.Handler) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // 内存库只在单连接内可见
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.TeamInfo{}, &models.TeamLink{}))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	if tbaHandler == nil {
		tbaHandler = http.NotFoundHandler()
	}
	tbaSrv := httptest.NewServer(tbaHandler)
	t.Cleanup(tbaSrv.Close)

	l := zap.NewNop()
	sess := sessions.NewStore(rdb, l)
	return &testEnv{
		app: NewApp(l, db, rdb, sess, tba.NewClient(tbaSrv.URL, "test-key", l)),
		e:   echo.New(),
		db:  db,
	}
}

func (env *testEnv) request(t *testing.T, method string, body interface{}, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	return env.e.NewContext(req, rec), rec
}

func (env *testEnv) createUser(t *testing.T, teamNum int, email string, password string, isAdmin bool) *models.User {
	t.Helper()

	passhash, salt, err := auth.CreateHashAndSalt(password)
	require.NoError(t, err)

	user := &models.User{
		TeamNum:  teamNum,
		Email:    email,
		Passhash: passhash,
		Salt:     salt,
		IsAdmin:  isAdmin,
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) sessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()

	token, err := env.app.sess.Create(context.Background(), user)
	require.NoError(t, err)
	return &http.Cookie{Name: constants.SessionCookieName, Value: token}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
