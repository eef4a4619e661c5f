package handlers

import (
	"net/http"

	"frc-link/app/server/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) AuthSignOut(c echo.Context) error {
	rctx := c.Request().Context()

	// 删除会话（没有 cookie 时也视为成功）
	if cookie, err := c.Cookie(constants.SessionCookieName); err == nil {
		if err := a.sess.Delete(rctx, cookie.Value); err != nil {
			a.l.Error("failed to delete session", zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "failed to delete session")
		}
	}

	// 清空 cookie
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	return c.NoContent(http.StatusOK)
}
