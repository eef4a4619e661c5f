package handlers

import (
	"frc-link/app/server/constants"
	"frc-link/app/server/sessions"

	"github.com/labstack/echo/v4"
)

// getSession 从请求 cookie 解析当前会话，没有有效会话时返回 ErrNotFound
func (a *App) getSession(c echo.Context) (*sessions.Session, error) {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, sessions.ErrNotFound
	}

	return a.sess.Get(c.Request().Context(), cookie.Value)
}
