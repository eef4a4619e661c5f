package middlewares

import (
	"errors"
	"net/http"

	"frc-link/app/server/constants"
	"frc-link/app/server/sessions"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AdminAuth 保护管理端路由：从 cookie 提取会话令牌，解析出会话并要求管理员权限
func AdminAuth(store *sessions.Store, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rctx := c.Request().Context()

			// 提取令牌
			cookie, err := c.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.NoContent(http.StatusUnauthorized)
			}

			// 查询会话
			session, err := store.Get(rctx, cookie.Value)
			if err != nil {
				if errors.Is(err, sessions.ErrNotFound) {
					return c.NoContent(http.StatusUnauthorized)
				}
				l.Error("failed to query session", zap.Error(err))
				return c.NoContent(http.StatusInternalServerError)
			}

			if !session.IsAdmin {
				return c.NoContent(http.StatusUnauthorized)
			}

			// 设置 context
			c.Set("session", session)

			// 继续处理
			return next(c)
		}
	}
}
