package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"frc-link/app/server/auth"
	"frc-link/app/server/constants"
	"frc-link/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SignInRequest struct {
	Identifier string `json:"identifier"` // 邮箱或队伍编号
	Email      string `json:"email"`      // 旧字段，等价于 identifier
	Password   string `json:"password"`
}

func (a *App) AuthSignIn(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "invalid request body")
	}

	idValue := req.Identifier
	if idValue == "" {
		idValue = req.Email
	}
	if idValue == "" {
		return a.er(c, http.StatusBadRequest, "missing identifier (email or team number)")
	}
	if req.Password == "" {
		return a.er(c, http.StatusBadRequest, "missing password parameter")
	}
	if len(req.Password) < constants.PasswordMinLength {
		return a.er(c, http.StatusBadRequest, "password must be at least eight characters long")
	}

	// 按邮箱或队伍编号定位账号
	var (
		account *models.User
		err     error
	)
	if emailRegex.MatchString(idValue) {
		account, err = a.findAccount(rctx, "email = ?", idValue)
	} else {
		teamNum, convErr := strconv.Atoi(idValue)
		if convErr != nil {
			return a.er(c, http.StatusBadRequest, fmt.Sprintf("identifier (%s) must be a valid email or integer team number", idValue))
		}
		account, err = a.findAccount(rctx, "team_num = ?", teamNum)
	}
	if err != nil {
		a.l.Error("failed to find account", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "internal error while checking users")
	}
	if account == nil {
		return a.er(c, http.StatusNotFound, "no account found with that identifier")
	}

	// 校验密码
	if !auth.Verify(req.Password, account.Salt, account.Passhash) {
		return a.er(c, http.StatusUnauthorized, "incorrect password")
	}

	// 创建会话并写入 cookie
	token, err := a.sess.Create(rctx, account)
	if err != nil {
		a.l.Error("failed to create session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "failed to create session")
	}

	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(constants.SessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	return c.JSON(http.StatusOK, map[string]string{
		"message": "success",
	})
}

// findAccount 返回符合条件的最新账号。普通账号是赛季（自然年）有效的，
// 过季的账号等同于不存在。
func (a *App) findAccount(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	var user models.User
	if err := a.db.WithContext(ctx).Where(query, args...).Order("created_at DESC").First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !user.CreatedThisYear(time.Now()) {
		return nil, nil
	}

	return &user, nil
}
