package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"frc-link/app/server/auth"
	"frc-link/app/server/constants"
	"frc-link/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var emailRegex = regexp.MustCompile(constants.EmailPattern)

type SignUpRequest struct {
	TeamNum  json.Number `json:"team_num"` // 允许字符串或数字形式
	Email    string      `json:"email"`
	Password string      `json:"password"`
}

func (a *App) AuthSignUp(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "invalid request body")
	}

	if req.TeamNum == "" || req.Email == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest, "missing parameters")
	}

	teamNum, err := req.TeamNum.Int64()
	if err != nil {
		return a.er(c, http.StatusBadRequest, fmt.Sprintf("team_num (%s) is not an integer", req.TeamNum))
	}

	if !emailRegex.MatchString(req.Email) {
		return a.er(c, http.StatusBadRequest, fmt.Sprintf("email (%s) is not a valid email address", req.Email))
	}

	if len(req.Password) < constants.PasswordMinLength {
		return a.er(c, http.StatusBadRequest, "password must be at least eight characters long")
	}

	// 拒绝重复邮箱
	var existing models.User
	if err := a.db.WithContext(rctx).First(&existing, "email = ?", req.Email).Error; err == nil {
		return a.er(c, http.StatusConflict, fmt.Sprintf("an account with %s already exists", req.Email))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		a.l.Error("failed to check existing email", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "internal error while checking users")
	}

	// 每支队伍至多一个普通账号
	if err := a.db.WithContext(rctx).First(&existing, "team_num = ? AND is_admin = ?", teamNum, false).Error; err == nil {
		return a.er(c, http.StatusConflict, fmt.Sprintf("an account for team %d already exists", teamNum))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		a.l.Error("failed to check existing team account", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "internal error while checking users")
	}

	// 处理密码
	passhash, salt, err := auth.CreateHashAndSalt(req.Password)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "internal error while creating user")
	}

	// 创建账号
	if err := a.db.WithContext(rctx).Create(&models.User{
		TeamNum:  int(teamNum),
		Email:    req.Email,
		Passhash: passhash,
		Salt:     salt,
	}).Error; err != nil {
		a.l.Error("failed to create user", zap.String("email", req.Email), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "internal error while creating user")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "successfully created user",
	})
}
