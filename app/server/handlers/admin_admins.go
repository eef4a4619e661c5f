package handlers

import (
	"errors"
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

type AdminInfo struct {
	UID     uint      `json:"uid"`
	Email   string    `json:"email"`
	TeamNum int       `json:"team_num"`
	Created time.Time `json:"created"`
}

type AdminCreateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminList 列出全部管理员账号，不暴露摘要和盐
func (a *App) AdminList(c echo.Context) error {
	rctx := c.Request().Context()

	var admins []models.User
	if err := a.db.WithContext(rctx).Where("is_admin = ?", true).Order("team_num ASC, id ASC").Find(&admins).Error; err != nil {
		a.l.Error("failed to get admin list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "failed to list admins")
	}

	resAdmins := []AdminInfo{}
	for _, admin := range admins {
		resAdmins = append(resAdmins, AdminInfo{
			UID:     admin.ID,
			Email:   admin.Email,
			TeamNum: admin.TeamNum,
			Created: admin.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, map[string][]AdminInfo{
		"admins": resAdmins,
	})
}

func (a *App) AdminCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req AdminCreateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest, "email and password required")
	}
	if len(req.Password) < constants.PasswordMinLength {
		return a.er(c, http.StatusBadRequest, "password must be at least eight characters long")
	}

	// 处理密码
	passhash, salt, err := auth.CreateHashAndSalt(req.Password)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "failed to create admin")
	}

	// 创建管理员
	admin := models.User{
		TeamNum:  0,
		Email:    req.Email,
		Passhash: passhash,
		Salt:     salt,
		IsAdmin:  true,
	}
	if err := a.db.WithContext(rctx).Create(&admin).Error; err != nil {
		a.l.Error("failed to create admin", zap.String("email", req.Email), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "failed to create admin")
	}

	return c.JSON(http.StatusCreated, &AdminInfo{
		UID:     admin.ID,
		Email:   admin.Email,
		TeamNum: admin.TeamNum,
		Created: admin.CreatedAt,
	})
}

// AdminDelete 删除一个管理员账号，永久系统管理员（ team_num = 0 中最早的一个）受保护
func (a *App) AdminDelete(c echo.Context) error {
	rctx := c.Request().Context()

	uidParam := c.QueryParam("uid")
	if uidParam == "" {
		return a.er(c, http.StatusBadRequest, "uid required")
	}
	uid, err := strconv.ParseUint(uidParam, 10, 64)
	if err != nil {
		return a.er(c, http.StatusBadRequest, "uid must be a number")
	}

	// 永久管理员保护
	var permanent models.User
	if err := a.db.WithContext(rctx).Where("team_num = 0 AND is_admin = ?", true).Order("id ASC").First(&permanent).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			a.l.Error("failed to find permanent admin", zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "failed to delete admin")
		}
	} else if permanent.ID == uint(uid) {
		return a.er(c, http.StatusForbidden, "cannot delete the permanent system admin")
	}

	// 只删管理员账号，普通账号不受这个接口影响
	if err := a.db.WithContext(rctx).Where("id = ? AND is_admin = ?", uid, true).Delete(&models.User{}).Error; err != nil {
		a.l.Error("failed to delete admin", zap.Uint64("uid", uid), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "failed to delete admin")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "admin deleted",
	})
}
