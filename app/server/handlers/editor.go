package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"frc-link/app/server/constants"
	"frc-link/app/server/models"
	"frc-link/app/server/sessions"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EditorLink struct {
	ID          uint   `json:"id"` // 0 表示新建
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type EditorSaveRequest struct {
	FullName     string       `json:"team_full_name"`
	Pfp          string       `json:"pfp"`
	Description  string       `json:"description"`
	PrimaryCol   string       `json:"primary_col"`
	SecondaryCol string       `json:"secondary_col"`
	Location     string       `json:"location"`
	Links        []EditorLink `json:"links"`
	DeletedIDs   []uint       `json:"deletedIds"`
}

type EditorLoadResponse struct {
	Info    *models.TeamInfo  `json:"info"`
	Links   []models.TeamLink `json:"links"`
	IsAdmin bool              `json:"isAdmin"`
}

type EditorSaveResponse struct {
	Message string            `json:"message"`
	Info    *models.TeamInfo  `json:"info"`
	Links   []models.TeamLink `json:"links"`
}

// editorSession 解析会话并校验其对指定队伍的编辑权限（本队或管理员）
func (a *App) editorSession(c echo.Context, teamNum int) (*sessions.Session, int, error) {
	session, err := a.getSession(c)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			return nil, http.StatusUnauthorized, fmt.Errorf("invalid session")
		}
		return nil, http.StatusInternalServerError, fmt.Errorf("failed to query session: %w", err)
	}

	if session.TeamNum != teamNum && !session.IsAdmin {
		return nil, http.StatusUnauthorized, fmt.Errorf("session not authorized for that team")
	}

	return session, http.StatusOK, nil
}

// EditorLoad 为编辑器页面加载当前资料
func (a *App) EditorLoad(c echo.Context) error {
	rctx := c.Request().Context()

	teamNum, err := a.teamNumParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, err.Error())
	}

	session, statusCode, err := a.editorSession(c, teamNum)
	if err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to authorize editor", zap.Error(err))
		}
		return a.er(c, statusCode, "invalid session")
	}

	var info *models.TeamInfo
	var stored models.TeamInfo
	if err := a.db.WithContext(rctx).First(&stored, "team_num = ?", teamNum).Error; err == nil {
		info = &stored
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		a.l.Error("failed to get team info", zap.Int("teamNum", teamNum), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "failed to load editor data")
	}

	var links []models.TeamLink
	if err := a.db.WithContext(rctx).Where("team_num = ?", teamNum).Order("id ASC").Find(&links).Error; err != nil {
		a.l.Error("failed to get team links", zap.Int("teamNum", teamNum), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "failed to load editor data")
	}
	if links == nil {
		links = []models.TeamLink{}
	}

	return c.JSON(http.StatusOK, &EditorLoadResponse{
		Info:    info,
		Links:   links,
		IsAdmin: session.IsAdmin,
	})
}

// EditorSave 保存队伍资料：信息行 upsert ，链接按 id 更新 / 新增 / 删除
func (a *App) EditorSave(c echo.Context) error {
	rctx := c.Request().Context()

	teamNum, err := a.teamNumParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, err.Error())
	}

	session, statusCode, err := a.editorSession(c, teamNum)
	if err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to authorize editor", zap.Error(err))
		}
		return a.er(c, statusCode, "invalid session")
	}

	// 绑定请求体
	var req EditorSaveRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "invalid request body")
	}

	if req.PrimaryCol == "" {
		req.PrimaryCol = constants.DefaultPrimaryCol
	}
	if req.SecondaryCol == "" {
		req.SecondaryCol = constants.DefaultSecondaryCol
	}

	// 资料行 upsert ，新建时记录创建者
	var info models.TeamInfo
	if err := a.db.WithContext(rctx).First(&info, "team_num = ?", teamNum).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			a.l.Error("failed to get team info", zap.Int("teamNum", teamNum), zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "failed to save team info")
		}

		info = models.TeamInfo{
			TeamNum:      teamNum,
			FullName:     req.FullName,
			Pfp:          req.Pfp,
			Description:  req.Description,
			Location:     req.Location,
			PrimaryCol:   req.PrimaryCol,
			SecondaryCol: req.SecondaryCol,
			UID:          int(session.UID),
		}
		if err := a.db.WithContext(rctx).Create(&info).Error; err != nil {
			a.l.Error("failed to create team info", zap.Int("teamNum", teamNum), zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "failed to save team info")
		}
	} else {
		if err := a.db.WithContext(rctx).Model(&info).Updates(map[string]interface{}{
			"team_full_name": req.FullName,
			"pfp":            req.Pfp,
			"description":    req.Description,
			"location":       req.Location,
			"primary_col":    req.PrimaryCol,
			"secondary_col":  req.SecondaryCol,
		}).Error; err != nil {
			a.l.Error("failed to update team info", zap.Int("teamNum", teamNum), zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "failed to save team info")
		}
	}

	// 删除被移除的链接（限定在本队伍内）
	if len(req.DeletedIDs) > 0 {
		if err := a.db.WithContext(rctx).Where("id IN ? AND team_num = ?", req.DeletedIDs, teamNum).Delete(&models.TeamLink{}).Error; err != nil {
			a.l.Error("failed to delete links", zap.Int("teamNum", teamNum), zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "failed to delete links")
		}
	}

	// 链接 upsert
	for _, link := range req.Links {
		if link.ID != 0 {
			if err := a.db.WithContext(rctx).Model(&models.TeamLink{}).
				Where("id = ? AND team_num = ?", link.ID, teamNum).
				Updates(map[string]interface{}{
					"icon":        link.Icon,
					"title":       link.Title,
					"description": link.Description,
					"url":         link.URL,
					"uid":         int(session.UID),
				}).Error; err != nil {
				a.l.Error("failed to update link", zap.Uint("id", link.ID), zap.Error(err))
				return a.er(c, http.StatusInternalServerError, "failed to save links")
			}
		} else {
			if err := a.db.WithContext(rctx).Create(&models.TeamLink{
				TeamNum:     teamNum,
				Icon:        link.Icon,
				Title:       link.Title,
				Description: link.Description,
				URL:         link.URL,
				UID:         int(session.UID),
			}).Error; err != nil {
				a.l.Error("failed to create link", zap.Int("teamNum", teamNum), zap.Error(err))
				return a.er(c, http.StatusInternalServerError, "failed to save links")
			}
		}
	}

	// 返回保存后的最新数据，让客户端立刻拿到新链接的 id
	var savedLinks []models.TeamLink
	if err := a.db.WithContext(rctx).Where("team_num = ?", teamNum).Order("id ASC").Find(&savedLinks).Error; err != nil {
		a.l.Error("failed to fetch refreshed links", zap.Int("teamNum", teamNum), zap.Error(err))
		savedLinks = []models.TeamLink{}
	}
	var savedInfo models.TeamInfo
	if err := a.db.WithContext(rctx).First(&savedInfo, "team_num = ?", teamNum).Error; err != nil {
		a.l.Error("failed to fetch refreshed info", zap.Int("teamNum", teamNum), zap.Error(err))
	}

	return c.JSON(http.StatusOK, &EditorSaveResponse{
		Message: "saved changes",
		Info:    &savedInfo,
		Links:   savedLinks,
	})
}
