package handlers

import (
	"net/http"

	"frc-link/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type GalleryResponse struct {
	Limit   int               `json:"limit"`
	PageMax int64             `json:"page_max"`
	List    []models.TeamInfo `json:"list"`
}

// Gallery 列出全部队伍资料，供画廊页使用
func (a *App) Gallery(c echo.Context) error {
	rctx := c.Request().Context()

	var (
		infos      []models.TeamInfo
		infosCount int64
	)

	showAll, page, limit := a.parsePagination(a.queryUint(c, "page"), a.queryUint(c, "limit"))
	queryBase := a.db.WithContext(rctx).Model(&models.TeamInfo{}).Order("team_num ASC")
	if !showAll {
		queryBase = queryBase.Limit(limit).Offset(page * limit)
	}

	if err := queryBase.Find(&infos).Error; err != nil {
		a.l.Error("failed to get gallery list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "failed to load gallery data")
	}
	if err := a.db.WithContext(rctx).Model(&models.TeamInfo{}).Count(&infosCount).Error; err != nil {
		a.l.Error("failed to count gallery list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "failed to load gallery data")
	}

	if infos == nil {
		infos = []models.TeamInfo{}
	}

	return c.JSON(http.StatusOK, &GalleryResponse{
		Limit:   limit,
		PageMax: a.calcMaxPage(infosCount, showAll, limit),
		List:    infos,
	})
}
