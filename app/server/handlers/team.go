package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"frc-link/app/server/constants"
	"frc-link/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TeamProfileResponse struct {
	Info       *models.TeamInfo  `json:"info"`
	Links      []models.TeamLink `json:"links"`
	Autofilled bool              `json:"autofilled"` // 资料来自上游实时抓取，没有入库
}

func (a *App) teamNumParam(c echo.Context) (int, error) {
	teamNum, err := strconv.Atoi(c.Param("num"))
	if err != nil {
		return 0, fmt.Errorf("team (%s) is not an integer", c.Param("num"))
	}
	return teamNum, nil
}

// TeamProfile 返回一支队伍的公开主页数据，库里没有时回退到上游实时抓取
func (a *App) TeamProfile(c echo.Context) error {
	rctx := c.Request().Context()

	teamNum, err := a.teamNumParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, err.Error())
	}

	var info models.TeamInfo
	if err := a.db.WithContext(rctx).First(&info, "team_num = ?", teamNum).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			a.l.Error("failed to get team info", zap.Int("teamNum", teamNum), zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "failed to load team data")
		}

		// 库里没有：直接从上游抓一份展示用数据，不入库
		return a.teamProfileFromUpstream(c, teamNum)
	}

	var links []models.TeamLink
	if err := a.db.WithContext(rctx).Where("team_num = ?", teamNum).Order("id ASC").Find(&links).Error; err != nil {
		a.l.Error("failed to get team links", zap.Int("teamNum", teamNum), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "failed to load team data")
	}
	if links == nil {
		links = []models.TeamLink{}
	}

	return c.JSON(http.StatusOK, &TeamProfileResponse{
		Info:  &info,
		Links: links,
	})
}

func (a *App) teamProfileFromUpstream(c echo.Context, teamNum int) error {
	rctx := c.Request().Context()

	bundle, err := a.tba.Team(rctx, teamNum)
	if err != nil {
		a.l.Error("failed to fetch team from upstream", zap.Int("teamNum", teamNum), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "failed to load team data")
	}
	if len(bundle.Info) == 0 {
		return a.er(c, http.StatusNotFound, fmt.Sprintf("no data for team %d", teamNum))
	}

	upstream := bundle.Info[0]
	info := models.TeamInfo{
		TeamNum:      teamNum,
		FullName:     upstream.TeamFullName,
		Pfp:          upstream.Pfp,
		Description:  upstream.Description,
		Location:     upstream.Location,
		PrimaryCol:   constants.DefaultPrimaryCol,
		SecondaryCol: constants.DefaultSecondaryCol,
		UID:          models.AutoPopulatedUID,
	}

	links := []models.TeamLink{}
	for _, l := range bundle.Links {
		links = append(links, models.TeamLink{
			TeamNum:     teamNum,
			Icon:        l.Icon,
			Title:       l.Title,
			Description: l.Description,
			URL:         l.URL,
			UID:         models.AutoPopulatedUID,
		})
	}

	return c.JSON(http.StatusOK, &TeamProfileResponse{
		Info:       &info,
		Links:      links,
		Autofilled: true,
	})
}
