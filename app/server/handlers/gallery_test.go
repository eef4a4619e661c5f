package handlers

import (
	"net/http"
	"testing"

	"frc-link/app/server/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setQuery(c echo.Context, rawQuery string) {
	c.Request().URL.RawQuery = rawQuery
}

func seedGallery(t *testing.T, env *testEnv, teamNums ...int) {
	t.Helper()
	for _, num := range teamNums {
		require.NoError(t, env.db.Create(&models.TeamInfo{
			TeamNum: num,
			UID:     models.AutoPopulatedUID,
		}).Error)
	}
}

func TestGalleryOrdersByTeamNum(t *testing.T) {
	env := newTestEnv(t, nil)
	seedGallery(t, env, 5678, 118, 1234)

	c, rec := env.request(t, http.MethodGet, nil)
	require.NoError(t, env.app.Gallery(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var res GalleryResponse
	decodeBody(t, rec, &res)
	require.Len(t, res.List, 3)
	assert.Equal(t, 118, res.List[0].TeamNum)
	assert.Equal(t, 1234, res.List[1].TeamNum)
	assert.Equal(t, 5678, res.List[2].TeamNum)
	assert.Equal(t, int64(1), res.PageMax)
}

func TestGalleryPagination(t *testing.T) {
	env := newTestEnv(t, nil)
	seedGallery(t, env, 1, 2, 3, 4, 5)

	c, rec := env.request(t, http.MethodGet, nil)
	setQuery(c, "page=2&limit=2")
	require.NoError(t, env.app.Gallery(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var res GalleryResponse
	decodeBody(t, rec, &res)
	assert.Equal(t, 2, res.Limit)
	assert.Equal(t, int64(3), res.PageMax)
	require.Len(t, res.List, 2)
	assert.Equal(t, 3, res.List[0].TeamNum)
	assert.Equal(t, 4, res.List[1].TeamNum)
}

func TestGalleryShowAll(t *testing.T) {
	env := newTestEnv(t, nil)
	seedGallery(t, env, 1, 2, 3, 4, 5)

	c, rec := env.request(t, http.MethodGet, nil)
	setQuery(c, "page=0&limit=0")
	require.NoError(t, env.app.Gallery(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var res GalleryResponse
	decodeBody(t, rec, &res)
	assert.Len(t, res.List, 5)
	assert.Equal(t, int64(1), res.PageMax)
}

func TestGalleryEmpty(t *testing.T) {
	env := newTestEnv(t, nil)

	c, rec := env.request(t, http.MethodGet, nil)
	require.NoError(t, env.app.Gallery(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var res GalleryResponse
	decodeBody(t, rec, &res)
	assert.NotNil(t, res.List)
	assert.Empty(t, res.List)
	assert.Zero(t, res.PageMax)
}
