package handlers

import (
	"frc-link/app/server/sessions"
	"frc-link/app/tba"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l    *zap.Logger     // 日志
	db   *gorm.DB        // 数据库
	rdb  *redis.Client   // Redis
	sess *sessions.Store // 会话目录
	tba  *tba.Client     // The Blue Alliance 客户端，用于页面回退抓取
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, sess *sessions.Store, tbaClient *tba.Client) *App {
	return &App{
		l:    l,
		db:   db,
		rdb:  rdb,
		sess: sess,
		tba:  tbaClient,
	}
}
