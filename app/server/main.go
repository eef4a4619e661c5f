package main

import (
	"context"
	"fmt"
	"log"

	"frc-link/app/server/bootstrap"
	"frc-link/app/server/handlers"
	"frc-link/app/server/inits"
	"frc-link/app/server/middlewares"
	"frc-link/app/server/sessions"
	"frc-link/app/tba"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 保证永久系统管理员存在（失败只记录，不阻塞服务）
	if err := bootstrap.EnsureSystemAdmin(context.Background(), db, l, cfg.Admin.PermAdminEmail, cfg.Admin.PermAdminPassword); err != nil {
		l.Error("error ensuring system admin", zap.Error(err))
	}

	// 准备会话目录和上游客户端
	sess := sessions.NewStore(rdb, l)
	tbaClient := tba.NewClient(cfg.TBA.APIURL, cfg.TBA.APIKey, l)

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, rdb, sess, tbaClient)

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定路由
	e.GET("/api/healthcheck", handlerApp.HealthCheck)

	e.POST("/api/sign_up", handlerApp.AuthSignUp)
	e.POST("/api/sign_in", handlerApp.AuthSignIn)
	e.POST("/api/sign_out", handlerApp.AuthSignOut)

	e.GET("/api/gallery", handlerApp.Gallery)
	e.GET("/api/teams/:num", handlerApp.TeamProfile)
	e.GET("/api/teams/:num/editor", handlerApp.EditorLoad)
	e.POST("/api/teams/:num/editor", handlerApp.EditorSave)

	adminGroup := e.Group("/api/admin", middlewares.AdminAuth(sess, l))
	adminGroup.GET("/admins", handlerApp.AdminList)
	adminGroup.POST("/admins", handlerApp.AdminCreate)
	adminGroup.DELETE("/admins", handlerApp.AdminDelete)

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
