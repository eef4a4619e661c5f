package main

import (
	"context"
	"fmt"
	"log"

	"frc-link/app/server/bootstrap"
	serverinits "frc-link/app/server/inits"
	"frc-link/app/sync/inits"
	"frc-link/app/sync/job"
	"frc-link/app/tba"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接（沿用 server 的迁移逻辑，保证表存在）
	db, err := serverinits.DB(cfg.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 保证永久系统管理员存在（失败只记录）
	if err := bootstrap.EnsureSystemAdmin(ctx, db, l, cfg.PermAdminEmail, cfg.PermAdminPassword); err != nil {
		l.Error("error ensuring system admin", zap.Error(err))
	}

	// 执行同步
	tbaClient := tba.NewClient(cfg.TBAAPIURL, cfg.TBAAPIKey, l)
	syncJob := job.New(l, db, tbaClient, job.Options{
		Concurrency: cfg.Concurrency,
		DryRun:      cfg.DryRun,
		MaxPages:    cfg.MaxPages,
		LimitTeams:  cfg.LimitTeams,
	})

	if _, err := syncJob.Run(ctx); err != nil {
		l.Fatal("sync failed", zap.Error(err))
	}
}
