package config

type Config struct {
	// 基础配置
	IsProd             bool
	DBConnectionString string

	// 上游 API 配置
	TBAAPIKey string
	TBAAPIURL string

	// 同步行为配置
	Concurrency int  // 并发 worker 数，同时也是对上游的并发请求上限
	DryRun      bool // 只统计不写库
	MaxPages    int  // 花名册翻页上限，0 表示不限制
	LimitTeams  int  // 处理队伍数上限，0 表示不限制

	// 永久管理员配置（与 server 共享语义）
	PermAdminEmail    string
	PermAdminPassword string
}
