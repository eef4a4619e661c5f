package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串
	}
	TBA struct {
		APIKey string // The Blue Alliance 的 API Key （ X-TBA-Auth-Key ）
		APIURL string // The Blue Alliance 的 API 地址
	}
	Admin struct {
		PermAdminEmail    string // 永久系统管理员的邮箱
		PermAdminPassword string // 永久系统管理员的密码，设置后每次启动会轮换一次凭据
	}
}
