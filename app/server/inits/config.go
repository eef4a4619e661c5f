package inits

import (
	"fmt"
	"os"
	"strings"

	"frc-link/app/server/config"
)

func Config() (*config.Config, error) {
	var cfg config.Config

	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	// TBA Key 允许为空：页面回退抓取会直接失败并降级为无数据
	cfg.TBA.APIKey = os.Getenv("TBA_KEY")

	if apiURL, exist := os.LookupEnv("TBA_API_URL"); !exist {
		cfg.TBA.APIURL = "https://www.thebluealliance.com/api/v3"
	} else {
		cfg.TBA.APIURL = apiURL
	}

	if email, exist := os.LookupEnv("PERM_ADMIN_EMAIL"); !exist {
		cfg.Admin.PermAdminEmail = "system@admin.local"
	} else {
		cfg.Admin.PermAdminEmail = email
	}

	cfg.Admin.PermAdminPassword = os.Getenv("PERM_ADMIN_PASSWORD")

	return &cfg, nil
}
