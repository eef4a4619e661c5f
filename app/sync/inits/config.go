package inits

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"frc-link/app/sync/config"
)

func Config() (*config.Config, error) {
	var cfg config.Config

	{
		mode, exist := os.LookupEnv("MODE")
		cfg.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.DBConnectionString = dbconn
	}

	if tbaKey, exist := os.LookupEnv("TBA_KEY"); !exist {
		return nil, fmt.Errorf("TBA_KEY environment variable not set")
	} else {
		cfg.TBAAPIKey = tbaKey
	}

	if apiURL, exist := os.LookupEnv("TBA_API_URL"); !exist {
		cfg.TBAAPIURL = "https://www.thebluealliance.com/api/v3"
	} else {
		cfg.TBAAPIURL = apiURL
	}

	if concurrencyStr, exist := os.LookupEnv("CONCURRENCY"); !exist {
		cfg.Concurrency = 3 // 每支队伍需要两次远程调用，保持小并发以尊重上游限流
	} else if concurrency, err := strconv.Atoi(concurrencyStr); err != nil {
		return nil, fmt.Errorf("CONCURRENCY should be an integer")
	} else if concurrency < 1 {
		cfg.Concurrency = 1
	} else {
		cfg.Concurrency = concurrency
	}

	{
		dryRun, exist := os.LookupEnv("DRY_RUN")
		cfg.DryRun = exist && (dryRun == "1" || strings.EqualFold(dryRun, "true"))
	}

	if maxPagesStr, exist := os.LookupEnv("MAX_PAGES"); exist {
		maxPages, err := strconv.Atoi(maxPagesStr)
		if err != nil {
			return nil, fmt.Errorf("MAX_PAGES should be an integer")
		}
		cfg.MaxPages = maxPages
	}

	if limitTeamsStr, exist := os.LookupEnv("LIMIT_TEAMS"); exist {
		limitTeams, err := strconv.Atoi(limitTeamsStr)
		if err != nil {
			return nil, fmt.Errorf("LIMIT_TEAMS should be an integer")
		}
		cfg.LimitTeams = limitTeams
	}

	if email, exist := os.LookupEnv("PERM_ADMIN_EMAIL"); !exist {
		cfg.PermAdminEmail = "system@admin.local"
	} else {
		cfg.PermAdminEmail = email
	}

	cfg.PermAdminPassword = os.Getenv("PERM_ADMIN_PASSWORD")

	return &cfg, nil
}
