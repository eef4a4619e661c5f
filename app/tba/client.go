package tba

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// errNotFound 表示上游没有这条记录（ 404 ），与网络 / 服务端故障区分开
var errNotFound = errors.New("not found upstream")

// Client 负责访问 The Blue Alliance v3 API ，认证通过 X-TBA-Auth-Key 请求头完成
type Client struct {
	apiURL string
	apiKey string
	hc     *http.Client
	l      *zap.Logger
}

func NewClient(apiURL string, apiKey string, l *zap.Logger) *Client {
	return &Client{
		apiURL: strings.TrimSuffix(apiURL, "/"),
		apiKey: apiKey,
		hc: &http.Client{
			Timeout: 30 * time.Second,
		},
		l: l,
	}
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-TBA-Auth-Key", c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", path, errNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected response for %s: %s", path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response for %s: %w", path, err)
	}

	return nil
}

// TeamsPage 拉取一页花名册，返回空切片表示翻页结束
func (c *Client) TeamsPage(ctx context.Context, page int) ([]SimpleTeam, error) {
	var teams []SimpleTeam
	if err := c.get(ctx, fmt.Sprintf("/teams/%d/simple", page), &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// Team 拉取一支队伍的 info + links 组合包，内部是两次远程调用。
// 队伍在上游不存在（ 404 ）时返回 Info 为空的组合包，不算错误；
// 网络或服务端故障原样返回错误，不能和"没有数据"混为一谈。
func (c *Client) Team(ctx context.Context, teamNum int) (*TeamBundle, error) {
	var team teamResponse
	if err := c.get(ctx, fmt.Sprintf("/team/frc%d", teamNum), &team); err != nil {
		if errors.Is(err, errNotFound) {
			c.l.Debug("no team record upstream", zap.Int("teamNum", teamNum))
			return &TeamBundle{}, nil
		}
		return nil, err
	}

	bundle := &TeamBundle{
		Info: []TeamInfo{
			{
				TeamFullName: teamFullName(&team),
				Location:     teamLocation(&team),
			},
		},
	}

	// 社交链接的拉取失败不影响 info 部分
	var socials []socialMedia
	if err := c.get(ctx, fmt.Sprintf("/team/frc%d/social_media", teamNum), &socials); err != nil {
		c.l.Warn("failed to fetch social media", zap.Int("teamNum", teamNum), zap.Error(err))
		return bundle, nil
	}

	for _, s := range socials {
		if link, ok := socialToLink(&s); ok {
			bundle.Links = append(bundle.Links, link)
		}
	}

	return bundle, nil
}

func teamFullName(team *teamResponse) string {
	if team.Nickname != "" {
		return team.Nickname
	}
	return team.Name
}

func teamLocation(team *teamResponse) string {
	var parts []string
	for _, p := range []string{team.City, team.StateProv, team.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
