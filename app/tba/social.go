package tba

import "fmt"

// GitHub 链接统一使用这个图标，和既有库中数据保持一致
const githubIcon = "https://external-content.duckduckgo.com/iu/?u=https%3A%2F%2Fstatic-00.iconduck.com%2Fassets.00%2Fgithub-icon-2048x2048-91rgqivh.png&f=1&nofb=1&ipt=5c842f4ec230f47f6ca5a6b41360b7ca6506a575212d7d72c95a62f126b713b3&ipo=images"

// 社交平台类型到链接的映射，foreign_key 是平台上的账号名。
// 目前只有 GitHub 有配套图标，其余平台留给队伍在编辑器里自行设置。
var socialProfiles = map[string]struct {
	Title      string
	URLPattern string
	Icon       string
}{
	"github-profile":    {"GitHub", "https://github.com/%s", githubIcon},
	"facebook-profile":  {"Facebook", "https://www.facebook.com/%s", ""},
	"instagram-profile": {"Instagram", "https://www.instagram.com/%s", ""},
	"twitter-profile":   {"Twitter", "https://twitter.com/%s", ""},
	"youtube-channel":   {"YouTube", "https://www.youtube.com/%s", ""},
	"tiktok-profile":    {"TikTok", "https://www.tiktok.com/@%s", ""},
}

func socialToLink(s *socialMedia) (TeamLink, bool) {
	if s.ForeignKey == "" {
		return TeamLink{}, false
	}

	if profile, ok := socialProfiles[s.Type]; ok {
		return TeamLink{
			Icon:  profile.Icon,
			Title: profile.Title,
			URL:   fmt.Sprintf(profile.URLPattern, s.ForeignKey),
		}, true
	}

	// 未知平台：foreign_key 本身通常就是完整链接
	return TeamLink{
		Title: s.Type,
		URL:   s.ForeignKey,
	}, true
}
