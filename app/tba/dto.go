package tba

// SimpleTeam 对应 /teams/{page}/simple 返回的队伍记录
type SimpleTeam struct {
	TeamNumber int    `json:"team_number"`
	Nickname   string `json:"nickname"`
	City       string `json:"city"`
	StateProv  string `json:"state_prov"`
	Country    string `json:"country"`
}

// teamResponse 对应 /team/frc{N} 返回的完整队伍记录（只取用到的字段）
type teamResponse struct {
	TeamNumber int    `json:"team_number"`
	Name       string `json:"name"`
	Nickname   string `json:"nickname"`
	City       string `json:"city"`
	StateProv  string `json:"state_prov"`
	Country    string `json:"country"`
}

// socialMedia 对应 /team/frc{N}/social_media 返回的条目
type socialMedia struct {
	Type       string `json:"type"`
	ForeignKey string `json:"foreign_key"`
}

// TeamInfo 是整理后的队伍展示信息
type TeamInfo struct {
	TeamFullName   string `json:"team_full_name"`
	Pfp            string `json:"pfp"`
	Description    string `json:"description"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Location       string `json:"location"`
}

// TeamLink 是整理后的社交 / 联系方式链接
type TeamLink struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// TeamBundle 是一支队伍的 info + links 组合包，Info 为空表示上游没有该队伍的公开数据
type TeamBundle struct {
	Info  []TeamInfo `json:"info"`
	Links []TeamLink `json:"links"`
}
