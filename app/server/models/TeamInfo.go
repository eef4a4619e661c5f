package models

import "gorm.io/gorm"

// AutoPopulatedUID 表示资料由同步任务自动抓取生成，还没有被任何账号认领
const AutoPopulatedUID = -1

type TeamInfo struct {
	gorm.Model

	TeamNum int `gorm:"column:team_num;uniqueIndex"` // 队伍编号，每支队伍至多一行资料

	// 展示信息
	FullName    string `gorm:"column:team_full_name"` // 队伍全名
	Pfp         string `gorm:"column:pfp"`            // 头像图片地址
	Description string `gorm:"column:description"`    // 队伍介绍
	Location    string `gorm:"column:location"`       // 所在地

	// 主页配色
	PrimaryCol   string `gorm:"column:primary_col"`   // 主色
	SecondaryCol string `gorm:"column:secondary_col"` // 次色

	// 归属
	UID int `gorm:"column:uid"` // 创建资料的账号 ID ，-1 表示自动生成（未认领）
}

func (TeamInfo) TableName() string {
	return "frclink_info"
}
