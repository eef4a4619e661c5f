package models

import "gorm.io/gorm"

type TeamLink struct {
	gorm.Model

	TeamNum int `gorm:"column:team_num;index"` // 所属队伍编号

	// 链接内容
	Icon        string `gorm:"column:icon"`        // 图标地址
	Title       string `gorm:"column:title"`       // 标题
	Description string `gorm:"column:description"` // 描述
	URL         string `gorm:"column:url"`         // 链接地址

	// 归属
	UID int `gorm:"column:uid"` // 写入链接的账号 ID ，-1 表示自动生成
}

func (TeamLink) TableName() string {
	return "frclink_links"
}
