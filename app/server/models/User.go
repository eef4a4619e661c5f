package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	// 账号基础信息
	TeamNum int    `gorm:"column:team_num;index"`    // 队伍编号，管理员固定为 0
	Email   string `gorm:"column:email;uniqueIndex"` // 邮箱，全局唯一，作为登录标识

	// 登录认证相关
	Passhash string `gorm:"column:passhash"` // 密码摘要， sha256(密码 + ": " + 盐) 的十六进制
	Salt     string `gorm:"column:salt"`     // 每账号独立的随机盐
	IsAdmin  bool   `gorm:"column:is_admin"` // 是否为管理员：管理员可以管理全部队伍和账号
}

func (User) TableName() string {
	return "frclink_users"
}

// CreatedThisYear 判断账号在当前赛季（自然年）内是否有效，管理员不受赛季限制
func (u *User) CreatedThisYear(now time.Time) bool {
	if u.IsAdmin {
		return true
	}
	return u.CreatedAt.Year() == now.Year()
}
