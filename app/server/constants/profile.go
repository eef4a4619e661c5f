package constants

const (
	// 新建队伍资料时的默认配色
	DefaultPrimaryCol   = "#00c3ff"
	DefaultSecondaryCol = "#111111"
)

const (
	// 账号校验规则
	EmailPattern      = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	PasswordMinLength = 8
)
