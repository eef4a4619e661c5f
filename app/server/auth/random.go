package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewRandomPassword 生成 12 个随机字节的十六进制密码，用于首次创建系统管理员
func NewRandomPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
