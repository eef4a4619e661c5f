package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// 密码以 sha256(密码 + ": " + 盐) 的十六进制形式存储，盐为 16 个随机字节的十六进制。
// 注意：这是与现有库中数据兼容的格式，换成其他 KDF 会导致所有已存摘要失效。

const saltBytes = 16

func NewSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func HashPassword(password string, salt string) string {
	sum := sha256.Sum256([]byte(password + ": " + salt))
	return hex.EncodeToString(sum[:])
}

// CreateHashAndSalt 为新密码生成随机盐并计算摘要
func CreateHashAndSalt(password string) (passhash string, salt string, err error) {
	if salt, err = NewSalt(); err != nil {
		return "", "", err
	}
	return HashPassword(password, salt), salt, nil
}

func Verify(password string, salt string, passhash string) bool {
	return HashPassword(password, salt) == passhash
}
