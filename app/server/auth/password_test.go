package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 摘要格式必须与既有库中数据保持字节级兼容： sha256(密码 + ": " + 盐)
func TestHashPasswordCompatibility(t *testing.T) {
	assert.Equal(t,
		"b95d4d6020d46f75d89cbe5fd202ad3a6f8d579d596fdf0958b40e06f78bca24",
		HashPassword("correct horse", "00112233445566778899aabbccddeeff"),
	)
	assert.Equal(t,
		"a454462afb1579ef3a80260a03e4f1af65cc1152d5259171f4965a114e2bbcd8",
		HashPassword("password", "abc123"),
	)
}

func TestCreateHashAndSalt(t *testing.T) {
	passhash, salt, err := CreateHashAndSalt("hunter22hunter22")
	require.NoError(t, err)

	assert.Len(t, salt, 32) // 16 字节的十六进制
	assert.Len(t, passhash, 64)
	assert.Equal(t, HashPassword("hunter22hunter22", salt), passhash)
}

func TestVerify(t *testing.T) {
	passhash, salt, err := CreateHashAndSalt("my secret password")
	require.NoError(t, err)

	assert.True(t, Verify("my secret password", salt, passhash))
	assert.False(t, Verify("my secret passwore", salt, passhash))
	assert.False(t, Verify("my secret password", "othersalt", passhash))
}

func TestNewSaltUnique(t *testing.T) {
	a, err := NewSalt()
	require.NoError(t, err)
	b, err := NewSalt()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestNewRandomPassword(t *testing.T) {
	password, err := NewRandomPassword()
	require.NoError(t, err)

	assert.Len(t, password, 24) // 12 字节的十六进制
}
