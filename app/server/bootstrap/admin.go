package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"frc-link/app/server/auth"
	"frc-link/app/server/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EnsureSystemAdmin 保证永久系统管理员账号（ team_num = 0 ）存在，幂等，可在每次启动时调用。
// 已存在且配置了密码覆盖时原地轮换凭据；首次创建且未配置密码时生成随机密码，
// 并以明文打印一次（之后无法再取回）。
func EnsureSystemAdmin(ctx context.Context, db *gorm.DB, l *zap.Logger, email string, passwordOverride string) error {
	var admin models.User
	err := db.WithContext(ctx).Where("team_num = 0 AND is_admin = ?", true).Order("id ASC").First(&admin).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to find system admin: %w", err)
	}

	// 已存在：只有显式配置了密码覆盖才轮换，否则不做任何改动
	if err == nil {
		if passwordOverride == "" {
			return nil
		}

		passhash, salt, err := auth.CreateHashAndSalt(passwordOverride)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		if err := db.WithContext(ctx).Model(&admin).Updates(map[string]interface{}{
			"email":    email,
			"passhash": passhash,
			"salt":     salt,
		}).Error; err != nil {
			return fmt.Errorf("failed to rotate system admin credentials: %w", err)
		}

		l.Info("system admin credentials rotated from configuration", zap.Uint("uid", admin.ID))
		return nil
	}

	// 不存在：创建，密码优先取配置，否则随机生成
	password := passwordOverride
	generated := false
	if password == "" {
		if password, err = auth.NewRandomPassword(); err != nil {
			return fmt.Errorf("failed to generate admin password: %w", err)
		}
		generated = true
	}

	passhash, salt, err := auth.CreateHashAndSalt(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if err := db.WithContext(ctx).Create(&models.User{
		TeamNum:  0,
		Email:    email,
		Passhash: passhash,
		Salt:     salt,
		IsAdmin:  true,
	}).Error; err != nil {
		return fmt.Errorf("failed to create system admin: %w", err)
	}

	if generated {
		// 唯一一次明文展示，之后只有摘要
		l.Info("system admin created",
			zap.String("email", email),
			zap.String("password", password),
			zap.String("notice", "store this securely; it will not be shown again"),
		)
	} else {
		l.Info("system admin created with configured credentials", zap.String("email", email))
	}

	return nil
}
