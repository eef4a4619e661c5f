package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"frc-link/app/server/constants"
	"frc-link/app/server/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("session not found")

// Session 是会话令牌解析出的授权范围，本身不是权限的最终依据，只用于定位账号
type Session struct {
	UID     uint `json:"uid"`      // 账号 ID
	TeamNum int  `json:"team_num"` // 授权的队伍编号，管理员为 0
	IsAdmin bool `json:"is_admin"` // 是否为管理员
}

type Store struct {
	rdb *redis.Client
	l   *zap.Logger
}

func NewStore(rdb *redis.Client, l *zap.Logger) *Store {
	return &Store{
		rdb: rdb,
		l:   l,
	}
}

// Create 为账号签发一个不透明的会话令牌，七天过期
func (s *Store) Create(ctx context.Context, user *models.User) (string, error) {
	token := uuid.NewString()

	sessionBytes, err := json.Marshal(&Session{
		UID:     user.ID,
		TeamNum: user.TeamNum,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	cacheKey := fmt.Sprintf(constants.SessionCacheKey, token)
	if err := s.rdb.Set(ctx, cacheKey, sessionBytes, constants.SessionDuration).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

func (s *Store) Get(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	cacheKey := fmt.Sprintf(constants.SessionCacheKey, token)
	sessionBytes, err := s.rdb.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(sessionBytes, &session); err != nil {
		// 无效的缓存内容，清理掉
		s.l.Error("failed to unmarshal session", zap.ByteString("sessionBytes", sessionBytes), zap.Error(err))
		s.rdb.Del(ctx, cacheKey)
		return nil, ErrNotFound
	}

	return &session, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	cacheKey := fmt.Sprintf(constants.SessionCacheKey, token)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
