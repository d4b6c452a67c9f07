package repository

import (
	"context"
	"time"

	"github.com/variablekhai/uum-timetable-planner/internal/model"
	"github.com/variablekhai/uum-timetable-planner/pkg/redis"
)

const selectionKeyPrefix = "planner:selection:"

// redisSelectionStore Redis 实现：选课列表以 JSON 存储，TTL 即会话生命周期
type redisSelectionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisSelectionStore 创建 Redis 选课暂存
func NewRedisSelectionStore(rdb *redis.Client, ttl time.Duration) SelectionStore {
	return &redisSelectionStore{rdb: rdb, ttl: ttl}
}

func (s *redisSelectionStore) Get(ctx context.Context, sessionID string) ([]model.SelectedSession, error) {
	var sessions []model.SelectedSession
	found, err := s.rdb.GetJSON(ctx, selectionKeyPrefix+sessionID, &sessions)
	if err != nil {
		return nil, err
	}
	if !found {
		return []model.SelectedSession{}, nil
	}
	return sessions, nil
}

func (s *redisSelectionStore) Save(ctx context.Context, sessionID string, sessions []model.SelectedSession) error {
	return s.rdb.SetJSON(ctx, selectionKeyPrefix+sessionID, sessions, s.ttl)
}

func (s *redisSelectionStore) Clear(ctx context.Context, sessionID string) error {
	return s.rdb.Delete(ctx, selectionKeyPrefix+sessionID)
}
