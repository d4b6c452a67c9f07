package repository

import (
	"context"
	"sync"
	"time"

	"github.com/variablekhai/uum-timetable-planner/internal/model"
)

// SelectionStore 规划会话选课暂存接口
//
// 选课状态是临时的：以规划会话 ID 为键，带 TTL，过期即消失，
// 不做跨会话持久化。冲突判定要求读到一致快照，因此 Get 返回
// 的切片是独立副本，调用方修改后需整体 Save 写回。
type SelectionStore interface {
	// Get 读取当前选课快照；会话不存在时返回空切片
	Get(ctx context.Context, sessionID string) ([]model.SelectedSession, error)
	// Save 整体写回选课列表并刷新 TTL
	Save(ctx context.Context, sessionID string, sessions []model.SelectedSession) error
	// Clear 清空会话选课
	Clear(ctx context.Context, sessionID string) error
}

// ── 内存实现（Redis 不可用时的降级路径，亦用于测试） ──

type memoryEntry struct {
	sessions []model.SelectedSession
	deadline time.Time
}

type memorySelectionStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// NewMemorySelectionStore 创建内存选课暂存
func NewMemorySelectionStore(ttl time.Duration) SelectionStore {
	return &memorySelectionStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (m *memorySelectionStore) Get(_ context.Context, sessionID string) ([]model.SelectedSession, error) {
	m.mu.RLock()
	entry, ok := m.entries[sessionID]
	m.mu.RUnlock()

	if !ok || time.Now().After(entry.deadline) {
		return []model.SelectedSession{}, nil
	}

	snapshot := make([]model.SelectedSession, len(entry.sessions))
	copy(snapshot, entry.sessions)
	return snapshot, nil
}

func (m *memorySelectionStore) Save(_ context.Context, sessionID string, sessions []model.SelectedSession) error {
	stored := make([]model.SelectedSession, len(sessions))
	copy(stored, sessions)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[sessionID] = memoryEntry{
		sessions: stored,
		deadline: time.Now().Add(m.ttl),
	}

	// 顺带清理已过期会话，避免长期运行下无限增长
	now := time.Now()
	for id, e := range m.entries {
		if now.After(e.deadline) {
			delete(m.entries, id)
		}
	}
	return nil
}

func (m *memorySelectionStore) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, sessionID)
	return nil
}
