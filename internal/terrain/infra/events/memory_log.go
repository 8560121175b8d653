package events

import (
	"sync"

	"MapForge/internal/terrain/domain"
)

const defaultMemoryLogLimit = 256

// MemoryLog 是有界的事件环：只保留最近 limit 条，供查询接口回放。
// 写入方持有编辑器的互斥锁，但 Snapshot 会被 HTTP 并发调用，所以自带锁。
type MemoryLog struct {
	mu    sync.Mutex
	limit int
	buf   []domain.Event
	next  int
	full  bool
}

func NewMemoryLog(limit int) *MemoryLog {
	if limit <= 0 {
		limit = defaultMemoryLogLimit
	}
	return &MemoryLog{
		limit: limit,
		buf:   make([]domain.Event, limit),
	}
}

func (l *MemoryLog) Record(e domain.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.buf[l.next] = e
	l.next++
	if l.next == l.limit {
		l.next = 0
		l.full = true
	}
}

// Snapshot 返回从旧到新的事件副本。
func (l *MemoryLog) Snapshot() []domain.Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.full {
		out := make([]domain.Event, l.next)
		copy(out, l.buf[:l.next])
		return out
	}
	out := make([]domain.Event, 0, l.limit)
	out = append(out, l.buf[l.next:]...)
	out = append(out, l.buf[:l.next]...)
	return out
}
