package ws

import (
	"sync"

	"MapForge/modules/kit/logx"
)

// Hub 维护全部订阅连接，并向它们广播推送消息。
type Hub struct {
	mu    sync.RWMutex
	conns map[*Conn]struct{}
	log   logx.Logger
}

func NewHub(l logx.Logger) *Hub {
	if l == nil {
		l = logx.NewZapLogger(nil)
	}
	return &Hub{
		conns: make(map[*Conn]struct{}),
		log:   l,
	}
}

// Attach 接管连接：启动收发循环，并在连接结束后自动摘除。
func (h *Hub) Attach(c *Conn) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()

	c.Run()
	go func() {
		<-c.Done()
		h.mu.Lock()
		delete(h.conns, c)
		h.mu.Unlock()
	}()
}

// Broadcast 把消息推给当前全部连接。
func (h *Hub) Broadcast(name string, data any) {
	h.mu.RLock()
	targets := make([]*Conn, 0, len(h.conns))
	for c := range h.conns {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		c.Push(name, data)
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

func (h *Hub) Close() {
	h.mu.Lock()
	targets := make([]*Conn, 0, len(h.conns))
	for c := range h.conns {
		targets = append(targets, c)
	}
	h.conns = make(map[*Conn]struct{})
	h.mu.Unlock()

	for _, c := range targets {
		c.Close()
	}
}
