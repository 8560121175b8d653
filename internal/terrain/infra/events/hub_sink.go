package events

import (
	"MapForge/internal/shared/transport/ws"
	"MapForge/internal/terrain/domain"
)

const eventPushName = "editor.event"

// HubSink 把事件推给 websocket 订阅者。
// 推送是非阻塞的：慢消费者由连接层自己踢掉，编辑路径不受影响。
type HubSink struct {
	hub *ws.Hub
}

func NewHubSink(hub *ws.Hub) *HubSink {
	return &HubSink{hub: hub}
}

func (s *HubSink) Record(e domain.Event) {
	s.hub.Broadcast(eventPushName, e)
}
