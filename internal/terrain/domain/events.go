package domain

import "time"

// EventKind 标识一次编辑动作。
type EventKind string

const (
	// 编辑器会话生命周期（由应用层发出）。
	EventMapCreated EventKind = "map_created"
	EventMapOpened  EventKind = "map_opened"
	EventMapSaved   EventKind = "map_saved"
	EventMapClosed  EventKind = "map_closed"
	EventMapDeleted EventKind = "map_deleted"

	// 聚合内的编辑动作（仅在变更真实发生时发出，no-op 不发）。
	EventRenamed     EventKind = "renamed"
	EventResized     EventKind = "resized"
	EventTileSet     EventKind = "tile_set"
	EventUnitAdded   EventKind = "unit_added"
	EventUnitRemoved EventKind = "unit_removed"
	EventUnitPruned  EventKind = "unit_pruned"
)

// Event 是一次编辑动作的记录，只填与动作相关的字段。
// renamed 的 Map 是新名字，Detail 是旧名字。
type Event struct {
	Kind        EventKind `json:"kind"`
	Map         string    `json:"map"`
	At          time.Time `json:"at"`
	X           int       `json:"x"`
	Y           int       `json:"y"`
	Tile        string    `json:"tile,omitempty"`
	Faction     string    `json:"faction,omitempty"`
	BattleClass string    `json:"battleClass,omitempty"`
	Width       int       `json:"width,omitempty"`
	Height      int       `json:"height,omitempty"`
	Detail      string    `json:"detail,omitempty"`
}

// Sink 接收编辑事件。实现不得阻塞调用方：聚合在编辑路径上同步发事件。
type Sink interface {
	Record(e Event)
}

// NopSink 丢弃所有事件。
type NopSink struct{}

func (NopSink) Record(Event) {}
