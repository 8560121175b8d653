package events

import (
	"testing"

	"MapForge/internal/terrain/domain"
)

func event(kind domain.EventKind, name string) domain.Event {
	return domain.Event{Kind: kind, Map: name}
}

func TestMemoryLog_未满时按写入序返回(t *testing.T) {
	l := NewMemoryLog(4)
	l.Record(event(domain.EventMapCreated, "a"))
	l.Record(event(domain.EventTileSet, "a"))

	got := l.Snapshot()
	if len(got) != 2 {
		t.Fatalf("期望 2 条事件, got=%d", len(got))
	}
	if got[0].Kind != domain.EventMapCreated || got[1].Kind != domain.EventTileSet {
		t.Fatalf("期望从旧到新, got=%v", got)
	}
}

func TestMemoryLog_溢出时丢弃最旧(t *testing.T) {
	l := NewMemoryLog(3)
	for _, name := range []string{"1", "2", "3", "4", "5"} {
		l.Record(event(domain.EventTileSet, name))
	}

	got := l.Snapshot()
	if len(got) != 3 {
		t.Fatalf("期望只保留 3 条, got=%d", len(got))
	}
	for i, want := range []string{"3", "4", "5"} {
		if got[i].Map != want {
			t.Fatalf("期望保留最近的 [3 4 5], got[%d]=%q", i, got[i].Map)
		}
	}
}

func TestMemoryLog_Snapshot是副本(t *testing.T) {
	l := NewMemoryLog(4)
	l.Record(event(domain.EventMapCreated, "a"))

	snap := l.Snapshot()
	snap[0].Map = "tampered"

	if got := l.Snapshot(); got[0].Map != "a" {
		t.Fatalf("期望修改快照不影响环内数据, got=%q", got[0].Map)
	}
}

func TestMultiSink_按顺序分发(t *testing.T) {
	var first, second []domain.Event
	a := sinkFunc(func(e domain.Event) { first = append(first, e) })
	b := sinkFunc(func(e domain.Event) { second = append(second, e) })

	s := NewMultiSink(a, b)
	s.Record(event(domain.EventMapSaved, "x"))

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("期望两个下游都收到事件, first=%d second=%d", len(first), len(second))
	}
}

type sinkFunc func(domain.Event)

func (f sinkFunc) Record(e domain.Event) { f(e) }
