package domain

import (
	"errors"
	"testing"
)

// captureSink 收集事件供断言用。
type captureSink struct {
	events []Event
}

func (c *captureSink) Record(e Event) {
	c.events = append(c.events, e)
}

func (c *captureSink) kinds() []EventKind {
	out := make([]EventKind, 0, len(c.events))
	for _, e := range c.events {
		out = append(out, e.Kind)
	}
	return out
}

func mustTerrain(t *testing.T, name string, width, height int) *Terrain {
	t.Helper()
	m, err := NewTerrain(name, width, height)
	if err != nil {
		t.Fatalf("期望创建成功, err=%v", err)
	}
	return m
}

func TestNewTerrain_尺寸不足返回InvalidDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"宽度不足", MinWidth - 1, MinHeight},
		{"高度不足", MinWidth, MinHeight - 1},
		{"全部不足", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewTerrain("bad", tc.width, tc.height)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Fatalf("期望 ErrInvalidDimensions, got=%v", err)
			}
			if m != nil {
				t.Fatalf("期望失败时不返回地图, got=%v", m)
			}
		})
	}
}

func TestNewTerrain_初始全平原且无单位(t *testing.T) {
	m := mustTerrain(t, "fresh", MinWidth, MinHeight)

	if m.Name() != "fresh" || m.Width() != MinWidth || m.Height() != MinHeight {
		t.Fatalf("期望名字与尺寸符合入参, got=%q %dx%d", m.Name(), m.Width(), m.Height())
	}
	for x := 0; x < m.Width(); x++ {
		for y := 0; y < m.Height(); y++ {
			tile, err := m.TileAt(x, y)
			if err != nil {
				t.Fatalf("期望界内读取成功, (%d,%d) err=%v", x, y, err)
			}
			if tile != TilePlain {
				t.Fatalf("期望初始全平原, (%d,%d)=%v", x, y, tile)
			}
		}
	}
	if m.UnitCount() != 0 {
		t.Fatalf("期望初始无单位, got=%d", m.UnitCount())
	}
}

func TestTileAt_越界返回OutOfBounds(t *testing.T) {
	m := mustTerrain(t, "bounds", MinWidth, MinHeight)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {MinWidth, 0}, {0, MinHeight}} {
		if _, err := m.TileAt(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("期望 (%d,%d) 返回 ErrOutOfBounds, got=%v", p[0], p[1], err)
		}
	}
}

func TestSetTile_写入与无操作语义(t *testing.T) {
	m := mustTerrain(t, "paint", MinWidth, MinHeight)
	sink := &captureSink{}
	m.SetEventSink(sink)

	if !m.SetTile(TileWater, 3, 4) {
		t.Fatalf("期望首次写入返回 true")
	}
	if tile, _ := m.TileAt(3, 4); tile != TileWater {
		t.Fatalf("期望 (3,4) 变为 WATER, got=%v", tile)
	}
	if m.SetTile(TileWater, 3, 4) {
		t.Fatalf("期望写入相同值返回 false")
	}
	if m.SetTile(TileForest, -1, 0) || m.SetTile(TileForest, 3, MinHeight) {
		t.Fatalf("期望越界写入返回 false")
	}

	if len(sink.events) != 1 {
		t.Fatalf("期望只有成功写入发事件, got=%v", sink.kinds())
	}
	e := sink.events[0]
	if e.Kind != EventTileSet || e.Map != "paint" || e.X != 3 || e.Y != 4 || e.Tile != "WATER" {
		t.Fatalf("期望 tile_set 事件携带坐标与标签, got=%+v", e)
	}
}

func TestAddUnit_越界与占位拒绝(t *testing.T) {
	m := mustTerrain(t, "recruit", MinWidth, MinHeight)
	sink := &captureSink{}
	m.SetEventSink(sink)

	u := Unit{X: 2, Y: 3, Faction: FactionPlayer, BattleClass: ClassInfantry}
	if !m.AddUnit(u) {
		t.Fatalf("期望界内空位添加成功")
	}
	if got, ok := m.UnitAt(2, 3); !ok || got != u {
		t.Fatalf("期望能读回刚添加的单位, got=%v ok=%v", got, ok)
	}

	rival := Unit{X: 2, Y: 3, Faction: FactionEnemy, BattleClass: ClassMage}
	if m.AddUnit(rival) {
		t.Fatalf("期望占位拒绝返回 false")
	}
	if m.AddUnit(Unit{X: MinWidth, Y: 0, Faction: FactionAlly, BattleClass: ClassFlier}) {
		t.Fatalf("期望越界添加返回 false")
	}
	if m.AddUnit(Unit{X: 0, Y: -1, Faction: FactionAlly, BattleClass: ClassFlier}) {
		t.Fatalf("期望负坐标添加返回 false")
	}

	if m.UnitCount() != 1 {
		t.Fatalf("期望只有 1 个单位入场, got=%d", m.UnitCount())
	}
	if len(sink.events) != 1 || sink.events[0].Kind != EventUnitAdded {
		t.Fatalf("期望只有成功添加发事件, got=%v", sink.kinds())
	}
}

func TestDeleteUnit_删除第一个匹配(t *testing.T) {
	first := Unit{X: 4, Y: 4, Faction: FactionPlayer, BattleClass: ClassArcher}
	second := Unit{X: 4, Y: 4, Faction: FactionEnemy, BattleClass: ClassMage}
	grid := make([][]Tile, MinWidth)
	for x := range grid {
		grid[x] = make([]Tile, MinHeight)
	}
	m, err := NewTerrainFromGrid("duel", grid, NewUnitListOf(first, second))
	if err != nil {
		t.Fatalf("期望构建成功, err=%v", err)
	}
	sink := &captureSink{}
	m.SetEventSink(sink)

	if !m.DeleteUnit(4, 4) {
		t.Fatalf("期望删除成功")
	}
	if got, ok := m.UnitAt(4, 4); !ok || got != second {
		t.Fatalf("期望删除最早加入者后剩 second, got=%v ok=%v", got, ok)
	}
	if m.DeleteUnit(9, 9) {
		t.Fatalf("期望空位置删除返回 false")
	}

	if len(sink.events) != 1 {
		t.Fatalf("期望只有成功删除发事件, got=%v", sink.kinds())
	}
	e := sink.events[0]
	if e.Kind != EventUnitRemoved || e.Faction != "PLAYER" || e.BattleClass != "ARCHER" {
		t.Fatalf("期望事件描述被删除的单位, got=%+v", e)
	}
}

func TestRename_改名并发事件(t *testing.T) {
	m := mustTerrain(t, "old", MinWidth, MinHeight)
	sink := &captureSink{}
	m.SetEventSink(sink)

	m.Rename("new")
	if m.Name() != "new" {
		t.Fatalf("期望改名生效, got=%q", m.Name())
	}
	m.Rename("new")
	m.Rename("")
	if m.Name() != "" {
		t.Fatalf("期望空名字也被接受, got=%q", m.Name())
	}

	if len(sink.events) != 2 {
		t.Fatalf("期望只有真实改名发事件, got=%v", sink.kinds())
	}
	if e := sink.events[0]; e.Kind != EventRenamed || e.Map != "new" || e.Detail != "old" {
		t.Fatalf("期望事件携带新旧名字, got=%+v", e)
	}
}

func TestResize_扩大时旧区保留新格平原(t *testing.T) {
	m := mustTerrain(t, "grow", MinWidth, MinHeight)
	m.SetTile(TileMountain, 14, 9)
	m.SetTile(TileRoad, 0, 0)

	if err := m.Resize(MinWidth+5, MinHeight+2); err != nil {
		t.Fatalf("期望扩大成功, err=%v", err)
	}
	if m.Width() != MinWidth+5 || m.Height() != MinHeight+2 {
		t.Fatalf("期望新尺寸生效, got=%dx%d", m.Width(), m.Height())
	}
	if tile, _ := m.TileAt(14, 9); tile != TileMountain {
		t.Fatalf("期望重叠区保留原值, got=%v", tile)
	}
	if tile, _ := m.TileAt(0, 0); tile != TileRoad {
		t.Fatalf("期望重叠区保留原值, got=%v", tile)
	}
	if tile, _ := m.TileAt(MinWidth+4, MinHeight+1); tile != TilePlain {
		t.Fatalf("期望新增格子为平原, got=%v", tile)
	}
}

func TestResize_缩小修剪越界单位并保序(t *testing.T) {
	m := mustTerrain(t, "shrink", MinWidth, MinHeight+2)
	inside := Unit{X: 2, Y: 3, Faction: FactionPlayer, BattleClass: ClassInfantry}
	doomed := Unit{X: 3, Y: MinHeight + 1, Faction: FactionEnemy, BattleClass: ClassCavalry}
	m.AddUnit(inside)
	m.AddUnit(doomed)
	sink := &captureSink{}
	m.SetEventSink(sink)

	if err := m.Resize(MinWidth, MinHeight); err != nil {
		t.Fatalf("期望缩小到最小尺寸成功, err=%v", err)
	}
	units := m.Units()
	if len(units) != 1 || units[0] != inside {
		t.Fatalf("期望只剩界内单位, got=%v", units)
	}
	// 被腾出来的格子立即可编辑
	if !m.SetTile(TileWater, 3, 4) {
		t.Fatalf("期望缩小后地图照常可编辑")
	}

	kinds := sink.kinds()
	if len(kinds) != 3 || kinds[0] != EventResized || kinds[1] != EventUnitPruned || kinds[2] != EventTileSet {
		t.Fatalf("期望事件序列 [resized unit_pruned tile_set], got=%v", kinds)
	}
	pruned := sink.events[1]
	if pruned.X != doomed.X || pruned.Y != doomed.Y || pruned.Faction != "ENEMY" {
		t.Fatalf("期望修剪事件描述被移除的单位, got=%+v", pruned)
	}
}

func TestResize_尺寸不足时状态不变(t *testing.T) {
	m := mustTerrain(t, "stable", MinWidth, MinHeight+2)
	m.SetTile(TileFort, 5, 11)
	m.AddUnit(Unit{X: 3, Y: 11, Faction: FactionAlly, BattleClass: ClassArmored})
	want := mustTerrain(t, "stable", MinWidth, MinHeight+2)
	want.SetTile(TileFort, 5, 11)
	want.AddUnit(Unit{X: 3, Y: 11, Faction: FactionAlly, BattleClass: ClassArmored})
	sink := &captureSink{}
	m.SetEventSink(sink)

	if err := m.Resize(MinWidth, 4); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("期望 ErrInvalidDimensions, got=%v", err)
	}
	if !m.Equal(want) {
		t.Fatalf("期望失败的 resize 不改动任何状态")
	}
	if len(sink.events) != 0 {
		t.Fatalf("期望失败的 resize 不发事件, got=%v", sink.kinds())
	}
}

func TestSetEventSink_nil恢复为丢弃(t *testing.T) {
	m := mustTerrain(t, "quiet", MinWidth, MinHeight)
	m.SetEventSink(nil)
	if !m.SetTile(TileForest, 1, 1) {
		t.Fatalf("期望注入 nil 后修改照常工作")
	}
}

func TestEqual_比较全部状态(t *testing.T) {
	base := func() *Terrain {
		m := mustTerrain(t, "twin", MinWidth, MinHeight)
		m.SetTile(TileWater, 1, 2)
		m.AddUnit(Unit{X: 0, Y: 0, Faction: FactionPlayer, BattleClass: ClassInfantry})
		return m
	}

	if a, b := base(), base(); !a.Equal(b) {
		t.Fatalf("期望同构地图相等")
	}

	renamed := base()
	renamed.Rename("other")
	if base().Equal(renamed) {
		t.Fatalf("期望名字不同不相等")
	}

	repainted := base()
	repainted.SetTile(TileFort, 8, 8)
	if base().Equal(repainted) {
		t.Fatalf("期望地形不同不相等")
	}

	reinforced := base()
	reinforced.AddUnit(Unit{X: 9, Y: 9, Faction: FactionEnemy, BattleClass: ClassMage})
	if base().Equal(reinforced) {
		t.Fatalf("期望单位不同不相等")
	}

	var nilMap *Terrain
	if base().Equal(nilMap) {
		t.Fatalf("期望与 nil 不相等")
	}
}
