package domain

import "time"

// 画布最小尺寸，构造与 resize 都会校验。
const (
	MinWidth  = 15
	MinHeight = 10
)

// Terrain 是一张可编辑的战棋地图：名字 + 地形网格 + 场上单位。
//
// 约束：
// - 网格列优先寻址：x 是列（0 <= x < width），y 是行（0 <= y < height）
// - 非并发安全，由调用方（编辑器服务）负责互斥
type Terrain struct {
	name   string
	width  int
	height int
	tiles  []Tile // 列优先平铺：tiles[x*height+y]
	units  *UnitList
	sink   Sink
}

// NewTerrain 创建一张全平原的空地图。
func NewTerrain(name string, width, height int) (*Terrain, error) {
	if width < MinWidth || height < MinHeight {
		return nil, ErrInvalidDimensions.WithData("width", width).WithData("height", height)
	}
	return &Terrain{
		name:   name,
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height), // 零值即 PLAIN
		units:  NewUnitList(),
		sink:   NopSink{},
	}, nil
}

// NewTerrainFromGrid 接管一份现成的网格（外层是列）与单位列表。
// 只校验几何：宽高不低于最小值、每列等长；单位内容不做校验，调用方自行负责。
func NewTerrainFromGrid(name string, grid [][]Tile, units *UnitList) (*Terrain, error) {
	width := len(grid)
	if width < MinWidth {
		return nil, ErrInvalidDimensions.WithData("width", width)
	}
	height := len(grid[0])
	if height < MinHeight {
		return nil, ErrInvalidDimensions.WithData("height", height)
	}
	tiles := make([]Tile, width*height)
	for x, col := range grid {
		if len(col) != height {
			return nil, ErrInvalidDimensions.WithData("column", x).WithData("len", len(col))
		}
		copy(tiles[x*height:(x+1)*height], col)
	}
	if units == nil {
		units = NewUnitList()
	}
	return &Terrain{
		name:   name,
		width:  width,
		height: height,
		tiles:  tiles,
		units:  units,
		sink:   NopSink{},
	}, nil
}

// SetEventSink 注入事件接收器；传 nil 恢复为丢弃。
func (t *Terrain) SetEventSink(s Sink) {
	if s == nil {
		s = NopSink{}
	}
	t.sink = s
}

func (t *Terrain) Name() string {
	return t.name
}

func (t *Terrain) Width() int {
	return t.width
}

func (t *Terrain) Height() int {
	return t.height
}

func (t *Terrain) inBounds(x, y int) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

func (t *Terrain) index(x, y int) int {
	return x*t.height + y
}

// TileAt 返回坐标上的地形；越界返回 ErrOutOfBounds。
func (t *Terrain) TileAt(x, y int) (Tile, error) {
	if !t.inBounds(x, y) {
		return TilePlain, ErrOutOfBounds.WithData("x", x).WithData("y", y)
	}
	return t.tiles[t.index(x, y)], nil
}

// UnitAt 返回坐标上的第一个单位。
func (t *Terrain) UnitAt(x, y int) (Unit, bool) {
	return t.units.UnitAt(x, y)
}

// Units 返回插入序快照；修改返回值不影响地图。
func (t *Terrain) Units() []Unit {
	return t.units.Units()
}

func (t *Terrain) UnitCount() int {
	return t.units.Len()
}

// SetTile 把 (x, y) 改成 tile。越界、或与当前值相同（no-op）返回 false。
func (t *Terrain) SetTile(tile Tile, x, y int) bool {
	if !t.inBounds(x, y) {
		return false
	}
	i := t.index(x, y)
	if t.tiles[i] == tile {
		return false
	}
	t.tiles[i] = tile
	t.sink.Record(Event{
		Kind: EventTileSet,
		Map:  t.name,
		At:   time.Now(),
		X:    x,
		Y:    y,
		Tile: tile.String(),
	})
	return true
}

// AddUnit 把单位放进地图。越界或该格已被占用返回 false。
func (t *Terrain) AddUnit(u Unit) bool {
	if !t.inBounds(u.X, u.Y) {
		return false
	}
	if t.units.Occupied(u.X, u.Y) {
		return false
	}
	t.units.Add(u)
	t.sink.Record(Event{
		Kind:        EventUnitAdded,
		Map:         t.name,
		At:          time.Now(),
		X:           u.X,
		Y:           u.Y,
		Faction:     u.Faction.String(),
		BattleClass: u.BattleClass.String(),
	})
	return true
}

// DeleteUnit 删除 (x, y) 上的第一个单位；没有则返回 false。
func (t *Terrain) DeleteUnit(x, y int) bool {
	u, ok := t.units.RemoveAt(x, y)
	if !ok {
		return false
	}
	t.sink.Record(Event{
		Kind:        EventUnitRemoved,
		Map:         t.name,
		At:          time.Now(),
		X:           x,
		Y:           y,
		Faction:     u.Faction.String(),
		BattleClass: u.BattleClass.String(),
	})
	return true
}

// Rename 改名，不校验新名字内容；同名调用是 no-op。
func (t *Terrain) Rename(newName string) {
	if newName == t.name {
		return
	}
	old := t.name
	t.name = newName
	t.sink.Record(Event{
		Kind:   EventRenamed,
		Map:    newName,
		At:     time.Now(),
		Detail: old,
	})
}

// Resize 重建网格：重叠矩形保留原值，其余格子填平原，越界单位被移除（保序）。
// 尺寸低于最小值返回 ErrInvalidDimensions 且地图完全不变。
func (t *Terrain) Resize(width, height int) error {
	if width < MinWidth || height < MinHeight {
		return ErrInvalidDimensions.WithData("width", width).WithData("height", height)
	}
	next := make([]Tile, width*height)
	copyW := min(t.width, width)
	copyH := min(t.height, height)
	for x := 0; x < copyW; x++ {
		copy(next[x*height:x*height+copyH], t.tiles[x*t.height:x*t.height+copyH])
	}
	t.width = width
	t.height = height
	t.tiles = next

	t.sink.Record(Event{
		Kind:   EventResized,
		Map:    t.name,
		At:     time.Now(),
		Width:  width,
		Height: height,
	})
	for _, u := range t.units.prune(width, height) {
		t.sink.Record(Event{
			Kind:        EventUnitPruned,
			Map:         t.name,
			At:          time.Now(),
			X:           u.X,
			Y:           u.Y,
			Faction:     u.Faction.String(),
			BattleClass: u.BattleClass.String(),
		})
	}
	return nil
}

// Equal 比较全部状态：名字、尺寸、每一格地形、单位及其顺序。
func (t *Terrain) Equal(o *Terrain) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.name != o.name || t.width != o.width || t.height != o.height {
		return false
	}
	for i := range t.tiles {
		if t.tiles[i] != o.tiles[i] {
			return false
		}
	}
	return t.units.Equal(o.units)
}
