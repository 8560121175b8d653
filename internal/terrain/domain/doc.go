package domain

// Doc 是地图的存档文档，三种存储后端共用同一份结构。
// terrainFull 外层是列（和内存布局一致），units 保持插入序。
type Doc struct {
	Name        string      `json:"name"`
	TerrainFull [][]TileDoc `json:"terrainFull"`
	Units       []UnitDoc   `json:"units"`
}

type TileDoc struct {
	Terrain string `json:"terrain"`
}

type UnitDoc struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Faction     string `json:"faction"`
	BattleClass string `json:"battleClass"`
}

// Doc 导出当前状态的存档文档。
func (t *Terrain) Doc() *Doc {
	cols := make([][]TileDoc, t.width)
	for x := 0; x < t.width; x++ {
		col := make([]TileDoc, t.height)
		for y := 0; y < t.height; y++ {
			col[y] = TileDoc{Terrain: t.tiles[t.index(x, y)].String()}
		}
		cols[x] = col
	}
	units := make([]UnitDoc, 0, t.units.Len())
	for _, u := range t.units.Units() {
		units = append(units, UnitDoc{
			X:           u.X,
			Y:           u.Y,
			Faction:     u.Faction.String(),
			BattleClass: u.BattleClass.String(),
		})
	}
	return &Doc{
		Name:        t.name,
		TerrainFull: cols,
		Units:       units,
	}
}

// FromDoc 从存档文档重建地图。
// 未知标签返回 ErrInvalidDocument，几何不合法（尺寸不足、列不等长）返回 ErrInvalidDimensions。
func FromDoc(d *Doc) (*Terrain, error) {
	if d == nil {
		return nil, ErrInvalidDocument.WithData("doc", "nil")
	}
	grid := make([][]Tile, len(d.TerrainFull))
	for x, colDoc := range d.TerrainFull {
		col := make([]Tile, len(colDoc))
		for y, cell := range colDoc {
			tile, err := ParseTile(cell.Terrain)
			if err != nil {
				return nil, err
			}
			col[y] = tile
		}
		grid[x] = col
	}
	units := NewUnitList()
	for _, ud := range d.Units {
		faction, err := ParseFaction(ud.Faction)
		if err != nil {
			return nil, err
		}
		class, err := ParseBattleClass(ud.BattleClass)
		if err != nil {
			return nil, err
		}
		units.Add(Unit{X: ud.X, Y: ud.Y, Faction: faction, BattleClass: class})
	}
	return NewTerrainFromGrid(d.Name, grid, units)
}
