package model

import (
	"time"

	"MapForge/internal/terrain/domain"
)

// model
type TerrainDoc struct {
	Name        string          `bson:"_id"`
	Width       int             `bson:"width"`
	Height      int             `bson:"height"`
	TerrainFull [][]TerrainCell `bson:"terrainFull"`
	Units       []UnitCell      `bson:"units"`
	UpdatedAt   time.Time       `bson:"updated_at"`
}

type TerrainCell struct {
	Terrain string `bson:"terrain"`
}

type UnitCell struct {
	X           int    `bson:"x"`
	Y           int    `bson:"y"`
	Faction     string `bson:"faction"`
	BattleClass string `bson:"battleClass"`
}

// TerrainDocFromDomain 把存档文档转成 mongo 文档（_id 就是地图名）。
func TerrainDocFromDomain(d *domain.Doc) *TerrainDoc {
	cols := make([][]TerrainCell, len(d.TerrainFull))
	for x, col := range d.TerrainFull {
		cells := make([]TerrainCell, len(col))
		for y, cell := range col {
			cells[y] = TerrainCell{Terrain: cell.Terrain}
		}
		cols[x] = cells
	}
	units := make([]UnitCell, len(d.Units))
	for i, u := range d.Units {
		units[i] = UnitCell{X: u.X, Y: u.Y, Faction: u.Faction, BattleClass: u.BattleClass}
	}
	return &TerrainDoc{
		Name:        d.Name,
		Width:       len(d.TerrainFull),
		Height:      docHeight(d),
		TerrainFull: cols,
		Units:       units,
	}
}

// ToDomain 还原存档文档。
func (m *TerrainDoc) ToDomain() *domain.Doc {
	cols := make([][]domain.TileDoc, len(m.TerrainFull))
	for x, col := range m.TerrainFull {
		cells := make([]domain.TileDoc, len(col))
		for y, cell := range col {
			cells[y] = domain.TileDoc{Terrain: cell.Terrain}
		}
		cols[x] = cells
	}
	units := make([]domain.UnitDoc, len(m.Units))
	for i, u := range m.Units {
		units[i] = domain.UnitDoc{X: u.X, Y: u.Y, Faction: u.Faction, BattleClass: u.BattleClass}
	}
	return &domain.Doc{
		Name:        m.Name,
		TerrainFull: cols,
		Units:       units,
	}
}
