package domain

import "fmt"

// Tile 表示一格地形的种类（封闭枚举）。
type Tile uint8

// Tile 零值即 TilePlain：新建网格天然全平原。
const (
	TilePlain Tile = iota
	TileForest
	TileMountain
	TileWater
	TileRoad
	TileFort
)

// tileTags 是序列化标签，属于对外契约；新增种类必须同步补充。
var tileTags = [...]string{
	TilePlain:    "PLAIN",
	TileForest:   "FOREST",
	TileMountain: "MOUNTAIN",
	TileWater:    "WATER",
	TileRoad:     "ROAD",
	TileFort:     "FORT",
}

func (t Tile) String() string {
	if int(t) < len(tileTags) {
		return tileTags[t]
	}
	return fmt.Sprintf("Tile(%d)", uint8(t))
}

// ParseTile 把序列化标签还原成 Tile；未知标签返回 ErrInvalidDocument。
func ParseTile(tag string) (Tile, error) {
	for i, s := range tileTags {
		if s == tag {
			return Tile(i), nil
		}
	}
	return TilePlain, ErrInvalidDocument.WithData("terrain", tag)
}
