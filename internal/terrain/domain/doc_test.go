package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestDoc_导出列优先结构(t *testing.T) {
	m := mustTerrain(t, "layout", MinWidth, MinHeight)
	m.SetTile(TileWater, 3, 4)

	doc := m.Doc()
	if doc.Name != "layout" {
		t.Fatalf("期望名字写入文档, got=%q", doc.Name)
	}
	if len(doc.TerrainFull) != MinWidth || len(doc.TerrainFull[0]) != MinHeight {
		t.Fatalf("期望外层是列, got=%dx%d", len(doc.TerrainFull), len(doc.TerrainFull[0]))
	}
	if doc.TerrainFull[3][4].Terrain != "WATER" {
		t.Fatalf("期望 [列][行] 取到 WATER, got=%q", doc.TerrainFull[3][4].Terrain)
	}
	if doc.Units == nil || len(doc.Units) != 0 {
		t.Fatalf("期望空单位列表序列化为空数组而非 null, got=%v", doc.Units)
	}
}

func TestDoc_JSON字段名固定(t *testing.T) {
	m := mustTerrain(t, "wire", MinWidth, MinHeight)
	m.AddUnit(Unit{X: 1, Y: 2, Faction: FactionPlayer, BattleClass: ClassInfantry})

	raw, err := json.Marshal(m.Doc())
	if err != nil {
		t.Fatalf("期望序列化成功, err=%v", err)
	}
	s := string(raw)
	for _, key := range []string{`"name"`, `"terrainFull"`, `"units"`, `{"terrain":"PLAIN"}`, `"battleClass":"INFANTRY"`, `"faction":"PLAYER"`} {
		if !strings.Contains(s, key) {
			t.Fatalf("期望 JSON 含 %s, got=%s", key, s)
		}
	}
}

func TestDoc_往返保持全部状态(t *testing.T) {
	m := mustTerrain(t, "roundtrip", MinWidth+3, MinHeight+1)
	m.SetTile(TileForest, 0, 0)
	m.SetTile(TileMountain, 17, 10)
	m.SetTile(TileFort, 7, 5)
	m.AddUnit(Unit{X: 2, Y: 3, Faction: FactionPlayer, BattleClass: ClassInfantry})
	m.AddUnit(Unit{X: 17, Y: 10, Faction: FactionEnemy, BattleClass: ClassFlier})
	m.AddUnit(Unit{X: 0, Y: 0, Faction: FactionNeutral, BattleClass: ClassMage})

	raw, err := json.Marshal(m.Doc())
	if err != nil {
		t.Fatalf("期望序列化成功, err=%v", err)
	}
	var doc Doc
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("期望反序列化成功, err=%v", err)
	}
	got, err := FromDoc(&doc)
	if err != nil {
		t.Fatalf("期望重建成功, err=%v", err)
	}
	if !got.Equal(m) {
		t.Fatalf("期望往返后与原地图完全一致")
	}
}

func TestFromDoc_未知标签返回InvalidDocument(t *testing.T) {
	valid := mustTerrain(t, "tags", MinWidth, MinHeight)
	valid.AddUnit(Unit{X: 1, Y: 1, Faction: FactionAlly, BattleClass: ClassArcher})

	t.Run("地形标签", func(t *testing.T) {
		doc := valid.Doc()
		doc.TerrainFull[2][2].Terrain = "LAVA"
		if _, err := FromDoc(doc); !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("期望 ErrInvalidDocument, got=%v", err)
		}
	})
	t.Run("阵营标签", func(t *testing.T) {
		doc := valid.Doc()
		doc.Units[0].Faction = "BANDIT"
		if _, err := FromDoc(doc); !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("期望 ErrInvalidDocument, got=%v", err)
		}
	})
	t.Run("兵种标签", func(t *testing.T) {
		doc := valid.Doc()
		doc.Units[0].BattleClass = "ninja"
		if _, err := FromDoc(doc); !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("期望 ErrInvalidDocument, got=%v", err)
		}
	})
	t.Run("空文档", func(t *testing.T) {
		if _, err := FromDoc(nil); !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("期望 ErrInvalidDocument, got=%v", err)
		}
	})
}

func TestFromDoc_几何不合法返回InvalidDimensions(t *testing.T) {
	valid := mustTerrain(t, "geometry", MinWidth, MinHeight)

	t.Run("列不等长", func(t *testing.T) {
		doc := valid.Doc()
		doc.TerrainFull[5] = doc.TerrainFull[5][:MinHeight-1]
		if _, err := FromDoc(doc); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("期望 ErrInvalidDimensions, got=%v", err)
		}
	})
	t.Run("宽度不足", func(t *testing.T) {
		doc := valid.Doc()
		doc.TerrainFull = doc.TerrainFull[:MinWidth-1]
		if _, err := FromDoc(doc); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("期望 ErrInvalidDimensions, got=%v", err)
		}
	})
	t.Run("高度不足", func(t *testing.T) {
		doc := valid.Doc()
		for x := range doc.TerrainFull {
			doc.TerrainFull[x] = doc.TerrainFull[x][:MinHeight-1]
		}
		if _, err := FromDoc(doc); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("期望 ErrInvalidDimensions, got=%v", err)
		}
	})
}
