package model

import (
	"encoding/json"
	"time"

	"MapForge/internal/terrain/domain"
)

// model
type TerrainRow struct {
	Name      string    `gorm:"column:name;type:varchar(255);comment:地图名;primaryKey;not null;" json:"name"`            // 地图名
	Width     int       `gorm:"column:width;type:int UNSIGNED;comment:画布宽;not null;" json:"width"`                      // 画布宽
	Height    int       `gorm:"column:height;type:int UNSIGNED;comment:画布高;not null;" json:"height"`                    // 画布高
	Payload   string    `gorm:"column:payload;type:longtext;comment:完整存档JSON;not null;" json:"payload"`                 // 完整存档JSON
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;" json:"updated_at"`
}

func (m *TerrainRow) TableName() string {
	return "terrain_map"
}

// TerrainRowFromDoc 把存档文档打包成一行：结构化列方便查询，payload 保真。
func TerrainRowFromDoc(d *domain.Doc) (*TerrainRow, error) {
	payload, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return &TerrainRow{
		Name:    d.Name,
		Width:   len(d.TerrainFull),
		Height:  docHeight(d),
		Payload: string(payload),
	}, nil
}

// ToDoc 从 payload 还原存档文档。
func (m *TerrainRow) ToDoc() (*domain.Doc, error) {
	var d domain.Doc
	if err := json.Unmarshal([]byte(m.Payload), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func docHeight(d *domain.Doc) int {
	if len(d.TerrainFull) == 0 {
		return 0
	}
	return len(d.TerrainFull[0])
}
