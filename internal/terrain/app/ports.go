package app

import (
	"context"

	"MapForge/internal/terrain/domain"
)

// TerrainRepo 是地图存储端口，file/mysql/mongodb 三种后端各自实现。
// 未找到统一返回 domain.ErrTerrainNotFound（用 errors.Is 判断），
// 其余错误视为存储故障，由应用层包装成系统错误。
type TerrainRepo interface {
	Load(ctx context.Context, name string) (*domain.Doc, error)
	Save(ctx context.Context, doc *domain.Doc) error
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
}
