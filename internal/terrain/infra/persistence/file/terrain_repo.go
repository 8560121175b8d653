package file

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"MapForge/internal/terrain/domain"
)

// TerrainRepo 把每张地图存成数据目录下的一个 JSON 文件。
// 地图名可以是任意字符串，文件名用 URL 转义后的名字。
type TerrainRepo struct {
	dir string
}

func NewTerrainRepo(dir string) (*TerrainRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TerrainRepo{dir: dir}, nil
}

func (r *TerrainRepo) path(name string) string {
	return filepath.Join(r.dir, url.QueryEscape(name)+".json")
}

func (r *TerrainRepo) Load(ctx context.Context, name string) (*domain.Doc, error) {
	raw, err := os.ReadFile(r.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			// 技术错误 → 业务错误
			return nil, domain.ErrTerrainNotFound.WithData("name", name)
		}
		return nil, domain.ErrSystemUnavailable.WithData("name", name).WithCause(err)
	}
	var doc domain.Doc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, domain.ErrInvalidDocument.WithData("name", name).WithCause(err)
	}
	return &doc, nil
}

func (r *TerrainRepo) Save(ctx context.Context, doc *domain.Doc) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return domain.ErrSystemUnavailable.WithData("name", doc.Name).WithCause(err)
	}
	if err := os.WriteFile(r.path(doc.Name), raw, 0o644); err != nil {
		return domain.ErrSystemUnavailable.WithData("name", doc.Name).WithCause(err)
	}
	return nil
}

func (r *TerrainRepo) List(ctx context.Context) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(r.dir, "*.json"))
	if err != nil {
		return nil, domain.ErrSystemUnavailable.WithCause(err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		base := strings.TrimSuffix(filepath.Base(m), ".json")
		name, err := url.QueryUnescape(base)
		if err != nil {
			// 不是本仓库写出的文件名，跳过
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func (r *TerrainRepo) Delete(ctx context.Context, name string) error {
	if err := os.Remove(r.path(name)); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrTerrainNotFound.WithData("name", name)
		}
		return domain.ErrSystemUnavailable.WithData("name", name).WithCause(err)
	}
	return nil
}
