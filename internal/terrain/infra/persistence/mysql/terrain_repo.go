package mysql

import (
	"context"
	"errors"
	"time"

	"MapForge/internal/terrain/domain"
	"MapForge/internal/terrain/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TerrainRepo struct {
	db *gorm.DB
}

func NewTerrainRepo(db *gorm.DB) *TerrainRepo {
	return &TerrainRepo{db: db}
}

func (r *TerrainRepo) Load(ctx context.Context, name string) (*domain.Doc, error) {
	var m model.TerrainRow
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error

	switch {
	case err == nil:
		doc, err := m.ToDoc()
		if err != nil {
			return nil, domain.ErrInvalidDocument.WithData("name", name).WithCause(err)
		}
		return doc, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// 技术错误 → 业务错误
		return nil, domain.ErrTerrainNotFound.WithData("name", name)
	default:
		//  纯技术错误（连接超时等），是无法转换的技术错误，保持原样或包装返回给上级
		return nil, domain.ErrSystemUnavailable.WithData("name", name).WithCause(err)
	}
}

func (r *TerrainRepo) Save(ctx context.Context, doc *domain.Doc) error {
	m, err := model.TerrainRowFromDoc(doc)
	if err != nil {
		return domain.ErrInvalidDocument.WithData("name", doc.Name).WithCause(err)
	}
	m.UpdatedAt = time.Now()

	// name 是主键：存在则整行覆盖，不存在则插入
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(m).Error
	if err != nil {
		return domain.ErrSystemUnavailable.WithData("name", doc.Name).WithCause(err)
	}
	return nil
}

func (r *TerrainRepo) List(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&model.TerrainRow{}).Pluck("name", &names).Error
	if err != nil {
		return nil, domain.ErrSystemUnavailable.WithCause(err)
	}
	return names, nil
}

func (r *TerrainRepo) Delete(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).Where("name = ?", name).Delete(&model.TerrainRow{})
	if res.Error != nil {
		return domain.ErrSystemUnavailable.WithData("name", name).WithCause(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrTerrainNotFound.WithData("name", name)
	}
	return nil
}
