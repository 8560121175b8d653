package mongodb

import (
	"context"
	"errors"
	"time"

	"MapForge/internal/terrain/domain"
	"MapForge/internal/terrain/infra/persistence/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const defaultCollectionName = "terrain_maps"

type TerrainRepo struct {
	coll *mongo.Collection
}

func NewTerrainRepo(db *mongo.Database) *TerrainRepo {
	return &TerrainRepo{
		coll: db.Collection(defaultCollectionName),
	}
}

func (r *TerrainRepo) Load(ctx context.Context, name string) (*domain.Doc, error) {
	var m model.TerrainDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&m)
	if err == nil {
		return m.ToDomain(), nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		// 技术错误 → 业务错误
		return nil, domain.ErrTerrainNotFound.WithData("name", name)
	}
	return nil, domain.ErrSystemUnavailable.WithData("name", name).WithCause(err)
}

func (r *TerrainRepo) Save(ctx context.Context, doc *domain.Doc) error {
	m := model.TerrainDocFromDomain(doc)
	m.UpdatedAt = time.Now()

	_, err := r.coll.ReplaceOne(
		ctx,
		bson.M{"_id": m.Name},
		m,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return domain.ErrSystemUnavailable.WithData("name", doc.Name).WithCause(err)
	}
	return nil
}

func (r *TerrainRepo) List(ctx context.Context) ([]string, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, domain.ErrSystemUnavailable.WithCause(err)
	}
	defer cur.Close(ctx)

	var names []string
	for cur.Next(ctx) {
		var row struct {
			Name string `bson:"_id"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, domain.ErrSystemUnavailable.WithCause(err)
		}
		names = append(names, row.Name)
	}
	if err := cur.Err(); err != nil {
		return nil, domain.ErrSystemUnavailable.WithCause(err)
	}
	return names, nil
}

func (r *TerrainRepo) Delete(ctx context.Context, name string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return domain.ErrSystemUnavailable.WithData("name", name).WithCause(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTerrainNotFound.WithData("name", name)
	}
	return nil
}
