package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"learnhub/internal/domain/entity"
	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/domain/repository"
	"learnhub/internal/errors"
)

type categoryRepository struct {
	coll *mongo.Collection
}

// NewCategoryRepository creates a MongoDB backed repository.CategoryRepository.
func NewCategoryRepository(db *mongo.Database) repository.CategoryRepository {
	return &categoryRepository{coll: db.Collection(categoriesCollection)}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	doc := &categoryDocument{
		ID:        primitive.NewObjectID(),
		Name:      category.Name,
		CreatedAt: storedTime(category.CreatedAt),
	}

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = doc.ID.Hex()
	category.CreatedAt = doc.CreatedAt

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc categoryDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return doc.toEntity(), nil
}

func (repo *categoryRepository) List(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.Category], error) {
	docs, total, err := findPage[categoryDocument](ctx, repo.coll, bson.M{}, page)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	return toPage(docs, total, page, (*categoryDocument).toEntity), nil
}
