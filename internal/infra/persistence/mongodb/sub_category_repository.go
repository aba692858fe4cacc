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

type subCategoryRepository struct {
	coll *mongo.Collection
}

// NewSubCategoryRepository creates a MongoDB backed repository.SubCategoryRepository.
func NewSubCategoryRepository(db *mongo.Database) repository.SubCategoryRepository {
	return &subCategoryRepository{coll: db.Collection(subCategoriesCollection)}
}

func (repo *subCategoryRepository) Create(ctx context.Context, subCategory *entity.SubCategory) error {
	doc := &subCategoryDocument{
		ID:         primitive.NewObjectID(),
		Name:       subCategory.Name,
		CategoryID: subCategory.CategoryID,
		CreatedAt:  storedTime(subCategory.CreatedAt),
	}

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create sub-category")
	}

	subCategory.ID = doc.ID.Hex()
	subCategory.CreatedAt = doc.CreatedAt

	return nil
}

func (repo *subCategoryRepository) FindByID(ctx context.Context, id string) (*entity.SubCategory, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc subCategoryDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrSubCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find sub-category")
	}

	return doc.toEntity(), nil
}

func (repo *subCategoryRepository) List(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.SubCategory], error) {
	docs, total, err := findPage[subCategoryDocument](ctx, repo.coll, bson.M{}, page)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list sub-categories")
	}

	return toPage(docs, total, page, (*subCategoryDocument).toEntity), nil
}

func (repo *subCategoryRepository) ListByCategory(ctx context.Context, categoryID string, page entity.PageRequest) (*entity.Page[*entity.SubCategory], error) {
	if _, err := parseObjectID(categoryID); err != nil {
		return nil, err
	}

	docs, total, err := findPage[subCategoryDocument](ctx, repo.coll, bson.M{"category_id": categoryID}, page)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list sub-categories by category")
	}

	return toPage(docs, total, page, (*subCategoryDocument).toEntity), nil
}

func (repo *subCategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete sub-category")
	}

	if result.DeletedCount == 0 {
		return repository.ErrSubCategoryNotFound
	}

	return nil
}
