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

type lessonRepository struct {
	coll *mongo.Collection
}

// NewLessonRepository creates a MongoDB backed repository.LessonRepository.
func NewLessonRepository(db *mongo.Database) repository.LessonRepository {
	return &lessonRepository{coll: db.Collection(promptsCollection)}
}

func (repo *lessonRepository) Create(ctx context.Context, lesson *entity.Lesson) error {
	doc := &lessonDocument{
		ID:            primitive.NewObjectID(),
		UserID:        lesson.UserID,
		CategoryID:    lesson.CategoryID,
		SubCategoryID: lesson.SubCategoryID,
		Prompt:        lesson.Prompt,
		Response:      lesson.Response,
		CreatedAt:     storedTime(lesson.CreatedAt),
	}

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create lesson")
	}

	lesson.ID = doc.ID.Hex()
	lesson.CreatedAt = doc.CreatedAt

	return nil
}

func (repo *lessonRepository) FindByID(ctx context.Context, id string) (*entity.Lesson, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc lessonDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrLessonNotFound
		}

		return nil, errors.Wrap(err, "failed to find lesson")
	}

	return doc.toEntity(), nil
}

func (repo *lessonRepository) ListByUser(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Lesson], error) {
	docs, total, err := findPage[lessonDocument](ctx, repo.coll, bson.M{"user_id": userID}, page)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list user lessons")
	}

	return toPage(docs, total, page, (*lessonDocument).toEntity), nil
}

func (repo *lessonRepository) List(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.Lesson], error) {
	docs, total, err := findPage[lessonDocument](ctx, repo.coll, bson.M{}, page)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list lessons")
	}

	return toPage(docs, total, page, (*lessonDocument).toEntity), nil
}
