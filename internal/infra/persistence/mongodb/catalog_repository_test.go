package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"learnhub/internal/domain/entity"
	"learnhub/internal/domain/repository"
)

func TestCategoryRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("find by id", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "learnhub.categories", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Science"},
			{Key: "created_at", Value: primitive.NewDateTimeFromTime(time.Now())},
		}))
		repo := NewCategoryRepository(mt.DB)

		category, err := repo.FindByID(ctx, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, "Science", category.Name)
	})

	mt.Run("find by id not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "learnhub.categories", mtest.FirstBatch))
		repo := NewCategoryRepository(mt.DB)

		_, err := repo.FindByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, repository.ErrCategoryNotFound)
	})
}

func TestSubCategoryRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create keeps category id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewSubCategoryRepository(mt.DB)

		categoryID := primitive.NewObjectID().Hex()
		sub := &entity.SubCategory{Name: "Biology", CategoryID: categoryID}
		require.NoError(mt, repo.Create(ctx, sub))
		assert.NotEmpty(mt, sub.ID)
		assert.Equal(mt, categoryID, sub.CategoryID)
		assert.False(mt, sub.CreatedAt.IsZero())
	})

	mt.Run("list by category rejects malformed id", func(mt *mtest.T) {
		repo := NewSubCategoryRepository(mt.DB)

		_, err := repo.ListByCategory(ctx, "xyz", entity.PageRequest{Page: 1, Limit: 10, SortBy: "name", Order: entity.SortAsc})
		assert.ErrorIs(mt, err, repository.ErrInvalidID)
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)
		repo := NewSubCategoryRepository(mt.DB)
		id := primitive.NewObjectID().Hex()

		require.NoError(mt, repo.Delete(ctx, id))
		assert.ErrorIs(mt, repo.Delete(ctx, id), repository.ErrSubCategoryNotFound)
	})
}

func TestLessonRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create and find", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "learnhub.prompts", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: id},
				{Key: "user_id", Value: "u1"},
				{Key: "category_id", Value: "c1"},
				{Key: "sub_category_id", Value: "s1"},
				{Key: "prompt", Value: "Photosynthesis"},
				{Key: "response", Value: "# Photosynthesis"},
				{Key: "created_at", Value: primitive.NewDateTimeFromTime(time.Now())},
			}),
		)
		repo := NewLessonRepository(mt.DB)

		lesson := &entity.Lesson{UserID: "u1", CategoryID: "c1", SubCategoryID: "s1", Prompt: "Photosynthesis", Response: "# Photosynthesis"}
		require.NoError(mt, repo.Create(ctx, lesson))
		assert.NotEmpty(mt, lesson.ID)

		found, err := repo.FindByID(ctx, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, "u1", found.UserID)
		assert.Equal(mt, "# Photosynthesis", found.Response)
	})

	mt.Run("history lives in the prompts collection", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "learnhub.prompts", mtest.FirstBatch),
		)
		repo := NewLessonRepository(mt.DB)

		require.NoError(mt, repo.Create(ctx, &entity.Lesson{UserID: "u1", Prompt: "Gravity", Response: "# Gravity"}))
		insert := mt.GetStartedEvent()
		require.NotNil(mt, insert)
		assert.Equal(mt, "insert", insert.CommandName)
		assert.Equal(mt, "prompts", insert.Command.Lookup("insert").StringValue())

		_, err := repo.FindByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, repository.ErrLessonNotFound)
		find := mt.GetStartedEvent()
		require.NotNil(mt, find)
		assert.Equal(mt, "prompts", find.Command.Lookup("find").StringValue())
	})

	mt.Run("find missing lesson", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "learnhub.prompts", mtest.FirstBatch))
		repo := NewLessonRepository(mt.DB)

		_, err := repo.FindByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, repository.ErrLessonNotFound)
	})
}
