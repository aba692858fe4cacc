package mongodb

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"learnhub/internal/domain/entity"
	"learnhub/internal/domain/repository"
	"learnhub/internal/errors"
)

// duplicateKeyCode is the server error code of a unique index violation.
const duplicateKeyCode = 11000

// parseObjectID converts a hex id into an ObjectID.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrInvalidID
	}

	return oid, nil
}

// duplicateKeyIndex returns the name of the violated unique index, or ok=false when
// err is not a duplicate key error. The name is parsed from the server message.
func duplicateKeyIndex(err error) (index string, ok bool) {
	if !mongo.IsDuplicateKeyError(err) {
		return "", false
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if we.Code != duplicateKeyCode {
				continue
			}
			for _, name := range []string{uniqUsersIDNumber, uniqUsersPhone} {
				if strings.Contains(we.Message, name) {
					return name, true
				}
			}
		}
	}

	return "", true
}

// duplicateUserError maps a duplicate key error on users to the repository sentinel.
func duplicateUserError(err error) error {
	index, ok := duplicateKeyIndex(err)
	if !ok {
		return nil
	}

	if index == uniqUsersIDNumber {
		return errors.WithStack(repository.ErrDuplicateIDNumber)
	}

	return errors.WithStack(repository.ErrDuplicatePhone)
}

// findPage counts the documents matching filter and decodes one page of them.
// page must already be normalized; SortBy is a field name from the allowlist.
func findPage[D any](ctx context.Context, coll *mongo.Collection, filter bson.M, page entity.PageRequest) ([]D, int64, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "count documents")
	}

	direction := 1
	if page.Order == entity.SortDesc {
		direction = -1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: page.SortBy, Value: direction}, {Key: "_id", Value: direction}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "find documents")
	}

	docs := make([]D, 0, page.Limit)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, errors.Wrap(err, "decode documents")
	}

	return docs, total, nil
}

func toPage[D any, E any](docs []D, total int64, page entity.PageRequest, mapFn func(*D) E) *entity.Page[E] {
	items := make([]E, 0, len(docs))
	for i := range docs {
		items = append(items, mapFn(&docs[i]))
	}

	return &entity.Page[E]{
		Items: items,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}
}
