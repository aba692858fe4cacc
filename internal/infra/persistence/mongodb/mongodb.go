// Package mongodb contains the MongoDB implementation of the record store.
package mongodb

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"

	"learnhub/config"
	"learnhub/internal/domain/lifecycle"
	"learnhub/internal/errors"
)

// Collection names.
const (
	usersCollection         = "users"
	categoriesCollection    = "categories"
	subCategoriesCollection = "sub_categories"
	promptsCollection       = "prompts"
)

// Unique index names on the users collection.
const (
	uniqUsersPhone    = "uniq_users_phone"
	uniqUsersIDNumber = "uniq_users_id_number"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the application database.
// The connection is verified and the indexes are ensured when the application starts.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri must be provided")
	}

	logger := params.Logger.With(slog.String("component", "mongodb"))

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMonitor(newCommandMonitor(logger))

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, db); err != nil {
				return err
			}

			logger.Info("MongoDB connected", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// ensureIndexes creates the indexes the repositories rely on. It is idempotent.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{
				Keys:    bson.D{{Key: "phone", Value: 1}},
				Options: options.Index().SetUnique(true).SetName(uniqUsersPhone),
			},
			{
				// Legacy records have no id_number, so only non-empty values are unique.
				Keys: bson.D{{Key: "id_number", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetName(uniqUsersIDNumber).
					SetPartialFilterExpression(bson.M{"id_number": bson.M{"$gt": ""}}),
			},
			{Keys: bson.D{{Key: "name", Value: 1}, {Key: "phone", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		categoriesCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		subCategoriesCollection: {
			{Keys: bson.D{{Key: "category_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		promptsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", name)
		}
	}

	return nil
}

// newCommandMonitor logs failed server commands. Successful commands are not logged.
func newCommandMonitor(logger *slog.Logger) *event.CommandMonitor {
	return &event.CommandMonitor{
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			logger.LogAttrs(ctx, slog.LevelWarn, "MongoDB command failed",
				slog.String("command", evt.CommandName),
				slog.String("database", evt.DatabaseName),
				slog.Duration("elapsed", evt.Duration),
				slog.String("failure", evt.Failure),
			)
		},
	}
}
