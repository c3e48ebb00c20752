package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"movie-service/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	GenresCollection    = "genres"
	CountriesCollection = "countries"
	MoviesCollection    = "movies"
)

// Connect opens the shared client and pings it. The caller owns the client
// and must Disconnect it, also on error paths.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return client, nil, fmt.Errorf("mongo ping: %w", err)
	}

	slog.Info("mongo connected", "uri", cfg.RedactedMongoURI(), "db", cfg.MongoDB)
	return client, client.Database(cfg.MongoDB), nil
}

func Disconnect(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		slog.Warn("mongo disconnect failed", "error", err)
		return
	}
	slog.Info("mongo disconnected")
}

// EnsureIndexes creates the unique slug indexes and the movie lookup indexes.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	uniqueSlug := mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("slug_unique"),
	}

	for _, name := range []string{GenresCollection, CountriesCollection} {
		if _, err := database.Collection(name).Indexes().CreateOne(ctx, uniqueSlug); err != nil {
			return fmt.Errorf("create index on %s: %w", name, err)
		}
	}

	movieIndexes := []mongo.IndexModel{
		uniqueSlug,
		{Keys: bson.D{{Key: "category.slug", Value: 1}}},
		{Keys: bson.D{{Key: "country.slug", Value: 1}}},
		{Keys: bson.D{{Key: "modifiedAt", Value: -1}}},
	}
	if _, err := database.Collection(MoviesCollection).Indexes().CreateMany(ctx, movieIndexes); err != nil {
		return fmt.Errorf("create index on %s: %w", MoviesCollection, err)
	}
	return nil
}
