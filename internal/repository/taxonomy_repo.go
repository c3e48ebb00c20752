package repository

import (
	"context"

	"movie-service/internal/db"
	"movie-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TaxonomyRepository backs both the genres and the countries collections.
type TaxonomyRepository struct {
	col *mongo.Collection
}

func NewGenreRepository(database *mongo.Database) *TaxonomyRepository {
	return &TaxonomyRepository{col: database.Collection(db.GenresCollection)}
}

func NewCountryRepository(database *mongo.Database) *TaxonomyRepository {
	return &TaxonomyRepository{col: database.Collection(db.CountriesCollection)}
}

func (r *TaxonomyRepository) Upsert(ctx context.Context, t *models.Taxonomy) error {
	return Upsert(ctx, r.col, "slug", t.Slug, t)
}

func (r *TaxonomyRepository) List(ctx context.Context) ([]models.Taxonomy, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Taxonomy{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TaxonomyRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
