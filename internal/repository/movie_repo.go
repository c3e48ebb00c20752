package repository

import (
	"context"
	"regexp"
	"sort"

	"movie-service/internal/db"
	"movie-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(database *mongo.Database) *MovieRepository {
	return &MovieRepository{col: database.Collection(db.MoviesCollection)}
}

func (r *MovieRepository) FindBySlug(ctx context.Context, slug string) (*models.MovieDetail, error) {
	var m models.MovieDetail
	err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert writes a list-view document. Callers decide whether an existing
// detail record may be overwritten.
func (r *MovieRepository) Upsert(ctx context.Context, m *models.Movie) error {
	return Upsert(ctx, r.col, "slug", m.Slug, m)
}

// UpsertDetail always writes: detail is the highest-priority source.
func (r *MovieRepository) UpsertDetail(ctx context.Context, m *models.MovieDetail) error {
	return Upsert(ctx, r.col, "slug", m.Slug, m)
}

// MovieFilter narrows catalog listings. Zero values are ignored.
type MovieFilter struct {
	Type    string
	Genre   string
	Country string
	Year    int
	Keyword string
}

// BSON builds the Mongo filter for f.
func (f MovieFilter) BSON() bson.M {
	filter := bson.M{}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.Genre != "" {
		filter["category.slug"] = f.Genre
	}
	if f.Country != "" {
		filter["country.slug"] = f.Country
	}
	if f.Year > 0 {
		filter["year"] = f.Year
	}
	if f.Keyword != "" {
		re := bson.M{"$regex": regexp.QuoteMeta(f.Keyword), "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"originName": re},
		}
	}
	return filter
}

// listProjection leaves out the heavy detail fields on listings.
var listProjection = bson.M{
	"episodes":         0,
	"content":          0,
	"actor":            0,
	"director":         0,
	"alternativeNames": 0,
}

// Search returns one page of movies, newest modification first, and the total match count.
func (r *MovieRepository) Search(ctx context.Context, f MovieFilter, limit, offset int) ([]models.Movie, int64, error) {
	filter := f.BSON()

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "modifiedAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetProjection(listProjection)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	out := []models.Movie{}
	for cur.Next(ctx) {
		var m models.Movie
		if err := cur.Decode(&m); err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, cur.Err()
}

// Years lists distinct non-zero release years, newest first.
func (r *MovieRepository) Years(ctx context.Context) ([]int, error) {
	raw, err := r.col.Distinct(ctx, "year", bson.M{})
	if err != nil {
		return nil, err
	}
	years := make([]int, 0, len(raw))
	for _, v := range raw {
		if y := asInt(v); y > 0 {
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

var hasEpisodesFilter = bson.M{"episodes.0": bson.M{"$exists": true}}

// CountAll returns the total number of movies and how many carry episodes.
func (r *MovieRepository) CountAll(ctx context.Context) (total, withEpisodes int64, err error) {
	total, err = r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, err
	}
	withEpisodes, err = r.col.CountDocuments(ctx, hasEpisodesFilter)
	if err != nil {
		return 0, 0, err
	}
	return total, withEpisodes, nil
}

// FindWithoutEpisodes lists movies still lacking detail data, most recently modified first.
func (r *MovieRepository) FindWithoutEpisodes(ctx context.Context, limit int64) ([]models.PendingMovie, error) {
	opts := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "modifiedAt", Value: -1}}).
		SetProjection(bson.M{"slug": 1, "name": 1, "importedAt": 1})

	cur, err := r.col.Find(ctx, bson.M{"episodes.0": bson.M{"$exists": false}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.PendingMovie{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func asInt(v any) int {
	switch x := v.(type) {
	case int32:
		return int(x)
	case int64:
		return int(x)
	case float64:
		return int(x)
	default:
		return 0
	}
}
