package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMovieFilterEmpty(t *testing.T) {
	assert.Empty(t, MovieFilter{}.BSON())
}

func TestMovieFilterAllFields(t *testing.T) {
	got := MovieFilter{
		Type:    "series",
		Genre:   "hanh-dong",
		Country: "han-quoc",
		Year:    2024,
		Keyword: "a.b",
	}.BSON()

	assert.Equal(t, "series", got["type"])
	assert.Equal(t, "hanh-dong", got["category.slug"])
	assert.Equal(t, "han-quoc", got["country.slug"])
	assert.Equal(t, 2024, got["year"])

	re := bson.M{"$regex": `a\.b`, "$options": "i"}
	assert.Equal(t, bson.A{bson.M{"name": re}, bson.M{"originName": re}}, got["$or"])
}

func TestAsInt(t *testing.T) {
	assert.Equal(t, 2020, asInt(int32(2020)))
	assert.Equal(t, 2021, asInt(int64(2021)))
	assert.Equal(t, 2022, asInt(float64(2022)))
	assert.Equal(t, 0, asInt("2023"))
	assert.Equal(t, 0, asInt(nil))
}
