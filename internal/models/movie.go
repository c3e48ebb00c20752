package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SourceOPhim    = "OPHIM"
	AccessTypeFree = "FREE"
)

// Ref is an embedded category/country reference on a movie. It is copied
// from the source as-is, never resolved against the genres/countries collections.
type Ref struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
	Slug string `json:"slug" bson:"slug"`
}

type TMDBInfo struct {
	Type        string  `json:"type" bson:"type"`
	ID          string  `json:"id" bson:"id"`
	Season      *int    `json:"season" bson:"season"`
	VoteAverage float64 `json:"voteAverage" bson:"voteAverage"`
	VoteCount   int     `json:"voteCount" bson:"voteCount"`
}

type IMDBInfo struct {
	ID          string  `json:"id" bson:"id"`
	VoteAverage float64 `json:"voteAverage" bson:"voteAverage"`
	VoteCount   int     `json:"voteCount" bson:"voteCount"`
}

// Movie is the list-view document. Writing it with $set never touches the
// detail-only fields of an existing record.
type Movie struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ExternalID     string             `json:"externalId" bson:"externalId"`
	Name           string             `json:"name" bson:"name"`
	Slug           string             `json:"slug" bson:"slug"`
	OriginName     string             `json:"originName" bson:"originName"`
	Type           string             `json:"type" bson:"type"` // single, series, hoathinh, tvshows
	ThumbURL       *string            `json:"thumbUrl" bson:"thumbUrl"`
	PosterURL      *string            `json:"posterUrl" bson:"posterUrl"`
	Year           int                `json:"year" bson:"year"`
	Quality        string             `json:"quality" bson:"quality"`
	Lang           string             `json:"lang" bson:"lang"`
	LangKey        []string           `json:"langKey" bson:"langKey"`
	Time           string             `json:"time" bson:"time"`
	EpisodeCurrent string             `json:"episodeCurrent" bson:"episodeCurrent"`
	EpisodeTotal   string             `json:"episodeTotal" bson:"episodeTotal"`
	SubDocquyen    bool               `json:"subDocquyen" bson:"subDocquyen"`
	ChieuRap       bool               `json:"chieuRap" bson:"chieuRap"`
	Category       []Ref              `json:"category" bson:"category"`
	Country        []Ref              `json:"country" bson:"country"`
	TMDB           *TMDBInfo          `json:"tmdb" bson:"tmdb"`
	IMDB           *IMDBInfo          `json:"imdb" bson:"imdb"`
	Source         string             `json:"source" bson:"source"`
	AccessType     string             `json:"accessType" bson:"accessType"`
	ImportedAt     time.Time          `json:"importedAt" bson:"importedAt"`
	ModifiedAt     time.Time          `json:"modifiedAt" bson:"modifiedAt"`
}

type ServerData struct {
	Name      string `json:"name" bson:"name"`
	Slug      string `json:"slug" bson:"slug"`
	Filename  string `json:"filename" bson:"filename"`
	LinkEmbed string `json:"linkEmbed" bson:"linkEmbed"`
	LinkM3U8  string `json:"linkM3u8" bson:"linkM3u8"`
}

// Episode is one streaming server with its episode list.
type Episode struct {
	ServerName string       `json:"serverName" bson:"serverName"`
	IsAI       bool         `json:"isAi" bson:"isAi"`
	ServerData []ServerData `json:"serverData" bson:"serverData"`
}

// MovieDetail is the detail-view document: every Movie field plus the
// extended metadata and the episode/server structure.
type MovieDetail struct {
	Movie `bson:",inline"`

	Content          string    `json:"content" bson:"content"`
	Status           string    `json:"status" bson:"status"`
	TrailerURL       string    `json:"trailerUrl" bson:"trailerUrl"`
	Actor            []string  `json:"actor" bson:"actor"`
	Director         []string  `json:"director" bson:"director"`
	AlternativeNames []string  `json:"alternativeNames" bson:"alternativeNames"`
	View             int       `json:"view" bson:"view"`
	IsCopyright      bool      `json:"isCopyright" bson:"isCopyright"`
	Notify           string    `json:"notify" bson:"notify"`
	Showtimes        string    `json:"showtimes" bson:"showtimes"`
	Episodes         []Episode `json:"episodes" bson:"episodes"`
}

// HasEpisodes reports whether the record carries detail data that a
// list-view import must not overwrite.
func (m *MovieDetail) HasEpisodes() bool {
	return m != nil && len(m.Episodes) > 0
}
