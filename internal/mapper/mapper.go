// Package mapper converts OPhim payloads into the documents stored by the importer.
package mapper

import (
	"strings"
	"time"

	"movie-service/internal/models"
	"movie-service/internal/ophim"
)

// Mapper is pure apart from the injected clock.
type Mapper struct {
	cdnBase string
	now     func() time.Time
}

func New(cdnBase string, now func() time.Time) *Mapper {
	if now == nil {
		now = time.Now
	}
	return &Mapper{cdnBase: strings.TrimRight(cdnBase, "/"), now: now}
}

// BuildFullImageURL makes an image path absolute against the CDN base.
// nil or empty stays nil, anything starting with "http" passes through.
func BuildFullImageURL(cdnBase string, path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	if strings.HasPrefix(*path, "http") {
		out := *path
		return &out
	}
	out := cdnBase + "/uploads/movies/" + *path
	return &out
}

func (m *Mapper) Taxonomy(raw ophim.Taxonomy) models.Taxonomy {
	return models.Taxonomy{
		ID:         raw.ID,
		Name:       raw.Name,
		Slug:       raw.Slug,
		Source:     models.SourceOPhim,
		ImportedAt: m.now(),
	}
}

// Movie maps a list-view item. Detail-only fields are not part of the result.
func (m *Mapper) Movie(raw ophim.Movie) models.Movie {
	now := m.now()

	movie := models.Movie{
		ExternalID:     raw.ID,
		Name:           raw.Name,
		Slug:           raw.Slug,
		OriginName:     raw.OriginName,
		Type:           raw.Type,
		ThumbURL:       BuildFullImageURL(m.cdnBase, raw.ThumbURL),
		PosterURL:      BuildFullImageURL(m.cdnBase, raw.PosterURL),
		Year:           int(raw.Year),
		Quality:        raw.Quality,
		Lang:           raw.Lang,
		LangKey:        orEmpty(raw.LangKey),
		Time:           raw.Time,
		EpisodeCurrent: raw.EpisodeCurrent,
		EpisodeTotal:   raw.EpisodeTotal,
		SubDocquyen:    raw.SubDocquyen,
		ChieuRap:       raw.ChieuRap,
		Category:       mapRefs(raw.Category),
		Country:        mapRefs(raw.Country),
		Source:         models.SourceOPhim,
		AccessType:     models.AccessTypeFree,
		ImportedAt:     now,
		ModifiedAt:     now,
	}

	if raw.TMDB != nil {
		movie.TMDB = &models.TMDBInfo{
			Type:        raw.TMDB.Type,
			ID:          string(raw.TMDB.ID),
			Season:      raw.TMDB.Season,
			VoteAverage: raw.TMDB.VoteAverage,
			VoteCount:   raw.TMDB.VoteCount,
		}
	}
	if raw.IMDB != nil {
		movie.IMDB = &models.IMDBInfo{
			ID:          string(raw.IMDB.ID),
			VoteAverage: raw.IMDB.VoteAverage,
			VoteCount:   raw.IMDB.VoteCount,
		}
	}
	if raw.Modified != nil && raw.Modified.Time != "" {
		if t, ok := parseTime(raw.Modified.Time); ok {
			movie.ModifiedAt = t
		}
	}
	return movie
}

// MovieDetail maps a detail-view item: the list-view fields plus content,
// credits and the episode/server structure.
func (m *Mapper) MovieDetail(raw ophim.Movie) models.MovieDetail {
	d := models.MovieDetail{
		Movie:            m.Movie(raw),
		Content:          raw.Content,
		Status:           raw.Status,
		TrailerURL:       raw.TrailerURL,
		Actor:            orEmpty(raw.Actor),
		Director:         orEmpty(raw.Director),
		AlternativeNames: orEmpty(raw.AlternativeNames),
		View:             int(raw.View),
		IsCopyright:      raw.IsCopyright,
		Notify:           raw.Notify,
		Showtimes:        raw.Showtimes,
		Episodes:         make([]models.Episode, 0, len(raw.Episodes)),
	}

	for _, ep := range raw.Episodes {
		servers := make([]models.ServerData, 0, len(ep.ServerData))
		for _, sd := range ep.ServerData {
			servers = append(servers, models.ServerData{
				Name:      sd.Name,
				Slug:      sd.Slug,
				Filename:  sd.Filename,
				LinkEmbed: sd.LinkEmbed,
				LinkM3U8:  sd.LinkM3U8,
			})
		}
		d.Episodes = append(d.Episodes, models.Episode{
			ServerName: ep.ServerName,
			IsAI:       ep.IsAI,
			ServerData: servers,
		})
	}
	return d
}

func mapRefs(in []ophim.Ref) []models.Ref {
	out := make([]models.Ref, 0, len(in))
	for _, r := range in {
		out = append(out, models.Ref{ID: r.ID, Name: r.Name, Slug: r.Slug})
	}
	return out
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02 15:04:05",
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
