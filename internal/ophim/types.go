package ophim

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Envelope is the common OPhim response wrapper. List endpoints fill
// Data.Items, the detail endpoint fills Data.Item.
type Envelope[T any] struct {
	Status string   `json:"status"`
	Msg    string   `json:"message,omitempty"`
	Data   *Data[T] `json:"data"`
}

type Data[T any] struct {
	Items []T `json:"items,omitempty"`
	Item  *T  `json:"item,omitempty"`
}

// Taxonomy is a genre ("the-loai") or country ("quoc-gia") entry.
type Taxonomy struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TMDB struct {
	Type        string     `json:"type"`
	ID          FlexString `json:"id"`
	Season      *int       `json:"season"`
	VoteAverage float64    `json:"vote_average"`
	VoteCount   int        `json:"vote_count"`
}

type IMDB struct {
	ID          FlexString `json:"id"`
	VoteAverage float64    `json:"vote_average"`
	VoteCount   int        `json:"vote_count"`
}

type Modified struct {
	Time string `json:"time"`
}

type ServerData struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Filename  string `json:"filename"`
	LinkEmbed string `json:"link_embed"`
	LinkM3U8  string `json:"link_m3u8"`
}

type Episode struct {
	ServerName string       `json:"server_name"`
	IsAI       bool         `json:"is_ai"`
	ServerData []ServerData `json:"server_data"`
}

// Movie carries both the list-view and the detail-view fields. List
// endpoints leave the detail fields empty.
type Movie struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	OriginName     string    `json:"origin_name"`
	Type           string    `json:"type"`
	ThumbURL       *string   `json:"thumb_url"`
	PosterURL      *string   `json:"poster_url"`
	Year           FlexInt   `json:"year"`
	Quality        string    `json:"quality"`
	Lang           string    `json:"lang"`
	LangKey        []string  `json:"lang_key"`
	Time           string    `json:"time"`
	EpisodeCurrent string    `json:"episode_current"`
	EpisodeTotal   string    `json:"episode_total"`
	SubDocquyen    bool      `json:"sub_docquyen"`
	ChieuRap       bool      `json:"chieurap"`
	Category       []Ref     `json:"category"`
	Country        []Ref     `json:"country"`
	TMDB           *TMDB     `json:"tmdb"`
	IMDB           *IMDB     `json:"imdb"`
	Modified       *Modified `json:"modified"`

	// detail view
	Content          string    `json:"content"`
	Status           string    `json:"status"`
	TrailerURL       string    `json:"trailer_url"`
	Actor            []string  `json:"actor"`
	Director         []string  `json:"director"`
	AlternativeNames []string  `json:"alternative_names"`
	View             FlexInt   `json:"view"`
	IsCopyright      bool      `json:"is_copyright"`
	Notify           string    `json:"notify"`
	Showtimes        string    `json:"showtimes"`
	Episodes         []Episode `json:"episodes"`
}

// FlexString accepts a JSON string or number.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// FlexInt accepts a JSON number or a numeric string. Anything else decodes to 0.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, _ := strconv.Atoi(s)
		*f = FlexInt(n)
		return nil
	}
	var fl float64
	if err := json.Unmarshal(b, &fl); err != nil {
		return err
	}
	*f = FlexInt(int(fl))
	return nil
}
