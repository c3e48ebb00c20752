package models

import "time"

// Taxonomy is a genre or a country document. Both live in their own
// collection and share the same shape.
type Taxonomy struct {
	ID         string    `json:"id" bson:"_id"`
	Name       string    `json:"name" bson:"name"`
	Slug       string    `json:"slug" bson:"slug"`
	Source     string    `json:"source" bson:"source"`
	ImportedAt time.Time `json:"importedAt" bson:"importedAt"`
}
