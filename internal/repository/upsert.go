package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert sets every field of doc on the record matching keyField=keyValue,
// inserting it when nothing matches. Arrays and nested documents are
// replaced, never merged.
func Upsert(ctx context.Context, col *mongo.Collection, keyField string, keyValue any, doc any) error {
	_, err := col.UpdateOne(ctx,
		bson.M{keyField: keyValue},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert %s %s=%v: %w", col.Name(), keyField, keyValue, err)
	}
	return nil
}
