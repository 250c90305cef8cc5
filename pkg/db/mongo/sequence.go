package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CountersCollection = "Counters"

type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// NextSequence allocates the next integer ID for the named sequence using an
// atomic $inc upsert on the Counters collection. IDs start at 1.
func NextSequence(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDoc
	err := db.Collection(CountersCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate id for sequence %s: %w", name, err)
	}

	return doc.Seq, nil
}

// ResetSequence rewinds a sequence to zero. Used by the seeder after wiping
// collections so seeded data gets stable small IDs.
func ResetSequence(ctx context.Context, db *mongo.Database, name string) error {
	_, err := db.Collection(CountersCollection).UpdateOne(
		ctx,
		bson.M{"_id": name},
		bson.M{"$set": bson.M{"seq": int64(0)}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to reset sequence %s: %w", name, err)
	}
	return nil
}
