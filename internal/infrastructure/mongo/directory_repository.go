package mongo

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/halemalu/mall-directory-services/api/internal/public/domain"
)

// DirectoryRepository implements the public and admin directory cache ports
// using MongoDB.
type DirectoryRepository struct {
	collection *mongo.Collection
}

// NewDirectoryRepository creates a new Mongo-backed directory cache.
func NewDirectoryRepository(db *mongo.Database, collectionName string) *DirectoryRepository {
	return &DirectoryRepository{collection: db.Collection(collectionName)}
}

// Lookup returns every cached record whose key matches the query by
// bidirectional substring containment. Keys are stored normalized, so the
// query is normalized once here and both directions compare exact bytes:
// a $regex for key-contains-query, and $indexOfCP for query-contains-key.
// An empty result is a cache miss.
func (r *DirectoryRepository) Lookup(ctx context.Context, query string) ([]domain.Store, error) {
	normalized := domain.NormalizeName(query)
	if normalized == "" {
		return nil, nil
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"key": bson.M{"$regex": regexp.QuoteMeta(normalized)}},
		bson.M{"$expr": bson.M{"$gte": bson.A{
			bson.M{"$indexOfCP": bson.A{normalized, "$key"}},
			0,
		}}},
	}}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "key", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeStores(ctx, cursor)
}

// Populate merges fetched records into the cache, upserting per
// (key, location) so reruns refresh existing entries instead of appending
// duplicates. Existing records for other stores are never touched.
func (r *DirectoryRepository) Populate(ctx context.Context, stores []domain.Store) error {
	for _, store := range stores {
		doc := buildStoreDocument(store)
		if doc.Key == "" {
			continue
		}
		if doc.FetchedAt.IsZero() {
			doc.FetchedAt = time.Now().UTC()
		}

		filter := bson.M{"key": doc.Key, "location": doc.Location}
		update := bson.M{"$set": bson.M{
			"key":       doc.Key,
			"name":      doc.Name,
			"hours":     doc.Hours,
			"location":  doc.Location,
			"logoURL":   doc.LogoURL,
			"fetchedAt": doc.FetchedAt,
		}}
		if _, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return err
		}
	}
	return nil
}

// All returns the entire cached directory in key order.
func (r *DirectoryRepository) All(ctx context.Context) ([]domain.Store, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "key", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeStores(ctx, cursor)
}

// Purge deletes every cached record and reports how many were removed.
func (r *DirectoryRepository) Purge(ctx context.Context) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func decodeStores(ctx context.Context, cursor *mongo.Cursor) ([]domain.Store, error) {
	stores := make([]domain.Store, 0)
	for cursor.Next(ctx) {
		var doc StoreDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		stores = append(stores, mapStoreDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return stores, nil
}
