package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/halemalu/mall-directory-services/api/internal/public/domain"
)

// StoreDocument is the MongoDB schema for one cached directory entry.
// Key holds the normalized (lowercased, trimmed) store name and is what
// lookups compare against; Name keeps the display form. A brand with
// several physical locations owns one document per location.
type StoreDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Key       string             `bson:"key"`
	Name      string             `bson:"name"`
	Hours     string             `bson:"hours"`
	Location  string             `bson:"location,omitempty"`
	LogoURL   string             `bson:"logoURL,omitempty"`
	FetchedAt time.Time          `bson:"fetchedAt"`
}

func mapStoreDocument(doc StoreDocument) domain.Store {
	return domain.Store{
		Name:      doc.Name,
		Hours:     doc.Hours,
		Location:  doc.Location,
		LogoURL:   doc.LogoURL,
		FetchedAt: doc.FetchedAt,
	}
}

func buildStoreDocument(store domain.Store) StoreDocument {
	return StoreDocument{
		Key:       store.Key(),
		Name:      store.Name,
		Hours:     store.Hours,
		Location:  store.Location,
		LogoURL:   store.LogoURL,
		FetchedAt: store.FetchedAt,
	}
}
