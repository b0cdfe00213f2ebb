// Command seed loads a sample mall directory into the store cache
// collection so the API can be exercised without scraping a live page.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedOptions struct {
	mongoURI       string
	database       string
	collection     string
	dropCollection bool
}

type storeDocument struct {
	Key       string    `bson:"key"`
	Name      string    `bson:"name"`
	Hours     string    `bson:"hours"`
	Location  string    `bson:"location,omitempty"`
	LogoURL   string    `bson:"logoURL,omitempty"`
	FetchedAt time.Time `bson:"fetchedAt"`
}

type sampleStore struct {
	name     string
	hours    string
	location string
	logo     string
}

var sampleDirectory = []sampleStore{
	{"Starbucks Coffee", "9am-10pm", "Street Level 1, near Centerstage", "https://cdn.example.com/logos/starbucks.png"},
	{"Starbucks Coffee", "9:30am – 9pm", "Level 3, Ewa Wing", "https://cdn.example.com/logos/starbucks.png"},
	{"Nike", "10:30am-8:30pm", "Level 2, Mauka Wing", "https://cdn.example.com/logos/nike.png"},
	{"Foot Locker", "10am-8pm", "Level 2, near Center Court", "https://cdn.example.com/logos/footlocker.png"},
	{"Lego", "10am-9pm", "Level 1, Diamond Head Wing", "https://cdn.example.com/logos/lego.png"},
	{"Island Vintage Coffee", "8am-9pm", "Level 2, Ewa Wing", ""},
	{"Vim n Vigor", "9am-7pm", "Street Level 1", ""},
	{"The Lei Stand", "8am-8pm", "near the main entrance", ""},
}

func main() {
	opts := parseFlags()

	logger := log.New(os.Stdout, "[mall-directory-seed] ", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(opts.mongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Printf("error disconnecting MongoDB: %v", err)
		}
	}()

	collection := client.Database(opts.database).Collection(opts.collection)

	if opts.dropCollection {
		if err := collection.Drop(ctx); err != nil {
			logger.Fatalf("failed to drop collection %s: %v", opts.collection, err)
		}
		logger.Printf("dropped collection %s", opts.collection)
	}

	fetchedAt := time.Now().UTC()
	upserted := 0
	for _, sample := range sampleDirectory {
		doc := storeDocument{
			Key:       strings.ToLower(strings.TrimSpace(sample.name)),
			Name:      sample.name,
			Hours:     sample.hours,
			Location:  sample.location,
			LogoURL:   sample.logo,
			FetchedAt: fetchedAt,
		}

		filter := bson.M{"key": doc.Key, "location": doc.Location}
		update := bson.M{"$set": doc}
		if _, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			logger.Fatalf("failed to upsert %q: %v", sample.name, err)
		}
		upserted++
	}

	logger.Printf("seeded %d store records into %s.%s", upserted, opts.database, opts.collection)
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.StringVar(&opts.mongoURI, "uri", envOrDefault("MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
	flag.StringVar(&opts.database, "db", envOrDefault("MONGO_DB", "mall-directory"), "database name")
	flag.StringVar(&opts.collection, "collection", envOrDefault("STORE_COLLECTION", "stores"), "store collection name")
	flag.BoolVar(&opts.dropCollection, "drop", false, "drop the collection before seeding")
	flag.Parse()
	return opts
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
