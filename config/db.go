package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var DB *mongo.Database

func ConnectDB() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "pgfinder"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("MongoDB connect error: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("MongoDB ping failed: %v", err)
	}

	DB = client.Database(dbName)
	log.Println("Connected to MongoDB")

	ensureIndexes(ctx)
}

func GetCollection(name string) *mongo.Collection {
	return DB.Collection(name)
}

func PGCollectionName() string {
	if name := os.Getenv("MONGODB_COLLECTION_PGS"); name != "" {
		return name
	}
	return "pgs"
}

func UserCollectionName() string {
	if name := os.Getenv("MONGODB_COLLECTION_USERS"); name != "" {
		return name
	}
	return "users"
}

func MessageCollectionName() string {
	if name := os.Getenv("MONGODB_COLLECTION_MESSAGES"); name != "" {
		return name
	}
	return "messages"
}

// ensureIndexes creates the text index backing free-text search and the
// 2dsphere index backing location queries. Index creation is idempotent.
func ensureIndexes(ctx context.Context) {
	pgs := GetCollection(PGCollectionName())

	_, err := pgs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "address.city", Value: "text"},
			},
		},
		{
			Keys: bson.D{{Key: "location", Value: "2dsphere"}},
		},
	})
	if err != nil {
		log.Printf("Failed to create pg indexes: %v", err)
	}
}
