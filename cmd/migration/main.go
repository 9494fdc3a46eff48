package main

import (
	"context"
	"log"
	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/drivers/database"
	"nutricare-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensures the indexes the application relies on. Safe to run repeatedly;
// CreateMany is a no-op for indexes that already exist.
func main() {
	driverConfig := config.NewDriverConfig()
	client := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(driverConfig.MongoDB.DbName)

	run(ctx, db, constvars.MongoCollectionUsers, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	run(ctx, db, constvars.MongoCollectionProfiles, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	run(ctx, db, constvars.MongoCollectionAvailabilities, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "nutritionistId", Value: 1}, {Key: "specificDate", Value: 1}},
		},
	})

	run(ctx, db, constvars.MongoCollectionAppointments, []mongo.IndexModel{
		// Serves the conflict scan on booking and the daily reminder sweep.
		{
			Keys: bson.D{{Key: "nutritionistId", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "date", Value: 1}},
		},
	})

	run(ctx, db, constvars.MongoCollectionNutritionRecords, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "date", Value: 1}},
		},
	})

	if err := client.Disconnect(ctx); err != nil {
		log.Fatalf("Error disconnecting from MongoDB: %v", err)
	}
	log.Println("All indexes ensured")
}

func run(ctx context.Context, db *mongo.Database, collection string, indexes []mongo.IndexModel) {
	names, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Fatalf("Error creating indexes on %s: %v", collection, err)
	}
	log.Printf("Ensured indexes on %s: %v", collection, names)
}
