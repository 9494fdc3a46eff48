package nutritionrecords

import (
	"context"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NutritionRecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewNutritionRecordMongoRepository(db *mongo.Client, dbName string) contracts.NutritionRecordRepository {
	return &NutritionRecordMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNutritionRecords),
	}
}

func (r *NutritionRecordMongoRepository) CreateNutritionRecord(ctx context.Context, record *models.NutritionRecord) (string, error) {
	result, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *NutritionRecordMongoRepository) FindNutritionRecordByID(ctx context.Context, recordID string) (*models.NutritionRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var record models.NutritionRecord
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *NutritionRecordMongoRepository) FindNutritionRecordsByClient(ctx context.Context, clientID string, page, pageSize int) ([]models.NutritionRecord, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	return r.findNutritionRecords(ctx, bson.M{"clientId": clientID}, findOptions)
}

func (r *NutritionRecordMongoRepository) CountNutritionRecordsByClient(ctx context.Context, clientID string) (int64, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return total, nil
}

func (r *NutritionRecordMongoRepository) FindNutritionRecordsByClientAndDateRange(ctx context.Context, clientID, startDate, endDate string) ([]models.NutritionRecord, error) {
	filter := bson.M{
		"clientId": clientID,
		"date":     bson.M{"$gte": startDate, "$lte": endDate},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: 1}})
	return r.findNutritionRecords(ctx, filter, findOptions)
}

func (r *NutritionRecordMongoRepository) UpdateNutritionRecord(ctx context.Context, record *models.NutritionRecord) error {
	objectID, err := primitive.ObjectIDFromHex(record.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": record.ConvertToBsonM()}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *NutritionRecordMongoRepository) DeleteNutritionRecord(ctx context.Context, recordID string) error {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *NutritionRecordMongoRepository) findNutritionRecords(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]models.NutritionRecord, error) {
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var records []models.NutritionRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return records, nil
}
