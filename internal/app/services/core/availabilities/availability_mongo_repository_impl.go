package availabilities

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

type AvailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewAvailabilityMongoRepository(db *mongo.Client, dbName string) contracts.AvailabilityRepository {
	return &AvailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAvailabilities),
	}
}

func (r *AvailabilityMongoRepository) CreateAvailability(ctx context.Context, availability *models.Availability) (string, error) {
	result, err := r.Collection.InsertOne(ctx, availability)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AvailabilityMongoRepository) FindAvailabilityByID(ctx context.Context, availabilityID string) (*models.Availability, error) {
	objectID, err := primitive.ObjectIDFromHex(availabilityID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var availability models.Availability
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&availability)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &availability, nil
}

func (r *AvailabilityMongoRepository) FindAvailabilitiesByNutritionist(ctx context.Context, nutritionistID string) ([]models.Availability, error) {
	return r.findAvailabilities(ctx, bson.M{"nutritionistId": nutritionistID}, nil)
}

func (r *AvailabilityMongoRepository) FindAvailabilitiesByNutritionistPaginated(ctx context.Context, nutritionistID string, page, pageSize int) ([]models.Availability, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	return r.findAvailabilities(ctx, bson.M{"nutritionistId": nutritionistID}, findOptions)
}

func (r *AvailabilityMongoRepository) FindAvailabilitiesByNutritionistAndDateRange(ctx context.Context, nutritionistID, startDate, endDate string) ([]models.Availability, error) {
	filter := bson.M{
		"nutritionistId": nutritionistID,
		"$or": []bson.M{
			{"isRecurring": true},
			{"isRecurring": false, "specificDate": bson.M{"$gte": startDate, "$lte": endDate}},
		},
	}
	return r.findAvailabilities(ctx, filter, nil)
}

func (r *AvailabilityMongoRepository) CountAvailabilitiesByNutritionist(ctx context.Context, nutritionistID string) (int64, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{"nutritionistId": nutritionistID})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return total, nil
}

func (r *AvailabilityMongoRepository) UpdateAvailability(ctx context.Context, availability *models.Availability) error {
	objectID, err := primitive.ObjectIDFromHex(availability.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": availability.ConvertToBsonM()}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AvailabilityMongoRepository) DeleteAvailability(ctx context.Context, availabilityID string) error {
	objectID, err := primitive.ObjectIDFromHex(availabilityID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *AvailabilityMongoRepository) findAvailabilities(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]models.Availability, error) {
	var cursor *mongo.Cursor
	var err error
	if findOptions != nil {
		cursor, err = r.Collection.Find(ctx, filter, findOptions)
	} else {
		cursor, err = r.Collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var availabilities []models.Availability
	if err := cursor.All(ctx, &availabilities); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return availabilities, nil
}
