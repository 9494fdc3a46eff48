package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindAppointmentsByClient(ctx context.Context, clientID, status string, page, pageSize int) ([]models.Appointment, error) {
	filter := bson.M{"clientId": clientID}
	if status != "" {
		filter["status"] = status
	}
	return r.findAppointments(ctx, filter, paginatedSortOptions(page, pageSize))
}

func (r *AppointmentMongoRepository) FindAppointmentsByNutritionist(ctx context.Context, nutritionistID, status string, page, pageSize int) ([]models.Appointment, error) {
	filter := bson.M{"nutritionistId": nutritionistID}
	if status != "" {
		filter["status"] = status
	}
	return r.findAppointments(ctx, filter, paginatedSortOptions(page, pageSize))
}

func (r *AppointmentMongoRepository) CountAppointmentsByClient(ctx context.Context, clientID, status string) (int64, error) {
	filter := bson.M{"clientId": clientID}
	if status != "" {
		filter["status"] = status
	}
	return r.countAppointments(ctx, filter)
}

func (r *AppointmentMongoRepository) CountAppointmentsByNutritionist(ctx context.Context, nutritionistID, status string) (int64, error) {
	filter := bson.M{"nutritionistId": nutritionistID}
	if status != "" {
		filter["status"] = status
	}
	return r.countAppointments(ctx, filter)
}

func (r *AppointmentMongoRepository) FindScheduledAppointmentsByNutritionistAndDate(ctx context.Context, nutritionistID, date string) ([]models.Appointment, error) {
	filter := bson.M{
		"nutritionistId": nutritionistID,
		"date":           date,
		"status":         constvars.AppointmentStatusScheduled,
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	return r.findAppointments(ctx, filter, findOptions)
}

func (r *AppointmentMongoRepository) FindAppointmentsByClientAndDateRange(ctx context.Context, clientID, startDate, endDate, status string) ([]models.Appointment, error) {
	filter := bson.M{
		"clientId": clientID,
		"date":     bson.M{"$gte": startDate, "$lte": endDate},
	}
	if status != "" {
		filter["status"] = status
	}
	return r.findAppointments(ctx, filter, dateSortOptions())
}

func (r *AppointmentMongoRepository) FindAppointmentsByNutritionistAndDateRange(ctx context.Context, nutritionistID, startDate, endDate, status string) ([]models.Appointment, error) {
	filter := bson.M{
		"nutritionistId": nutritionistID,
		"date":           bson.M{"$gte": startDate, "$lte": endDate},
	}
	if status != "" {
		filter["status"] = status
	}
	return r.findAppointments(ctx, filter, dateSortOptions())
}

func (r *AppointmentMongoRepository) FindScheduledAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	filter := bson.M{
		"date":   date,
		"status": constvars.AppointmentStatusScheduled,
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "nutritionistId", Value: 1}, {Key: "startTime", Value: 1}})
	return r.findAppointments(ctx, filter, findOptions)
}

func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	objectID, err := primitive.ObjectIDFromHex(appointment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": appointment.ConvertToBsonM()}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) findAppointments(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) countAppointments(ctx context.Context, filter bson.M) (int64, error) {
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return total, nil
}

func paginatedSortOptions(page, pageSize int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
}

func dateSortOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
}
