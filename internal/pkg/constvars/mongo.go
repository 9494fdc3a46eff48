package constvars

const (
	MongoCollectionUsers            = "users"
	MongoCollectionProfiles         = "profiles"
	MongoCollectionAvailabilities   = "availabilities"
	MongoCollectionAppointments     = "appointments"
	MongoCollectionNutritionRecords = "nutrition_records"
)
