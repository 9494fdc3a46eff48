package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccessMessage = "user registered successfully"
	LoginSuccessMessage    = "successfully login"
	LogoutSuccessMessage   = "successfully logout"

	// Profile messages
	CreateProfileSuccessMessage = "profile created successfully"
	GetProfileSuccessMessage    = "get profile successfully"
	UpdateProfileSuccessMessage = "profile updated successfully"

	// Nutritionist messages
	GetNutritionistsSuccessMessage = "get nutritionists successfully"
	GetNutritionistSuccessMessage  = "get nutritionist successfully"

	// Availability messages
	CreateAvailabilitySuccessMessage = "availability slot created successfully"
	GetAvailabilitiesSuccessMessage  = "get availability slots successfully"
	GetAvailabilitySuccessMessage    = "get availability slot successfully"
	UpdateAvailabilitySuccessMessage = "availability slot updated successfully"
	DeleteAvailabilitySuccessMessage = "Availability slot deleted successfully"

	// Appointment messages
	CreateAppointmentSuccessMessage = "appointment created successfully"
	GetAppointmentsSuccessMessage   = "get appointments successfully"
	GetAppointmentSuccessMessage    = "get appointment successfully"
	UpdateAppointmentSuccessMessage = "appointment updated successfully"
	CancelAppointmentSuccessMessage = "Appointment cancelled successfully"

	// Nutrition record messages
	CreateNutritionRecordSuccessMessage = "nutrition record created successfully"
	GetNutritionRecordsSuccessMessage   = "get nutrition records successfully"
	GetNutritionRecordSuccessMessage    = "get nutrition record successfully"
	UpdateNutritionRecordSuccessMessage = "nutrition record updated successfully"
	DeleteNutritionRecordSuccessMessage = "Nutrition record deleted successfully"
)
