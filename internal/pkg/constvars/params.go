package constvars

const (
	URLParamUserID         = "user_id"
	URLParamClientID       = "client_id"
	URLParamNutritionistID = "nutritionist_id"
	URLParamAvailabilityID = "availability_id"
	URLParamAppointmentID  = "appointment_id"
	URLParamRecordID       = "record_id"
)

const (
	URLQueryParamPage      = "page"
	URLQueryParamPageSize  = "page_size"
	URLQueryParamStatus    = "status"
	URLQueryParamDate      = "date"
	URLQueryParamStartDate = "start_date"
	URLQueryParamEndDate   = "end_date"
)
