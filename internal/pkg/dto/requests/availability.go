package requests

type CreateAvailability struct {
	DayOfWeek    *int   `json:"day_of_week" validate:"omitempty,gte=0,lte=6"`
	StartTime    string `json:"start_time" validate:"required,clock"`
	EndTime      string `json:"end_time" validate:"required,clock"`
	IsRecurring  *bool  `json:"is_recurring"`
	SpecificDate string `json:"specific_date" validate:"omitempty,dateonly"`
}

type UpdateAvailability struct {
	DayOfWeek    *int   `json:"day_of_week" validate:"omitempty,gte=0,lte=6"`
	StartTime    string `json:"start_time" validate:"omitempty,clock"`
	EndTime      string `json:"end_time" validate:"omitempty,clock"`
	IsRecurring  *bool  `json:"is_recurring"`
	SpecificDate string `json:"specific_date" validate:"omitempty,dateonly"`
}
