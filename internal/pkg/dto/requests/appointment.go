package requests

type CreateAppointment struct {
	NutritionistID string `json:"nutritionist_id" validate:"required"`
	Date           string `json:"date" validate:"required,dateonly"`
	StartTime      string `json:"start_time" validate:"required,clock"`
	EndTime        string `json:"end_time" validate:"required,clock"`
	Notes          string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateAppointment struct {
	Date      string  `json:"date" validate:"omitempty,dateonly"`
	StartTime string  `json:"start_time" validate:"omitempty,clock"`
	EndTime   string  `json:"end_time" validate:"omitempty,clock"`
	Status    string  `json:"status" validate:"omitempty,oneof=scheduled cancelled completed"`
	Notes     *string `json:"notes" validate:"omitempty,max=1000"`
}
