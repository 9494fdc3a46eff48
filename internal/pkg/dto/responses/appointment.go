package responses

type Appointment struct {
	ID             string `json:"id"`
	ClientID       string `json:"client_id"`
	NutritionistID string `json:"nutritionist_id"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Status         string `json:"status"`
	Notes          string `json:"notes,omitempty"`
}

type CancelAppointment struct {
	Message string `json:"message"`
}
