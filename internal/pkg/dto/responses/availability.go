package responses

type Availability struct {
	ID             string `json:"id"`
	NutritionistID string `json:"nutritionist_id"`
	DayOfWeek      *int   `json:"day_of_week,omitempty"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	IsRecurring    bool   `json:"is_recurring"`
	SpecificDate   string `json:"specific_date,omitempty"`
}
