package responses

type NutritionRecord struct {
	ID              string   `json:"id"`
	ClientID        string   `json:"client_id"`
	CreatedByID     string   `json:"created_by_id"`
	Date            string   `json:"date"`
	Weight          *float64 `json:"weight,omitempty"`
	Height          *float64 `json:"height,omitempty"`
	BMI             *float64 `json:"bmi,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Recommendations string   `json:"recommendations,omitempty"`
}
