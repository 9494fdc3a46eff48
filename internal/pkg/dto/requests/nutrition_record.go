package requests

type CreateNutritionRecord struct {
	ClientID        string   `json:"client_id" validate:"required"`
	Date            string   `json:"date" validate:"required,dateonly"`
	Weight          *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height          *float64 `json:"height" validate:"omitempty,gt=0"`
	Notes           string   `json:"notes" validate:"omitempty,max=1000"`
	Recommendations string   `json:"recommendations" validate:"omitempty,max=1000"`
}

type UpdateNutritionRecord struct {
	Date            string   `json:"date" validate:"omitempty,dateonly"`
	Weight          *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height          *float64 `json:"height" validate:"omitempty,gt=0"`
	Notes           *string  `json:"notes" validate:"omitempty,max=1000"`
	Recommendations *string  `json:"recommendations" validate:"omitempty,max=1000"`
}
