package models

import "go.mongodb.org/mongo-driver/bson"

type NutritionRecord struct {
	ID              string   `bson:"_id,omitempty"`
	ClientID        string   `bson:"clientId"`
	CreatedByID     string   `bson:"createdById"`
	Date            string   `bson:"date"`
	Weight          *float64 `bson:"weight,omitempty"`
	Height          *float64 `bson:"height,omitempty"`
	Notes           string   `bson:"notes,omitempty"`
	Recommendations string   `bson:"recommendations,omitempty"`
	TimeModel       `bson:",inline"`
}

// BMI derives body mass index from weight in kilograms and height in
// meters. Nil when either measurement is missing or height is zero.
func (r *NutritionRecord) BMI() *float64 {
	if r.Weight == nil || r.Height == nil || *r.Height <= 0 {
		return nil
	}
	bmi := *r.Weight / (*r.Height * *r.Height)
	return &bmi
}

func (r *NutritionRecord) ConvertToBsonM() bson.M {
	return bson.M{
		"date":            r.Date,
		"weight":          r.Weight,
		"height":          r.Height,
		"notes":           r.Notes,
		"recommendations": r.Recommendations,
		"updatedAt":       r.UpdatedAt,
	}
}
