package models

import "go.mongodb.org/mongo-driver/bson"

// Availability is a nutritionist's open window, either recurring on a
// weekday (Monday=0) or pinned to one specific date.
type Availability struct {
	ID             string `bson:"_id,omitempty"`
	NutritionistID string `bson:"nutritionistId"`
	DayOfWeek      *int   `bson:"dayOfWeek,omitempty"`
	StartTime      string `bson:"startTime"`
	EndTime        string `bson:"endTime"`
	IsRecurring    bool   `bson:"isRecurring"`
	SpecificDate   string `bson:"specificDate,omitempty"`
	TimeModel      `bson:",inline"`
}

func (a *Availability) ConvertToBsonM() bson.M {
	return bson.M{
		"dayOfWeek":    a.DayOfWeek,
		"startTime":    a.StartTime,
		"endTime":      a.EndTime,
		"isRecurring":  a.IsRecurring,
		"specificDate": a.SpecificDate,
		"updatedAt":    a.UpdatedAt,
	}
}
