package models

import "go.mongodb.org/mongo-driver/bson"

type Appointment struct {
	ID             string `bson:"_id,omitempty"`
	ClientID       string `bson:"clientId"`
	NutritionistID string `bson:"nutritionistId"`
	Date           string `bson:"date"`
	StartTime      string `bson:"startTime"`
	EndTime        string `bson:"endTime"`
	Status         string `bson:"status"`
	Notes          string `bson:"notes,omitempty"`
	TimeModel      `bson:",inline"`
}

func (a *Appointment) ConvertToBsonM() bson.M {
	return bson.M{
		"date":      a.Date,
		"startTime": a.StartTime,
		"endTime":   a.EndTime,
		"status":    a.Status,
		"notes":     a.Notes,
		"updatedAt": a.UpdatedAt,
	}
}
