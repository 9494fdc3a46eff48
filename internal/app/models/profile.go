package models

import "go.mongodb.org/mongo-driver/bson"

type Profile struct {
	ID                string `bson:"_id,omitempty"`
	UserID            string `bson:"userId"`
	Phone             string `bson:"phone,omitempty"`
	Address           string `bson:"address,omitempty"`
	DateOfBirth       string `bson:"dateOfBirth,omitempty"`
	Bio               string `bson:"bio,omitempty"`
	Specialization    string `bson:"specialization,omitempty"`
	YearsOfExperience *int   `bson:"yearsOfExperience,omitempty"`
	ProfileImage      string `bson:"profileImage,omitempty"`
	TimeModel         `bson:",inline"`
}

func (p *Profile) ConvertToBsonM() bson.M {
	return bson.M{
		"phone":             p.Phone,
		"address":           p.Address,
		"dateOfBirth":       p.DateOfBirth,
		"bio":               p.Bio,
		"specialization":    p.Specialization,
		"yearsOfExperience": p.YearsOfExperience,
		"profileImage":      p.ProfileImage,
		"updatedAt":         p.UpdatedAt,
	}
}
