package models

import "go.mongodb.org/mongo-driver/bson"

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Username  string `bson:"username"`
	Password  string `bson:"password"`
	FullName  string `bson:"fullName,omitempty"`
	UserType  string `bson:"userType"`
	IsActive  bool   `bson:"isActive"`
	TimeModel `bson:",inline"`
}

// ConvertToBsonM lists the fields a user update is allowed to touch.
func (u *User) ConvertToBsonM() bson.M {
	return bson.M{
		"email":     u.Email,
		"username":  u.Username,
		"password":  u.Password,
		"fullName":  u.FullName,
		"userType":  u.UserType,
		"isActive":  u.IsActive,
		"updatedAt": u.UpdatedAt,
	}
}
