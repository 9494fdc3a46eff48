package responses

type Profile struct {
	ID                string `json:"id"`
	UserID            string `json:"user_id"`
	Phone             string `json:"phone,omitempty"`
	Address           string `json:"address,omitempty"`
	DateOfBirth       string `json:"date_of_birth,omitempty"`
	Bio               string `json:"bio,omitempty"`
	Specialization    string `json:"specialization,omitempty"`
	YearsOfExperience *int   `json:"years_of_experience,omitempty"`
	ProfileImage      string `json:"profile_image,omitempty"`
}
