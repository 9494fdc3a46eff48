package responses

type Nutritionist struct {
	ID                string `json:"id"`
	FullName          string `json:"full_name,omitempty"`
	Email             string `json:"email"`
	Bio               string `json:"bio,omitempty"`
	Specialization    string `json:"specialization,omitempty"`
	YearsOfExperience *int   `json:"years_of_experience,omitempty"`
	ProfileImage      string `json:"profile_image,omitempty"`
}
