package requests

type CreateProfile struct {
	Phone             string `json:"phone" validate:"omitempty,max=20"`
	Address           string `json:"address" validate:"omitempty,max=255"`
	DateOfBirth       string `json:"date_of_birth" validate:"omitempty,dateonly"`
	Bio               string `json:"bio" validate:"omitempty,max=1000"`
	Specialization    string `json:"specialization" validate:"omitempty,max=255"`
	YearsOfExperience *int   `json:"years_of_experience" validate:"omitempty,gte=0"`
	ProfileImage      string `json:"profile_image" validate:"omitempty"`

	ProfileImageData      []byte `json:"-"`
	ProfileImageExtension string `json:"-"`
}

type UpdateProfile struct {
	Phone             string `json:"phone" validate:"omitempty,max=20"`
	Address           string `json:"address" validate:"omitempty,max=255"`
	DateOfBirth       string `json:"date_of_birth" validate:"omitempty,dateonly"`
	Bio               string `json:"bio" validate:"omitempty,max=1000"`
	Specialization    string `json:"specialization" validate:"omitempty,max=255"`
	YearsOfExperience *int   `json:"years_of_experience" validate:"omitempty,gte=0"`
	ProfileImage      string `json:"profile_image" validate:"omitempty"`

	ProfileImageData      []byte `json:"-"`
	ProfileImageExtension string `json:"-"`
}
