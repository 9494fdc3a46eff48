package requests

type RegisterUser struct {
	Email          string `json:"email" validate:"required,email"`
	Username       string `json:"username" validate:"required,alphanum,min=8,max=15"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retype_password"`
	FullName       string `json:"full_name" validate:"omitempty,max=255"`
	UserType       string `json:"user_type" validate:"required,user_type"`
}

type LoginUser struct {
	Username string `json:"username" validate:"required,alphanum,min=8"`
	Password string `json:"password" validate:"required,min=8"`
}
