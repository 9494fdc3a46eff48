package responses

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	UserType string `json:"user_type"`
	IsActive bool   `json:"is_active"`
}
