package models

type User struct {
	ID        string   `json:"_id"`
	Email     string   `json:"email"`
	Username  string   `json:"username"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Roles     []string `json:"roles"`
}

// LoginResponse is returned by the backend without the usual envelope.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type AdminCheckResponse struct {
	Message string `json:"message"`
	IsAdmin bool   `json:"isAdmin"`
}
