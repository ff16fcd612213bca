package model

const DefaultRole = "user"

// User represents a user as stored in users.json.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by signup and login. The token is also set as a cookie.
type AuthResponse struct {
	AccessToken string       `json:"access_token,omitempty"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// UserResponse represents user data safe for API responses (no password hash).
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Public strips sensitive fields and fills in the default role.
func (u User) Public() UserResponse {
	role := u.Role
	if role == "" {
		role = DefaultRole
	}
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  role,
	}
}
