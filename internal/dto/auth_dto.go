package dto

// RegisterRequestDTO is the body for POST /auth/register.
type RegisterRequestDTO struct {
	Username string `json:"username" binding:"required,min=2,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequestDTO is the body for POST /auth/login.
type LoginRequestDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponseDTO carries the signed session token for both register and
// login. ExpiresIn is seconds until the token stops verifying.
type AuthResponseDTO struct {
	Token     string `json:"token"`
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"is_admin"`
	ExpiresIn int64  `json:"expires_in"`
}
