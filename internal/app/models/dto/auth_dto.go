package dto

// RegisterRequest creates a new account
type RegisterRequest struct {
	Email      string  `json:"email" binding:"required,email" example:"student@campus.edu"`
	Password   string  `json:"password" binding:"required,min=8" example:"s3cret-pass"`
	Name       string  `json:"name" binding:"required" example:"Priya Sharma"`
	Department *string `json:"department,omitempty" example:"Computer Science"`
}

// LoginRequest authenticates an existing account
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"student@campus.edu"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// TokenResponse carries a freshly issued access token
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresIn   int       `json:"expiresIn" example:"86400"`
	User        UserBrief `json:"user"`
}

// UserBrief is the public shape of a principal
type UserBrief struct {
	ID         int64   `json:"id" example:"1"`
	Name       string  `json:"name" example:"Priya Sharma"`
	Email      string  `json:"email" example:"student@campus.edu"`
	Role       string  `json:"role,omitempty" example:"student"`
	Department *string `json:"department,omitempty" example:"Computer Science"`
}
