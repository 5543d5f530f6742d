package models

const (
	PlatformWeb    = "web"
	PlatformMobile = "mobile"
)

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required" example:"9876543210"`
	Password    string `json:"password" binding:"required" example:"secret123"`
	Platform    string `json:"platform" binding:"omitempty,oneof=web mobile" example:"web"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message" example:"Login successful"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type LogoutResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Logged out"`
}
