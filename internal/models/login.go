package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a signed token, returned by login and registration.
// swagger:model TokenResponse
type TokenResponse struct {
	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`
}
