package models

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`

	// Full name
	// example: John Doe
	FullName string `json:"fullName" validate:"max=255"`
}

// SignupResponse represents the registered user
// swagger:model SignupResponse
type SignupResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`

	// Token lifetime in milliseconds
	// example: 3600000
	ExpiresIn int64 `json:"expiresIn"`
}

// ErrorResponse is the error body returned by every API endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Invalid email or password
	Error string `json:"error"`
}
