package models

// LoginResponse is the password step's acknowledgement. The server is
// expected to always demand a second factor, signalled by RequiresOTP.
type LoginResponse struct {
	Message     string `json:"message"`
	RequiresOTP bool   `json:"requiresOTP"`
	Email       string `json:"email"`
	NextStep    string `json:"nextStep"`
}

// AuthUser is the profile snapshot returned alongside a verified token.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// AuthResponse is the result of a successful OTP verification.
type AuthResponse struct {
	Token string    `json:"token"`
	User  *AuthUser `json:"user,omitempty"`
}
