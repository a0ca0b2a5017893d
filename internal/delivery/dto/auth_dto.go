package dto

// LoginRequest carries the already-encoded password, matching what the
// client stored at registration time.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequest identifies the account to reset by email.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}
