package dto

type CreateSessionResponseDTO struct {
	SessionID string `json:"session_id" example:"6f1c6f6e-0b1a-4f6e-9a64-2f33f7d9a111"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at" example:"2024-01-15T16:09:57+03:00"`
}
