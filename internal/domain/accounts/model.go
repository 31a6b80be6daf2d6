package accounts

import "time"

const (
	MaxUsernameLen    = 150
	MinPasswordLen    = 8
	maxPasswordBytes  = 72 // límite de bcrypt
	SignupFailMessage = "Invalid sign up - please try again"
)

type User struct {
	ID           string
	Username     string
	PasswordHash string

	CreatedAt time.Time
}
