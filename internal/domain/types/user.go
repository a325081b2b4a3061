package types

import "time"

// User is the account record the backend returns for a registered user.
type User struct {
	ID        UserID    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}
