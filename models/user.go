package models

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Paid         bool      `json:"paid"`
	Avatar       *string   `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// EligibleForRanking: paid participants only, administrators never rank.
func (u User) EligibleForRanking() bool {
	return u.Paid && u.Role != RoleAdmin
}

func (u User) Participant() Participant {
	return Participant{ID: u.Username, Name: u.Name}
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
