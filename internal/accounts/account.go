// Package accounts implements the local account directory and the single
// active session on top of the key-value store.
package accounts

import "time"

// Account is a registered user's durable record as persisted in the
// directory. PasswordHash holds a bcrypt hash; the original field name
// "password" is kept for storage compatibility.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	Level        int       `json:"level"`
	XP           int       `json:"xp"`
	Avatar       *string   `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is the cached "currently logged in" identity: an Account with the
// credential stripped. Its presence in storage is the sole signal between
// authenticated and unauthenticated application states.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Level     int       `json:"level"`
	XP        int       `json:"xp"`
	Avatar    *string   `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session returns the password-stripped copy of the account.
func (a *Account) Session() *Session {
	return &Session{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Level:     a.Level,
		XP:        a.XP,
		Avatar:    a.Avatar,
		CreatedAt: a.CreatedAt,
	}
}
