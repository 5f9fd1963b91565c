package model

import "time"

// Tema tampilan per user
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type UserModel struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash
	Role      string    `json:"role"`
	Theme     string    `json:"theme"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m UserModel) RecordID() string { return m.UserID }
