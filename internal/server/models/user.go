// Package models defines server-side data models persisted in the database.
package models

import "time"

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

type User struct {
	ID           int64
	Email        string
	UserName     string
	PasswordHash string
	PasswordSalt string
	Theme        Theme
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
