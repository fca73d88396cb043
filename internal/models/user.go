package models

import (
	"strings"
	"time"
)

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

type InsertUser struct {
	Username string
	Password string
}

func (u *InsertUser) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return &ValidationError{Message: "Username is required"}
	}
	if u.Password == "" {
		return &ValidationError{Message: "Password is required"}
	}
	return nil
}
