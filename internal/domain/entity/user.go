package entity

import "time"

// User é um usuário da aplicação (login com senha bcrypt).
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
