package user

import "time"

type User struct {
	ID           int
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type Credentials struct {
	Username string `json:"username" doc:"Имя пользователя" minLength:"1" maxLength:"64"`
	Password string `json:"password" doc:"Пароль" minLength:"1"`
}
